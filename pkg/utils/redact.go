// Package utils provides small shared helpers: secret redaction for logs and
// retry wrappers around backoff/v4.
package utils

import "strings"

// RedactKey masks a secret for logging, keeping a short prefix and suffix so
// a key can still be recognized. Short values are fully masked.
func RedactKey(key string) string {
	if key == "" {
		return "(empty)"
	}
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + "…" + key[len(key)-4:]
}
