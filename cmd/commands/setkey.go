package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

// newSetKeyCommand creates the set-key command: a headless save through the
// same settings store the TUI uses.
func newSetKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-key <api-key>",
		Short: "Save the API key without opening the TUI",
		Long: `Persist the API key to the local settings store. Passing an empty
string clears the key.

Examples:
  nameforge set-key sk-proj-...
  nameforge set-key ""`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(configPath)
			if err != nil {
				return err
			}
			defer a.close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()
			if err := a.store.SaveUserSettings(ctx, args[0]); err != nil {
				return err
			}
			cmd.Println("✓ API key saved")
			return nil
		},
	}
}
