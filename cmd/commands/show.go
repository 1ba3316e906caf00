package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"NameForge/pkg/utils"
)

// newShowCommand creates the show command, printing the stored settings with
// the key redacted.
func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the stored settings (API key redacted)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(configPath)
			if err != nil {
				return err
			}
			defer a.close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()
			loaded, err := a.store.GetUserSettings(ctx)
			if err != nil {
				return err
			}

			cmd.Printf("API key:  %s\n", utils.RedactKey(loaded.APIKey))
			cmd.Printf("Backend:  %s\n", a.cfg.Generator.Backend)
			if a.cfg.Generator.Model != "" {
				cmd.Printf("Model:    %s\n", a.cfg.Generator.Model)
			}
			cmd.Printf("Data dir: %s\n", a.cfg.DataDir)
			return nil
		},
	}
}
