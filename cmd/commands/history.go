package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

// newHistoryCommand creates the history command, listing recent generations.
func newHistoryCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent generated names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(configPath)
			if err != nil {
				return err
			}
			defer a.close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()
			results, err := a.records.List(ctx, limit)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				cmd.Println("No generations yet.")
				return nil
			}

			for _, r := range results {
				prompt := r.Prompt
				if len(prompt) > 40 {
					prompt = prompt[:37] + "..."
				}
				cmd.Printf("%s  %-24s  %s\n",
					r.CreatedAt.Local().Format("2006-01-02 15:04"),
					r.Name,
					prompt,
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of entries to list")
	return cmd
}
