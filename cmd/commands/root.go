package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"NameForge/pkg/controller"
	"NameForge/pkg/tui"
)

// Version is set during build with -ldflags.
var Version = "dev"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "nameforge",
	Short: "Terminal name generator with persisted API-key settings",
	Long: `NameForge is a two-screen terminal app: describe something on the
generator screen and get a name for it; configure the API key on the
settings screen. The key is persisted locally and the generation backend
(simulated or LLM) is selected in the config file.`,
	RunE: runTUI,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("nameforge version %s\n", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to configuration file")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newSetKeyCommand())
	rootCmd.AddCommand(newShowCommand())
	rootCmd.AddCommand(newHistoryCommand())
}

func runTUI(cmd *cobra.Command, args []string) error {
	a, err := newApp(configPath)
	if err != nil {
		return err
	}
	defer a.close()

	gen := controller.NewNameGeneratorController(a.generator(), a.records, a.log)
	set := controller.NewSettingsController(a.store, a.log)
	defer gen.Close()
	defer set.Close()

	// First SIGINT/SIGTERM cancels the context and forces bubbletea to exit;
	// a second one force-exits.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
		select {
		case <-sigCh:
			os.Exit(1)
		case <-time.After(5 * time.Second):
			os.Exit(1)
		}
	}()

	if err := tui.Run(ctx, gen, set); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
