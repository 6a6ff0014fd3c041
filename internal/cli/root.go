package cli

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/aryankumar/blox/internal/cli/add"
	"github.com/aryankumar/blox/internal/cli/download"
	"github.com/aryankumar/blox/internal/cli/info"
	"github.com/aryankumar/blox/internal/cli/join"
	"github.com/aryankumar/blox/internal/cli/list"
	"github.com/aryankumar/blox/internal/cli/login"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Execute runs the root command with the provided context
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd creates the root command
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "blox",
		Short: "Blox - Roblox account and catalog CLI",
		Long: `Blox is a command line client for the Roblox web APIs.
It shows account status across several saved accounts, looks up users,
groups, games, badges and assets, lists inventories and social graphs,
downloads assets and joins games.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
	}

	// Define persistent flags
	rootCmd.PersistentFlags().String("config", "", "config file (default is $HOME/.blox/config.yaml)")
	rootCmd.PersistentFlags().StringP("account", "a", "", "account to use (default is the first added account)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output format (tree, table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output with debug logging")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.PersistentFlags().Bool("force-color", false, "color output even when it is not a terminal")
	rootCmd.PersistentFlags().Bool("no-headers", false, "omit the header row of table output")
	rootCmd.PersistentFlags().Int("depth", 0, "nested objects expanded in tree output (default 64)")
	rootCmd.PersistentFlags().Duration("timeout", 30*time.Second, "timeout for API requests")
	rootCmd.PersistentFlags().IntP("parallel", "p", 4, "number of parallel requests")
	rootCmd.PersistentFlags().String("api-url", "", "base URL replacing https://<service>.roblox.com")
	rootCmd.PersistentFlags().MarkHidden("api-url")

	// Bind flags to viper
	for _, name := range []string{
		"config", "account", "output", "verbose", "no-color", "force-color", "no-headers", "depth",
		"timeout", "parallel", "api-url",
	} {
		viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(add.NewAddCmd())
	rootCmd.AddCommand(info.NewInfoCmd())
	rootCmd.AddCommand(list.NewListCmd())
	rootCmd.AddCommand(download.NewDownloadCmd())
	rootCmd.AddCommand(join.NewJoinCmd())
	rootCmd.AddCommand(login.NewLoginCmd())

	return rootCmd
}

// initConfig wires environment variables and logging
// The configuration file itself is read by config.Manager when a command needs it
func initConfig(cmd *cobra.Command) error {
	// BLOX_ACCOUNT, BLOX_OUTPUT, BLOX_NO_COLOR and friends
	viper.SetEnvPrefix("BLOX")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	setupLogging(cmd)

	return nil
}

// setupLogging configures structured logging with slog
func setupLogging(cmd *cobra.Command) {
	verbose := viper.GetBool("verbose")
	noColor := viper.GetBool("no-color")

	// Set log level based on verbose flag
	logLevel := slog.LevelWarn
	if verbose {
		logLevel = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var handler slog.Handler
	if noColor {
		handler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	} else {
		handler = slog.NewTextHandler(cmd.ErrOrStderr(), opts)
	}

	slog.SetDefault(slog.New(handler))

	if verbose {
		slog.Debug("verbose logging enabled")
		if path := viper.GetString("config"); path != "" {
			slog.Debug("using configuration", "file", path)
		}
	}
}

// stderrIsTerminal reports whether progress output would reach a person
func stderrIsTerminal() bool {
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}
