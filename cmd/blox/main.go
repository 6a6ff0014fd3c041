package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aryankumar/blox/internal/cli"
	"github.com/aryankumar/blox/internal/output"
	"github.com/aryankumar/blox/internal/util"
	"github.com/spf13/viper"
)

func main() {
	// Setup signal handling for graceful shutdown
	ctx := util.SetupSignalHandler()

	// Execute the CLI
	if err := cli.Execute(ctx); err != nil {
		slog.Debug("command failed", "error", err)
		colors := output.NewColorScheme(os.Stderr, viper.GetBool("no-color"))
		fmt.Fprintln(os.Stderr, colors.Error("Error:"), util.FriendlyError(err))
		os.Exit(1)
	}
}
