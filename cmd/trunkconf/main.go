// Command trunkconf checks, prints and describes build tool configuration
// files.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reoring/trunkconf/i18n"
	"github.com/reoring/trunkconf/internal/ctxlog"
)

type rootOptions struct {
	config   string
	logLevel string
	lang     string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:   "trunkconf",
		Short: "Validate and migrate Trunk configuration files",
		Long: `trunkconf loads Trunk.toml (or .trunk.toml, Trunk.yaml, Trunk.json,
Cargo.toml [package.metadata.trunk]), validates it against the configuration
schema and rewrites deprecated fields into their current form.

The file on disk is never modified.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(opts.logLevel)); err != nil {
				return fmt.Errorf("invalid --log-level %q: %w", opts.logLevel, err)
			}
			switch strings.ToLower(opts.lang) {
			case "en", "ja":
				i18n.SetLanguage(strings.ToLower(opts.lang))
			default:
				return fmt.Errorf("unsupported --lang %q (en, ja)", opts.lang)
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.config, "config", "c", "", "configuration file or directory (default: search the working directory)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&opts.lang, "lang", "en", "language of issue messages (en, ja)")

	rootCmd.AddCommand(
		checkCmd(opts),
		printCmd(opts),
		schemaCmd(),
	)
	return rootCmd
}
