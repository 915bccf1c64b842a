package main

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/reoring/trunkconf"
)

func printCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print the migrated configuration",
		Long: `Print the configuration after decoding and migration, with every
default filled in and every deprecated field rewritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := trunkconf.Load(cmd.Context(), opts.config)
			if err != nil {
				return err
			}
			tree, err := cfg.Tree()
			if err != nil {
				return err
			}
			out, err := render(format, tree)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "toml", "output format (toml, yaml, json)")
	return cmd
}

func render(format string, tree map[string]any) ([]byte, error) {
	switch format {
	case "toml":
		return toml.Marshal(tree)
	case "yaml":
		return yaml.Marshal(tree)
	case "json":
		b, err := json.MarshalIndent(tree, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	}
	return nil, fmt.Errorf("unsupported --format %q (toml, yaml, json)", format)
}
