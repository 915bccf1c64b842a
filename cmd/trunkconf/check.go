package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/trunkconf"
	"github.com/reoring/trunkconf/schema"
	"github.com/reoring/trunkconf/source"
)

var errInvalid = errors.New("configuration is invalid")

func checkCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, _, err := source.Resolve(opts.config)
			if err != nil {
				return err
			}
			if _, _, err := trunkconf.Load(cmd.Context(), src.Path); err != nil {
				if iss, ok := schema.AsIssues(err); ok {
					for _, it := range iss {
						fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", src.Path, it)
					}
					return errInvalid
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s\n", src.Path)
			return nil
		},
	}
}
