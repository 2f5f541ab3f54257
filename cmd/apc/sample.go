package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/appliance-catalog/internal/messages"
)

func newSampleCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.SampleUse,
		Short: messages.SampleShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, logger, err := opts.newSession(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if err := session.Seed(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, messages.CatalogDetailsHeader)
			return session.Display(out)
		},
	}
}
