package main

import (
	"github.com/open-agents/svcctl/internal/dispatch"
	"github.com/spf13/cobra"
)

func (a *app) stopCmd() *cobra.Command {
	var c dispatch.Stop

	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop a native service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireValue("service", c.Service); err != nil {
				return err
			}
			return a.dispatch(cmd, c)
		},
	}

	cmd.Flags().StringVarP(&c.Service, "service", "s", "", "Service name")
	cmd.MarkFlagRequired("service")
	return cmd
}
