package main

import (
	"github.com/open-agents/svcctl/internal/dispatch"
	"github.com/spf13/cobra"
)

func (a *app) installCmd() *cobra.Command {
	var c dispatch.Install

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Register an executable as a native service",
		Long: `Register an executable as a native service.

The --args value is split on single spaces. Quoting is not interpreted, so
an argument cannot itself contain a space, and an empty --args value passes
one empty argument.`,
		Example: `  svcctl install --service demo --executable /usr/bin/demo --args "--flag value"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireValue("service", c.Service); err != nil {
				return err
			}
			if err := requireValue("executable", c.Executable); err != nil {
				return err
			}
			return a.dispatch(cmd, c)
		},
	}

	cmd.Flags().StringVarP(&c.Service, "service", "s", "", "Service name")
	cmd.Flags().StringVarP(&c.Executable, "executable", "e", "", "Path of the program the service runs")
	cmd.Flags().StringVarP(&c.Args, "args", "a", "", "Space-separated program arguments")
	cmd.MarkFlagRequired("service")
	cmd.MarkFlagRequired("executable")
	cmd.MarkFlagRequired("args")
	return cmd
}
