package main

import "github.com/spf13/cobra"

func newOptionsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "Print the selectable values of every filter dimension",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, table, err := root.load(cmd)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), table.FilterOptions())
		},
	}
}
