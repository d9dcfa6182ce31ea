package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the number of leads stored in the worksheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		fmt.Fprintf(cmd.OutOrStdout(), "total_leads: %d\n", a.leads.TotalLeads(cmd.Context()))
		return nil
	},
}
