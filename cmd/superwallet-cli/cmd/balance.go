/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance <address> [asset]",
	Short: "show balances for a wallet address",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "/balances/" + args[0]
		if len(args) == 2 {
			path += "/" + args[1]
		}

		var balances map[string]any
		if err := apiGet(cmd, path, &balances); err != nil {
			return err
		}

		return printJson(cmd, balances)
	},
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}
