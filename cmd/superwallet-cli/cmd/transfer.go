/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var transferOpt struct {
	UserID          string `json:"user_id"`
	FromAddress     string `json:"from_address,omitempty"`
	ToAddress       string `json:"to_address,omitempty"`
	AssetType       string `json:"asset_type,omitempty"`
	Amount          string `json:"amount"`
	Fee             string `json:"fee,omitempty"`
	TxHash          string `json:"tx_hash,omitempty"`
	TransactionType string `json:"transaction_type"`
}

// transferCmd represents the transfer command
var transferCmd = &cobra.Command{
	Use:   "transfer",
	Short: "record a wallet transaction by super-wallet api",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return showTransaction(cmd, args[0])
		}

		var tx map[string]any
		if err := apiPost(cmd, "/transactions", transferOpt, &tx); err != nil {
			return err
		}

		return printJson(cmd, tx)
	},
}

func init() {
	rootCmd.AddCommand(transferCmd)

	transferCmd.Flags().StringVar(&transferOpt.UserID, "user", "", "user id")
	transferCmd.Flags().StringVar(&transferOpt.FromAddress, "from", "", "sender address")
	transferCmd.Flags().StringVar(&transferOpt.ToAddress, "to", "", "recipient address")
	transferCmd.Flags().StringVar(&transferOpt.AssetType, "asset", "", "asset type (optional)")
	transferCmd.Flags().StringVar(&transferOpt.Amount, "amount", "0", "amount")
	transferCmd.Flags().StringVar(&transferOpt.Fee, "fee", "", "fee (optional)")
	transferCmd.Flags().StringVar(&transferOpt.TxHash, "hash", "", "tx hash (optional)")
	transferCmd.Flags().StringVar(&transferOpt.TransactionType, "type", "send", "send, receive or payment")
}

func showTransaction(cmd *cobra.Command, id string) error {
	path := "/transactions/" + id
	if strings.HasPrefix(id, "0x") {
		path = "/transactions/hash/" + id
	}

	var tx map[string]any
	if err := apiGet(cmd, path, &tx); err != nil {
		return err
	}

	return printJson(cmd, tx)
}
