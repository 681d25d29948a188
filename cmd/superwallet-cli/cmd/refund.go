/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"
)

var refundOpt struct {
	UserID      string `json:"user_id"`
	GrossIncome string `json:"gross_income"`
	TaxPaid     string `json:"tax_paid"`
	Deductions  string `json:"deductions,omitempty"`
}

// refundCmd submits a refund claim, or shows one when an id is given.
var refundCmd = &cobra.Command{
	Use:   "refund",
	Short: "submit a tax refund claim by super-wallet api",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return showRefund(cmd, args[0])
		}

		var refund map[string]any
		if err := apiPost(cmd, "/refunds", refundOpt, &refund); err != nil {
			return err
		}

		return printJson(cmd, refund)
	},
}

var processOpt struct {
	Action string `json:"action"`
}

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "approve or reject a pending refund",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var refund map[string]any
		if err := apiPost(cmd, "/refunds/"+args[0]+"/process", processOpt, &refund); err != nil {
			return err
		}

		return printJson(cmd, refund)
	},
}

func init() {
	rootCmd.AddCommand(refundCmd)
	rootCmd.AddCommand(processCmd)

	refundCmd.Flags().StringVar(&refundOpt.UserID, "user", "", "user id")
	refundCmd.Flags().StringVar(&refundOpt.GrossIncome, "gross", "0", "gross income")
	refundCmd.Flags().StringVar(&refundOpt.TaxPaid, "paid", "0", "tax already paid")
	refundCmd.Flags().StringVar(&refundOpt.Deductions, "deductions", "", "deductions (optional)")

	processCmd.Flags().StringVar(&processOpt.Action, "action", "approve", "approve or reject")
}

func showRefund(cmd *cobra.Command, id string) error {
	var refund map[string]any
	if err := apiGet(cmd, "/refunds/"+id, &refund); err != nil {
		return err
	}

	return printJson(cmd, refund)
}
