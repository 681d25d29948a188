/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"
)

var estimateOpt struct {
	GrossIncome string `json:"gross_income"`
	TaxPaid     string `json:"tax_paid"`
	Deductions  string `json:"deductions,omitempty"`
}

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "estimate an income tax refund",
	RunE: func(cmd *cobra.Command, args []string) error {
		var estimate map[string]any
		if err := apiPost(cmd, "/tax/estimates", estimateOpt, &estimate); err != nil {
			return err
		}

		return printJson(cmd, estimate)
	},
}

func init() {
	rootCmd.AddCommand(estimateCmd)

	estimateCmd.Flags().StringVar(&estimateOpt.GrossIncome, "gross", "0", "gross income")
	estimateCmd.Flags().StringVar(&estimateOpt.TaxPaid, "paid", "0", "tax already paid")
	estimateCmd.Flags().StringVar(&estimateOpt.Deductions, "deductions", "", "deductions (optional)")
}
