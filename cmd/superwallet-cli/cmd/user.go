/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"
)

var userOpt struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "create a user, or show one by id",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return showUser(cmd, args[0])
		}

		var user map[string]any
		if err := apiPost(cmd, "/users", userOpt, &user); err != nil {
			return err
		}

		return printJson(cmd, user)
	},
}

func init() {
	rootCmd.AddCommand(userCmd)

	userCmd.Flags().StringVar(&userOpt.Name, "name", "", "user name")
	userCmd.Flags().StringVar(&userOpt.Email, "email", "", "email")
	userCmd.Flags().StringVar(&userOpt.PhoneNumber, "phone", "", "phone number (optional)")
}

func showUser(cmd *cobra.Command, id string) error {
	var user map[string]any
	if err := apiGet(cmd, "/users/"+id, &user); err != nil {
		return err
	}

	return printJson(cmd, user)
}
