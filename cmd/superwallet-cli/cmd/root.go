/*
Copyright © 2025 zigaplabs
*/
package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "superwallet-cli",
	Short: "rest cmd for super-wallet service",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("endpoint", "l", "http://localhost:8080/api", "api endpoint")
	viper.BindPFlag("endpoint", rootCmd.PersistentFlags().Lookup("endpoint"))
}

func apiGet(cmd *cobra.Command, path string, out any) error {
	req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, viper.GetString("endpoint")+path, nil)
	if err != nil {
		return err
	}

	return doRequest(req, out)
}

func apiPost(cmd *cobra.Command, path string, body, out any) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(cmd.Context(), http.MethodPost, viper.GetString("endpoint")+path, &buf)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	return doRequest(req, out)
}

func doRequest(req *http.Request, out any) error {
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var body struct {
			Code int    `json:"code"`
			Msg  string `json:"msg"`
		}

		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return fmt.Errorf("request failed with status %d", resp.StatusCode)
		}

		return errors.New(body.Msg)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func printJson(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	cmd.Println(string(b))
	return nil
}
