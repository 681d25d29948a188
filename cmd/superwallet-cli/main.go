/*
Copyright © 2025 zigaplabs
*/
package main

import "github.com/zigaplabs/super-wallet/cmd/superwallet-cli/cmd"

func main() {
	cmd.Execute()
}
