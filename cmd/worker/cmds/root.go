package cmds

import (
	"context"
	"encoding/json"
	"os"

	"github.com/pandodao/generic"
	"github.com/spf13/cobra"
	"github.com/zigaplabs/super-wallet/core"
)

type Cmd struct {
	Users   core.UserStore
	Refunds core.RefundStore
}

func (c *Cmd) Run(ctx context.Context, args []string) error {
	root := &cobra.Command{
		Use:   "super-wallet",
		Short: "super-wallet",
	}

	root.AddCommand(c.exportUsersCmd())
	root.AddCommand(c.pendingRefundsCmd())

	root.SetArgs(args)
	root.SetOut(os.Stdout)

	return root.ExecuteContext(ctx)
}

func (c *Cmd) exportUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export-users",
		Short: "export registered users",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			users, err := c.Users.List(ctx, 0, 1000)
			if err != nil {
				return err
			}

			return jsonPrint(cmd, users)
		},
	}
}

func (c *Cmd) pendingRefundsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pending-refunds",
		Short: "list refunds waiting for review",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			refunds, err := c.Refunds.ListStatus(ctx, core.RefundStatusPending, 100)
			if err != nil {
				return err
			}

			return jsonPrint(cmd, generic.MapSlice(refunds, reviewRowFromRefund))
		},
	}
}

func jsonPrint(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
