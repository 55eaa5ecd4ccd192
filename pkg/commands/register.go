package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/l9rins/foine-2025/pkg/commands/options"
)

func addRegister(topLevel *cobra.Command) {
	ao := &options.AuthOptions{}

	cmd := &cobra.Command{
		Use:   "register",
		Short: "create an account and sign in",
		Example: `
foine register -u someone -e someone@example.com -p secret
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, client, err := environment()
			if err != nil {
				return err
			}
			token, err := client.Register(cmd.Context(), ao.Username, ao.Email, ao.Password)
			if err != nil {
				return oo.HandleError(err)
			}
			if err := sess.Establish(token); err != nil {
				return err
			}
			fmt.Printf("Welcome, %s\n", sess.Identity().Username)
			return nil
		},
	}

	options.AddCredentialArgs(cmd, ao)
	options.AddEmailArg(cmd, ao)

	topLevel.AddCommand(cmd)
}
