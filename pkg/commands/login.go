package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/l9rins/foine-2025/pkg/commands/options"
)

func addLogin(topLevel *cobra.Command) {
	ao := &options.AuthOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "sign in and persist the session",
		Example: `
foine login -u someone -p secret
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, client, err := environment()
			if err != nil {
				return err
			}
			token, err := client.Login(cmd.Context(), ao.Username, ao.Password)
			if err != nil {
				return oo.HandleError(err)
			}
			if err := sess.Establish(token); err != nil {
				return err
			}
			fmt.Printf("Logged in as %s\n", sess.Identity().Username)
			return nil
		},
	}

	options.AddCredentialArgs(cmd, ao)

	topLevel.AddCommand(cmd)
}
