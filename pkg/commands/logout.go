package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func addLogout(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "forget the persisted session",
		Example: `
foine logout
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, _, err := environment()
			if err != nil {
				return err
			}
			if err := sess.Clear(); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
