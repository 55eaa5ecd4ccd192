package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func addDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "delete one of your posts",
		Example: `
foine delete 42
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("exactly one post id")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return errors.New("post id must be a number")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := strconv.ParseInt(args[0], 10, 64)
			_, client, err := environment()
			if err != nil {
				return err
			}
			if err := client.DeletePost(cmd.Context(), id); err != nil {
				return oo.HandleError(err)
			}
			fmt.Printf("Deleted #%d\n", id)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
