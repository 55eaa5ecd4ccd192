package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/l9rins/foine-2025/pkg/api"
	"github.com/l9rins/foine-2025/pkg/commands/options"
	"github.com/l9rins/foine-2025/pkg/printers"
)

func addCreate(topLevel *cobra.Command) {
	po := &options.PostOptions{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "upload a new post",
		Example: `
foine create -t "Alpine Lake" -f lake.jpg --tag nature --tag water
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, err := environment()
			if err != nil {
				return err
			}
			created, err := client.CreatePost(cmd.Context(), api.CreateRequest{
				Title:       po.Title,
				Description: po.Description,
				FilePath:    po.File,
				Tags:        po.Tags,
			})
			if err != nil {
				return oo.HandleError(err)
			}
			fmt.Printf("Posted #%d\n", created.ID)
			pp := printers.PrettyPrint{}
			pp.Detail(created)
			return nil
		},
	}

	options.AddPostArgs(cmd, po)

	topLevel.AddCommand(cmd)
}
