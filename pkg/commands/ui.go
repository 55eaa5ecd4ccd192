package commands

import (
	"github.com/spf13/cobra"

	"github.com/l9rins/foine-2025/pkg/feed"
	"github.com/l9rins/foine-2025/pkg/tui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive feed",
		Example: `
foine ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, client, err := environment()
			if err != nil {
				return err
			}
			repo := feed.NewRepository(client)
			likes := &feed.LikeMutator{Repo: repo}
			return tui.Run(repo, likes, client, sess)
		},
	}

	topLevel.AddCommand(cmd)
}
