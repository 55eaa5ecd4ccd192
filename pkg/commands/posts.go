package commands

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/l9rins/foine-2025/pkg/commands/options"
	"github.com/l9rins/foine-2025/pkg/feed"
	"github.com/l9rins/foine-2025/pkg/filter"
	"github.com/l9rins/foine-2025/pkg/printers"
)

func addPosts(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	fo := &options.FilterOptions{}
	po := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "posts [id]",
		Short: "list the feed, or show one post",
		Example: `
foine posts
foine posts --search sunset
foine posts --tag nature --json
foine posts 42
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return nil
			}
			if len(args) > 1 {
				return errors.New("at most one post id")
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.New("post id must be a number")
			}
			io.ID = id
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, err := environment()
			if err != nil {
				return err
			}

			pp := printers.PrettyPrint{ShowID: io.ShowID}

			if io.ID != 0 {
				p, err := client.GetPost(cmd.Context(), io.ID)
				if err != nil {
					return po.HandleError(err)
				}
				if po.JSON {
					return po.PrintJSON(p)
				}
				pp.Detail(p)
				return nil
			}

			repo := feed.NewRepository(client)
			if _, err := repo.FetchAll(cmd.Context()); err != nil {
				return po.HandleError(err)
			}
			posts := filter.VisiblePosts(repo.Posts(), fo.Search, fo.Tag)
			if po.JSON {
				return po.PrintJSON(posts)
			}
			pp.TitleWithCount("Feed", len(posts))
			pp.Feed(posts...)
			return nil
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddIDArgs(cmd, io)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, po)

	topLevel.AddCommand(cmd)
}
