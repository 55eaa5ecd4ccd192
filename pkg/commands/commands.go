package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/l9rins/foine-2025/pkg/api"
	"github.com/l9rins/foine-2025/pkg/config"
	"github.com/l9rins/foine-2025/pkg/session"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "foine",
		Short: base.Wrap80("An image board in your terminal."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addLogin(topLevel)
	addRegister(topLevel)
	addLogout(topLevel)
	addPosts(topLevel)
	addCreate(topLevel)
	addDelete(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// environment builds the shared client plumbing: resolved config, the
// restored session, and an API client carrying its token.
func environment() (*session.Store, *api.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	sess := session.NewStore(cfg.DataPath())
	if err := sess.Restore(); err != nil {
		return nil, nil, fmt.Errorf("restore session: %w", err)
	}
	client := api.NewClient(cfg.ServerURL(), nil)
	client.SetToken(sess.Token())
	return sess, client, nil
}
