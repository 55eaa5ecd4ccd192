package options

import (
	"github.com/spf13/cobra"
)

// PostOptions captures the fields of a new post.
type PostOptions struct {
	Title       string
	Description string
	Tags        []string
	File        string
}

func AddPostArgs(cmd *cobra.Command, o *PostOptions) {
	cmd.Flags().StringVarP(&o.Title, "title", "t", "",
		"Title of the post.")
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Description of the post.")
	cmd.Flags().StringSliceVar(&o.Tags, "tag", nil,
		"Tag the post. Repeatable.")
	cmd.Flags().StringVarP(&o.File, "file", "f", "",
		"Path to the image file.")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("file")
}

// FilterOptions narrows feed listings.
type FilterOptions struct {
	Search string
	Tag    string
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Search, "search", "s", "",
		"Keep posts whose title or description contains this text.")
	cmd.Flags().StringVar(&o.Tag, "tag", "",
		"Keep posts carrying exactly this tag.")
}
