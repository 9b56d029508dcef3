package main

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed docs/snippets.md
var snippetDocs string

func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "docs",
		Short: "Show the snippet file format guide",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(100),
			)
			if err != nil {
				// Fall back to the raw markdown if the terminal renderer
				// cannot be constructed.
				fmt.Print(snippetDocs)
				return nil
			}
			out, err := renderer.Render(snippetDocs)
			if err != nil {
				fmt.Print(snippetDocs)
				return nil
			}
			fmt.Print(out)
			return nil
		},
	}
}
