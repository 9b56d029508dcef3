package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/snipforge/snipforge/pkg/display"
	"github.com/snipforge/snipforge/pkg/style"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <snippet-file>...",
		Short: "Validate snippet files without exporting anything",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var failed bool
			for _, path := range args {
				compiled, _, err := compileFile(cmd, path)
				if err != nil {
					failed = true
					display.NewRenderer(os.Stderr, "auto", false).RenderError(err)
					continue
				}
				fmt.Printf("%s %s: %d snippets\n", style.SuccessStyle.Render("ok"), path, len(compiled))
			}
			if failed {
				return fmt.Errorf("one or more snippet files failed to compile")
			}
			return nil
		},
	}
}
