package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/snipforge/snipforge/pkg/config"
	"github.com/snipforge/snipforge/pkg/display"
	"github.com/snipforge/snipforge/pkg/export"
	"github.com/snipforge/snipforge/pkg/pipeline"
	"github.com/snipforge/snipforge/pkg/snippet"
)

func newCompileCmd() *cobra.Command {
	var format string
	var outPath string

	cmd := &cobra.Command{
		Use:   "compile <snippet-file>",
		Short: "Compile a snippet file and print or export the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			compiled, cfg, err := compileFile(cmd, args[0])
			if err != nil {
				display.NewRenderer(os.Stderr, "auto", false).RenderError(err)
				return err
			}

			if format == "" && outPath != "" {
				format = cfg.Export.Format
			}
			if format != "" {
				data, err := export.Encode(format, compiled)
				if err != nil {
					return err
				}
				if outPath == "" {
					fmt.Print(string(data))
					return nil
				}
				if err := os.WriteFile(outPath, data, 0644); err != nil {
					return fmt.Errorf("failed to write %s: %w", outPath, err)
				}
				fmt.Printf("wrote %d snippets to %s\n", len(compiled), outPath)
				return nil
			}

			renderer := display.NewRenderer(os.Stdout, cfg.Display.Color, cfg.Display.ShowExclusions)
			renderer.RenderList(compiled)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Export format: json, yaml, textmate (default: styled listing)")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Write export to a file instead of stdout")
	return cmd
}

// compileFile runs the whole pipeline for a snippet file, resolving config
// from --config-dir or the file's own directory.
func compileFile(cmd *cobra.Command, path string) ([]snippet.CompiledSnippet, *config.Config, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	dir := configDir
	if dir == "" {
		dir = filepath.Dir(path)
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, nil, err
	}

	p := pipeline.New()
	compiled, err := p.CompileVariables(cmd.Context(), string(source), path, cfg.Variables)
	if err != nil {
		return nil, nil, err
	}
	return compiled, cfg, nil
}
