package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/snipforge/snipforge/pkg/config"
	"github.com/snipforge/snipforge/pkg/snippet"
)

func newVarsCmd() *cobra.Command {
	var asTOML bool

	cmd := &cobra.Command{
		Use:   "vars",
		Short: "Show the effective snippet variables after normalization",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := configDir
			if dir == "" {
				dir, _ = os.Getwd()
			}
			cfg, err := config.Load(dir)
			if err != nil {
				return err
			}

			variables, err := snippet.NormalizeVariables(cfg.Variables)
			if err != nil {
				return err
			}

			if asTOML {
				table := make(map[string]string, variables.Len())
				for _, name := range variables.Names() {
					value, _ := variables.Get(name)
					table[name] = value
				}
				data, err := toml.Marshal(map[string]interface{}{"variables": table})
				if err != nil {
					return err
				}
				fmt.Print(string(data))
				return nil
			}

			for _, name := range variables.Names() {
				value, _ := variables.Get(name)
				fmt.Printf("%s = %s\n", name, value)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asTOML, "toml", false, "Print as a TOML variables table")
	return cmd
}
