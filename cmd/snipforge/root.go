package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/snipforge/snipforge/internal/version"
	"github.com/snipforge/snipforge/pkg/logging"
)

var (
	verbosity int
	configDir string

	rootCmd = &cobra.Command{
		Use:   "snipforge",
		Short: "Compile snippet declarations into matchable expansion rules",
		Long: `snipforge compiles user-authored snippet declarations into validated,
typed rules for a text-expansion engine: literal triggers, anchored regex
triggers, and visual (selection-aware) snippets, with variable substitution
and per-trigger environment exclusions.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Directory to search for snipforge.toml (default: the snippet file's directory)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(manCmd)
	rootCmd.AddCommand(newCompileCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newVarsCmd())
	rootCmd.AddCommand(newDocsCmd())
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("snipforge version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}

var manCmd = &cobra.Command{
	Use:    "man",
	Short:  "Generate man pages",
	Hidden: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		header := &doc.GenManHeader{
			Title:   "SNIPFORGE",
			Section: "1",
		}
		return doc.GenManTree(rootCmd, header, ".")
	},
}
