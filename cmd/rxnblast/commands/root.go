// cmd/rxnblast/commands/root.go
package commands

import (
	"github.com/spf13/cobra"
	"rxnblast/internal/version"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "rxnblast",
	Short: "Validate candidate metabolic reactions by protein alignment evidence",
	Long: `rxnblast filters gap-filling candidate reactions down to those whose
annotated proteins have sequence-level evidence in a target organism:
each reaction's cross-referenced proteins are aligned (Blastp) against
the species proteome and, optionally, against its genome (TBlastN) when
protein-level evidence is absent.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI. Called once, by main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(newValidateCmd())
}
