// cmd/rxnblast/commands/validate.go
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"rxnblast/internal/app"
	"rxnblast/internal/config"
)

func newValidateCmd() *cobra.Command {
	var (
		cfgPath string
		flags   config.Run
	)

	cmd := &cobra.Command{
		Use:   "validate [reaction-id ...]",
		Short: "Run the alignment validation pipeline over candidate reactions",
		Long: `validate maps each candidate reaction to the proteins annotated as
catalyzing it, resolves their sequences from the reference archive, and
aligns them against the target proteome (and genome, when given). It
writes the hits table, the reaction/protein summary table, and the
retained-reaction artifact under the output directory, and exits
successfully even when no reaction is retained.

Reactions are taken from positional arguments, or from --reaction-file,
or from the run manifest, in that order of precedence.`,
		Example: `  rxnblast validate RXN-14213 RXN-8631 \
      --xrefs xrefs.tsv --proteins protein-seq-ids-reduced-70.fasta \
      --proteome proteome.fasta --output out/

  rxnblast validate --config run.yml --genome genome.fasta`,
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := resolveRun(cmd, cfgPath, &flags, args)
			if err != nil {
				return err
			}
			_, err = app.Run(cmd.Context(), app.Options{
				Reactions:       run.Reactions,
				Output:          run.Output,
				XrefStore:       run.XrefStore,
				ProteinArchive:  run.ProteinArchive,
				Proteome:        run.Proteome,
				Genome:          run.Genome,
				EValue:          run.EValue,
				SkipAlignErrors: run.SkipAlignErrors,
			}, cmd.OutOrStdout())
			return err
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "YAML run manifest supplying defaults")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "output directory for all artifacts")
	cmd.Flags().StringVar(&flags.XrefStore, "xrefs", "", "annotated network store dump (reaction cross-references)")
	cmd.Flags().StringVar(&flags.ProteinArchive, "proteins", "", "reference protein sequence archive (FASTA, keyed by accession)")
	cmd.Flags().StringVar(&flags.Proteome, "proteome", "", "target proteome (FASTA), primary alignment target")
	cmd.Flags().StringVar(&flags.Genome, "genome", "", "target genome (FASTA); enables the TBlastN fallback stage")
	cmd.Flags().Float64Var(&flags.EValue, "e-value", config.DefaultEValue, "alignment e-value threshold")
	cmd.Flags().StringVar(&flags.ReactionFile, "reaction-file", "", "file with one reaction id per line")
	cmd.Flags().BoolVar(&flags.SkipAlignErrors, "skip-align-errors", false, "skip failed alignment attempts instead of aborting")

	return cmd
}

// resolveRun merges the manifest (if any) with CLI overrides and the
// positional reaction list, then validates the result.
func resolveRun(cmd *cobra.Command, cfgPath string, flags *config.Run, args []string) (*config.Run, error) {
	run := &config.Run{EValue: config.DefaultEValue}
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return nil, err
		}
		run = loaded
	}

	// Flags set on the command line win over the manifest.
	if cmd.Flags().Changed("output") {
		run.Output = flags.Output
	}
	if cmd.Flags().Changed("xrefs") {
		run.XrefStore = flags.XrefStore
	}
	if cmd.Flags().Changed("proteins") {
		run.ProteinArchive = flags.ProteinArchive
	}
	if cmd.Flags().Changed("proteome") {
		run.Proteome = flags.Proteome
	}
	if cmd.Flags().Changed("genome") {
		run.Genome = flags.Genome
	}
	if cmd.Flags().Changed("e-value") {
		run.EValue = flags.EValue
	}
	if cmd.Flags().Changed("reaction-file") {
		run.ReactionFile = flags.ReactionFile
	}
	if cmd.Flags().Changed("skip-align-errors") {
		run.SkipAlignErrors = flags.SkipAlignErrors
	}

	switch {
	case len(args) > 0:
		run.Reactions = args
		run.ReactionFile = ""
	case run.ReactionFile != "":
		rxns, err := config.LoadReactionFile(run.ReactionFile)
		if err != nil {
			return nil, err
		}
		run.Reactions = rxns
		run.ReactionFile = ""
	}

	if err := run.Validate(); err != nil {
		return nil, fmt.Errorf("invalid run: %w", err)
	}
	return run, nil
}
