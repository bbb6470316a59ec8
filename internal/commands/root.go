package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/lemma"
	"github.com/simonhull/firebird-suite/lemma/internal/config"
	"github.com/simonhull/firebird-suite/lemma/internal/logger"
	"github.com/simonhull/firebird-suite/lemma/internal/output"
)

// env is shared by every command under one root.
type env struct {
	verbose    bool
	configPath string

	cfg *config.Config
	log logger.Logger
}

func (e *env) printer(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), output.WithVerbose(e.verbose))
}

// skipConfig marks commands that must run even when lemma.yml is broken.
const skipConfig = "skipConfig"

func (e *env) load(cmd *cobra.Command) error {
	level := logger.LevelSilent
	if cmd.Annotations[skipConfig] == "" {
		cfg, err := config.Load(e.configPath)
		if err != nil {
			return err
		}
		e.cfg = cfg
		level = cfg.LogLevel()
	}
	if e.verbose {
		level = logger.LevelDebug
	}

	e.log = logger.NewLogger(level, cmd.ErrOrStderr()).WithFields(logger.F("cmd", cmd.Name()))
	if e.cfg != nil {
		e.log.Debug("configuration loaded", logger.F("ring", e.cfg.Fixtures.Ring.Name), logger.F("module", e.cfg.Fixtures.Module.Name))
	}
	return nil
}

func newRoot(use, short, long string, e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		Long:          long,
		Version:       lemma.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.load(cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&e.verbose, "verbose", "v", false, "Show localizations and debug logs")
	cmd.PersistentFlags().StringVar(&e.configPath, "config", "", "Path to config file (default ./"+config.FileName+")")

	return cmd
}

// RootCmd creates the lemma command with every subcommand registered.
func RootCmd() *cobra.Command {
	e := &env{}
	cmd := newRoot("lemma", "Toy checkers for two commutative algebra theorems",
		`Lemma prints conceptual verifications of two statements about modules
over a Noetherian ring:

• projective ⇔ locally free at primes ⇔ locally free at maximal ideals
• ⋂ Ass(M) = √Ann(M)

The objects are labelled records, not computed algebra. Results are
illustrations, not proofs.`, e)

	cmd.AddCommand(projectiveCmd(e))
	cmd.AddCommand(primesCmd(e))
	cmd.AddCommand(serveCmd(e))
	cmd.AddCommand(configCmd(e))
	cmd.AddCommand(&cobra.Command{
		Use:         "version",
		Short:       "Print version information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Lemma v%s\n", lemma.Version)
			return err
		},
	})

	return cmd
}

// ProjectiveRootCmd creates a standalone command that only runs the
// projectivity checker.
func ProjectiveRootCmd() *cobra.Command {
	e := &env{}
	cmd := newRoot("projective", "Check projective ⇔ locally free over a Noetherian ring", "", e)
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runProjective(cmd, e)
	}
	return cmd
}

// AssPrimesRootCmd creates a standalone command that only runs the
// associated primes checker.
func AssPrimesRootCmd() *cobra.Command {
	e := &env{}
	cmd := newRoot("assprimes", "Compare ⋂ Ass(M) with √Ann(M)", "", e)
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runPrimes(cmd, e)
	}
	return cmd
}
