package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/lemma/internal/config"
	"github.com/simonhull/firebird-suite/lemma/internal/logger"
)

func configCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage lemma.yml",
	}
	cmd.AddCommand(configInitCmd(e))
	return cmd
}

func configInitCmd(e *env) *cobra.Command {
	var (
		path  string
		force bool
	)

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Write the default configuration",
		Annotations: map[string]string{skipConfig: "true"},
		Long: `Write lemma.yml with the built-in fixtures so they can be edited.

Example:
  lemma config init --path ./lemma.yml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(path, config.Default(), force); err != nil {
				return err
			}
			e.log.Info("wrote config", logger.F("path", path))

			p := e.printer(cmd)
			p.Success(fmt.Sprintf("Created %s", path))
			return p.Err()
		},
	}

	cmd.Flags().StringVar(&path, "path", config.FileName, "Where to write the config file")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}
