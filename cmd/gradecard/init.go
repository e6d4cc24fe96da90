package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nao1215/gradecard/internal/config"
)

// NewInitCmd creates the init command, which writes a commented
// configuration file listing every setting and its default.
func NewInitCmd() *cobra.Command {
	var (
		output string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented .gradecard configuration file",
		Example: `  gradecard init
  gradecard init -o ~/.config/gradecard/config.yaml -f`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := config.WriteTemplate(output, force)
			if errors.Is(err, config.ErrConfigExists) {
				return fmt.Errorf("%w (use -f to overwrite)", err)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created configuration file: %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", config.DefaultConfigFile, "path of the configuration file to write")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	return cmd
}
