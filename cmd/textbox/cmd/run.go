package cmd

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/textbox/foundation/core/error"
	"github.com/msto63/textbox/foundation/core/log"
	"github.com/msto63/textbox/foundation/utils/recipe"
)

func newRunCmd(a *app) *cobra.Command {
	var recipePath string

	runCmd := &cobra.Command{
		Use:   "run --recipe FILE [TEXT...]",
		Short: "Apply a recipe to text",
		Long: `Applies the steps of a TOML or YAML recipe to TEXT, or to standard
input when no TEXT is given, and prints the result.

Supported operations: cut, cut_from, replace, replace_pattern, append, prepend.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := recipe.Load(recipePath)
			if err != nil {
				if mdwerror.HasCode(err, mdwerror.CodeNotFound) {
					return errors.WithHint(err, "check the --recipe path")
				}
				return err
			}

			text, err := readText(cmd, args)
			if err != nil {
				return err
			}

			out, err := recipe.NewRunner(a.logger).Run(cmd.Context(), r, text)
			if err != nil {
				a.logger.LogError(err)
				return err
			}

			a.logger.Info("recipe applied", log.Fields{
				"recipe": r.Name,
				"steps":  len(r.Steps),
			})
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	runCmd.Flags().StringVarP(&recipePath, "recipe", "r", "", "recipe file (.toml, .yaml or .yml)")
	_ = runCmd.MarkFlagRequired("recipe")
	return runCmd
}
