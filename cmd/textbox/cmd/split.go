package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/textbox/foundation/utils/stringx"
	"github.com/msto63/textbox/foundation/utils/textbox"
)

func newSplitCmd(a *app) *cobra.Command {
	var delimiter string

	splitCmd := &cobra.Command{
		Use:   "split [TEXT...]",
		Short: "Split text on a delimiter",
		Long: `Splits TEXT, or standard input, on a literal delimiter and prints one
segment per line. Empty segments are kept. The delimiter defaults to
split.delimiter from the configuration, else a single space.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}

			delim := stringx.FirstNonEmpty(delimiter, a.cfg.GetString("split.delimiter"), textbox.DefaultDelimiter)
			for _, part := range textbox.New(text).Split(delim) {
				fmt.Fprintln(cmd.OutOrStdout(), part)
			}
			return nil
		},
	}

	splitCmd.Flags().StringVarP(&delimiter, "delimiter", "d", "", "delimiter (default: split.delimiter or a space)")
	return splitCmd
}
