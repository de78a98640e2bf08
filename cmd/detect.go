package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/helmcode/codeopti/pkg/language"
)

func NewDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect [FILE|-]",
		Short: "Guess the language of a code snippet",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := readSource(cmd, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), language.Detect(code))
			return err
		},
	}
}
