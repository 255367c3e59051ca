package cmd

import (
	"fmt"

	"github.com/Ernest1338/randlib"
	"github.com/spf13/cobra"
)

// pickCmd represents the pick command
var pickCmd = &cobra.Command{
	Use:   "pick ITEM...",
	Short: "Print one of the arguments",
	Long: `Pick one argument at random. For example:
  randlib pick heads tails`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newGenerator()
		if err != nil {
			return err
		}
		item, err := randlib.Pick(r, args)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), *item)
		return err
	},
}

func init() {
	rootCmd.AddCommand(pickCmd)
}
