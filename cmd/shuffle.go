package cmd

import (
	"fmt"
	"strings"

	"github.com/Ernest1338/randlib"
	"github.com/spf13/cobra"
)

// shuffleCmd represents the shuffle command
var shuffleCmd = &cobra.Command{
	Use:   "shuffle ITEM...",
	Short: "Print the arguments in shuffled order",
	Long: `Shuffle the arguments with one random transposition per item. For example:
  randlib shuffle alice bob carol dave`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newGenerator()
		if err != nil {
			return err
		}
		randlib.ShuffleSlice(r, args)
		_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(args, " "))
		return err
	},
}

func init() {
	rootCmd.AddCommand(shuffleCmd)
}
