package cmd

import (
	"bufio"
	"fmt"
	"math/bits"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rangeCmd represents the range command
var rangeCmd = &cobra.Command{
	Use:   "range MIN MAX",
	Short: "Draw values from an inclusive range",
	Long: `Draw values from the inclusive range [MIN, MAX]. Values are reduced modulo
the span, so spans that do not divide the native word range carry a small bias. For example:
  randlib range 1 6 --count=10`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lo, err := parseUint(args[0])
		if err != nil {
			return fmt.Errorf("invalid MIN: %w", err)
		}
		hi, err := parseUint(args[1])
		if err != nil {
			return fmt.Errorf("invalid MAX: %w", err)
		}
		count := viper.GetInt("range.count")

		r, err := newGenerator()
		if err != nil {
			return err
		}

		w := bufio.NewWriter(cmd.OutOrStdout())
		for i := 0; i < count; i++ {
			v, err := r.Range(lo, hi)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, v)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(rangeCmd)

	flags := rangeCmd.Flags()
	flags.IntP("count", "c", 1, "number of values to draw")
	bindFlag(rangeCmd, "count")
}

func parseUint(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, bits.UintSize)
	return uint(v), err
}
