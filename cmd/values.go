package cmd

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"

	"github.com/Ernest1338/randlib"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// valuesCmd represents the values command
var valuesCmd = &cobra.Command{
	Use:   "values",
	Short: "Print one value of every width",
	Long: `Print the maximum and a generated value for every integer width, plus a bool. For example:
  randlib values --rounds=3`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rounds := viper.GetInt("values.rounds")
		if rounds < 0 {
			return fmt.Errorf("invalid rounds %d", rounds)
		}
		r, err := newGenerator()
		if err != nil {
			return err
		}
		return printValues(cmd.OutOrStdout(), r, rounds)
	},
}

func init() {
	rootCmd.AddCommand(valuesCmd)

	flags := valuesCmd.Flags()
	flags.IntP("rounds", "n", 3, "number of rounds to print")
	bindFlag(valuesCmd, "rounds")
}

type valueRow struct {
	name string
	max  any
	gen  func(r *randlib.Rand) any
}

var valueRows = []valueRow{
	{"uint", uint(math.MaxUint), func(r *randlib.Rand) any { return r.Uint() }},
	{"u8", uint8(math.MaxUint8), func(r *randlib.Rand) any { return r.Uint8() }},
	{"i8", int8(math.MaxInt8), func(r *randlib.Rand) any { return r.Int8() }},
	{"u16", uint16(math.MaxUint16), func(r *randlib.Rand) any { return r.Uint16() }},
	{"i16", int16(math.MaxInt16), func(r *randlib.Rand) any { return r.Int16() }},
	{"u32", uint32(math.MaxUint32), func(r *randlib.Rand) any { return r.Uint32() }},
	{"i32", int32(math.MaxInt32), func(r *randlib.Rand) any { return r.Int32() }},
	{"u64", uint64(math.MaxUint64), func(r *randlib.Rand) any { return r.Uint64() }},
	{"i64", int64(math.MaxInt64), func(r *randlib.Rand) any { return r.Int64() }},
	{"u128", randlib.MaxUint128, func(r *randlib.Rand) any { return r.Uint128() }},
	{"i128", randlib.MaxInt128, func(r *randlib.Rand) any { return r.Int128() }},
}

// isTerminal reports whether fd is a terminal; replaced in tests.
var isTerminal = term.IsTerminal

func printValues(out io.Writer, r *randlib.Rand, rounds int) error {
	var w io.Writer
	var flush func() error
	if f, ok := out.(*os.File); ok && isTerminal(int(f.Fd())) {
		tw := tabwriter.NewWriter(f, 0, 8, 2, ' ', tabwriter.AlignRight)
		w, flush = tw, tw.Flush
	} else {
		bw := bufio.NewWriter(out)
		w, flush = bw, bw.Flush
	}

	for i := 0; i < rounds; i++ {
		for _, row := range valueRows {
			fmt.Fprintf(w, "%s MAX:\t%v\tRNG:\t%v\t\n", row.name, row.max, row.gen(r))
		}
		fmt.Fprintf(w, "bool RNG:\t\t\t%v\t\n", r.Bool())
	}
	return flush()
}
