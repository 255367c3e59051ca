package cmd

import (
	"bufio"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// uuidCmd represents the uuid command
var uuidCmd = &cobra.Command{
	Use:   "uuid",
	Short: "Print version 4 UUIDs",
	Long: `Print version 4 UUIDs filled from the generator. They are unique enough for
test fixtures but predictable, so never use them as secrets. For example:
  randlib uuid --count=5`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newGenerator()
		if err != nil {
			return err
		}

		w := bufio.NewWriter(cmd.OutOrStdout())
		for i := 0; i < viper.GetInt("uuid.count"); i++ {
			id, err := uuid.NewRandomFromReader(r)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, id)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(uuidCmd)

	flags := uuidCmd.Flags()
	flags.IntP("count", "c", 1, "number of UUIDs to print")
	bindFlag(uuidCmd, "count")
}
