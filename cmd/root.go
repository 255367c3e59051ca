package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Ernest1338/randlib"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "randlib",
	Short: "Pseudo-random value generator.",
	Long: `Pseudo-random value generator.
Repo: https://github.com/Ernest1338/randlib
Every run is seeded from the process memory layout and the wall clock, so
output differs between runs. Not suitable for cryptographic use. For example:
  randlib values --rounds=3
  randlib range 1 6 --count=10
  randlib shuffle alice bob carol`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.randlib.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			log.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".randlib" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".randlib")
	}

	viper.SetEnvPrefix("randlib")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// bindFlag binds a command flag to the viper key of the same name, scoped by
// the command name so sibling commands can reuse flag names.
func bindFlag(cmd *cobra.Command, name string) {
	if err := viper.BindPFlag(cmd.Name()+"."+name, cmd.Flags().Lookup(name)); err != nil {
		log.Fatalln(err)
	}
}

func newGenerator() (*randlib.Rand, error) {
	r, err := randlib.New()
	if err != nil {
		return nil, fmt.Errorf("seed generator: %w", err)
	}
	return r, nil
}
