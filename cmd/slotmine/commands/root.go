// Package commands wires the slotmine CLI: shared configuration on the
// root command, a demo walkthrough, and a timing harness. All settings
// resolve through viper (flags > SLOTMINE_* env > optional config file)
// and are passed down as explicit values — the library sees no globals.
package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/slotmine/slotscreen"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "slotmine",
	Short: "Mine connected same-symbol patterns on slot screens",
	Long: `slotmine finds connected, symbol-uniform clusters on a slot-machine
screen by growing them apriori-style from adjacent pairs up to the
configured support size.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.slotmine.yaml)")
	rootCmd.PersistentFlags().Int("rows", 3, "screen rows")
	rootCmd.PersistentFlags().Int("reels", 5, "screen reels (columns)")
	rootCmd.PersistentFlags().String("symbols", "ABCDEFGHIJ", "symbol alphabet for random screens")
	rootCmd.PersistentFlags().Int64("seed", 0, "rng seed (0 = fixed default)")
	rootCmd.PersistentFlags().Int("min-support", 5, "target cluster size and support threshold")

	viper.BindPFlag("rows", rootCmd.PersistentFlags().Lookup("rows"))
	viper.BindPFlag("reels", rootCmd.PersistentFlags().Lookup("reels"))
	viper.BindPFlag("symbols", rootCmd.PersistentFlags().Lookup("symbols"))
	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
	viper.BindPFlag("min-support", rootCmd.PersistentFlags().Lookup("min-support"))

	rootCmd.AddCommand(demoCmd(), benchCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".slotmine")
	}

	viper.SetEnvPrefix("SLOTMINE")
	viper.AutomaticEnv()

	// Missing config file is fine; flags and env cover everything.
	_ = viper.ReadInConfig()
}

// screenConfig assembles the generation Config from the resolved
// settings.
func screenConfig() slotscreen.Config {
	return slotscreen.Config{
		Rows:    viper.GetInt("rows"),
		Reels:   viper.GetInt("reels"),
		Symbols: []rune(viper.GetString("symbols")),
		Seed:    viper.GetInt64("seed"),
	}
}
