package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/slotmine/apriori"
	"github.com/katalvlaran/slotmine/slotscreen"
)

func benchCmd() *cobra.Command {
	var number int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time repeated mining runs over a seeded random screen",
		RunE: func(cmd *cobra.Command, args []string) error {
			screen, err := slotscreen.Random(screenConfig())
			if err != nil {
				return err
			}

			support := viper.GetInt("min-support")
			start := time.Now()
			for i := 0; i < number; i++ {
				if _, err = apriori.Mine(screen, support); err != nil {
					return err
				}
			}
			elapsed := time.Since(start)

			fmt.Fprintf(cmd.OutOrStdout(), "Ran %d simulations in %s.\n", number, elapsed)

			return nil
		},
	}
	cmd.Flags().IntVarP(&number, "number", "n", 1000000, "number of simulations to run")

	return cmd
}
