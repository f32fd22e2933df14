package commands

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/slotmine/apriori"
	"github.com/katalvlaran/slotmine/slotscreen"
)

func demoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Mine the fixed demo screen and step through each match",
		RunE: func(cmd *cobra.Command, args []string) error {
			screen := slotscreen.Demo()
			out := cmd.OutOrStdout()

			if err := slotscreen.Render(out, screen, nil); err != nil {
				return err
			}

			matches, err := apriori.Mine(screen, viper.GetInt("min-support"),
				apriori.WithOnStage(func(size, count int) {
					fmt.Fprintf(out, "Found %d %d-item matches!\n", count, size)
				}))
			if err != nil {
				return err
			}

			// One masked screen per match; Enter advances.
			in := bufio.NewScanner(cmd.InOrStdin())
			for _, m := range matches {
				keep := func(x, y int, sym rune) bool {
					return m.Contains(apriori.Node{X: x, Y: y, Symbol: sym})
				}
				if err = slotscreen.Render(out, screen, keep); err != nil {
					return err
				}
				fmt.Fprintln(out, m)
				in.Scan()
			}
			fmt.Fprintln(out, "done!")

			return nil
		},
	}

	return cmd
}
