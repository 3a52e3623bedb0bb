package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tcztzy/wenyan/hanzi"
)

func numCmd() *cobra.Command {
	var seq bool

	c := &cobra.Command{
		Use:   "num <numeral>",
		Short: "Convert a Chinese numeral to decimal",
		Long: "Convert a Chinese numeral to decimal.\n\n" +
			"The default reading understands positional units (三百二十一 → 321)\n" +
			"and fractions (三分 → 0.3). With --seq the numeral is read as a\n" +
			"bare digit sequence instead (三二一 → 321), units rejected.",
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if seq {
				n, err := hanzi.ParseInt(args[0])
				if err != nil {
					return err
				}
				fmt.Println(n.String())
				return nil
			}

			dec, err := hanzi.Number(args[0])
			if err != nil {
				return err
			}
			fmt.Println(dec)
			return nil
		},
	}

	c.Flags().BoolVar(&seq, "seq", false, "read the numeral as a plain digit sequence")
	return c
}
