package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/inform-go/inform/effectiveinfo"
)

var effectiveInfoCmd = &cobra.Command{
	Use:   "effective-info <tpm.csv>",
	Short: "Compute the effective information of a transition probability matrix",
	Long: `Reads a square, row-stochastic transition probability matrix from a
CSV file and prints its effective information in bits. By default the
intervention distribution is uniform; pass --intervention to weight the
states differently.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := readMatrix(args[0])
		if err != nil {
			return err
		}
		tpm, err := effectiveinfo.NewTPM(m)
		if err != nil {
			return err
		}
		inter, err := parseWeights(viper.GetString("intervention"))
		if err != nil {
			return err
		}
		log.WithField("states", tpm.Size()).Debug("matrix loaded")

		ei, err := effectiveinfo.EffectiveInfo(tpm, inter)
		if err != nil {
			return err
		}
		fmt.Printf("%.6f\n", ei)
		return nil
	},
}

func init() {
	effectiveInfoCmd.Flags().String("intervention", "", "comma-separated intervention weights, one per state")
	viper.BindPFlag("intervention", effectiveInfoCmd.Flags().Lookup("intervention"))
	rootCmd.AddCommand(effectiveInfoCmd)
}
