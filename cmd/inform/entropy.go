package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/inform-go/inform/dist"
	"github.com/inform-go/inform/shannon"
)

var entropyCmd = &cobra.Command{
	Use:   "entropy [file]",
	Short: "Compute the Shannon entropy of an observation sequence",
	Long: `Reads whitespace-separated non-negative integer observations from a
file (or stdin), tallies them into an empirical distribution, and prints the
Shannon entropy of that distribution.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		obs, err := readObservations(args)
		if err != nil {
			return err
		}
		d, err := buildDist(obs, viper.GetInt("workers"))
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"observations": humanize.Comma(int64(len(obs))),
			"support":      d.Len(),
		}).Debug("distribution built")

		h, err := shannon.Entropy(d, viper.GetFloat64("base"))
		if err != nil {
			return err
		}
		fmt.Printf("%.6f\n", h)
		return nil
	},
}

// buildDist tallies observations, fanning out across a worker pool when
// more than one worker is requested.
func buildDist(obs []int, workers int) (*dist.Dist, error) {
	if workers <= 1 {
		return dist.FromObservations(obs)
	}
	max := 0
	for _, o := range obs {
		if o > max {
			max = o
		}
	}
	d, err := dist.New(max + 1)
	if err != nil {
		return nil, err
	}
	if _, err := d.AccumulateParallel(obs, workers); err != nil {
		return nil, err
	}
	return d, nil
}

func init() {
	entropyCmd.Flags().Float64("base", shannon.DefaultBase, "logarithm base")
	entropyCmd.Flags().Int("workers", 1, "number of workers used to tally observations")
	viper.BindPFlag("base", entropyCmd.Flags().Lookup("base"))
	viper.BindPFlag("workers", entropyCmd.Flags().Lookup("workers"))
	rootCmd.AddCommand(entropyCmd)
}
