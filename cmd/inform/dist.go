package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/inform-go/inform/dist"
)

var distCmd = &cobra.Command{
	Use:   "dist [file]",
	Short: "Show the empirical distribution of an observation sequence",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		obs, err := readObservations(args)
		if err != nil {
			return err
		}
		d, err := dist.FromObservations(obs)
		if err != nil {
			return err
		}
		ps, err := d.Dump()
		if err != nil {
			return err
		}

		fmt.Println(d)
		fmt.Printf("observations: %s\n", humanize.Comma(int64(d.Counts())))
		for i, p := range ps {
			fmt.Printf("%4d  %.6f\n", i, p)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(distCmd)
}
