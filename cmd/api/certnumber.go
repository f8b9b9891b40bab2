package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"bloodlink/internal/certificate"
)

var certNumberCommand = &cli.Command{
	Name:  "cert-number",
	Usage: "Generate certificate numbers in the issued format",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"c"},
			Usage:   "Number of certificate numbers to generate",
			Value:   1,
		},
	},
	Action: func(c *cli.Context) error {
		for range c.Int("count") {
			n, err := certificate.NewNumber(time.Now())
			if err != nil {
				return err
			}
			fmt.Println(n)
		}
		return nil
	},
}
