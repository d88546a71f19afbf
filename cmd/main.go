// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package main

import (
	"fmt"
	"log"
	"os"
	"time"

	vec "github.com/facebookincubator/go-vecext"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Commands: []*cli.Command{
			{
				Name:  "bench",
				Usage: "bulk append elements and report timing and growth",
				Flags: []cli.Flag{
					&cli.UintFlag{
						Name:    "count",
						Aliases: []string{"n"},
						Value:   1000000,
						Usage:   "number of elements to append",
					},
					&cli.BoolFlag{
						Name:    "presize",
						Aliases: []string{"p"},
						Usage:   "reserve the full capacity up front",
					},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() > 0 {
						return fmt.Errorf("unexpected command line arguments: %q", c.Args().Slice())
					}
					n := uint(c.Uint("count"))
					config := vec.Config{}
					if c.Bool("presize") {
						config = vec.DetermineCapacity(n)
					}
					v := vec.NewWithConfig(vec.Value[uint64](), config)
					start := time.Now()
					for i := uint64(0); i < uint64(n); i++ {
						v.PushBack(&i)
					}
					log.Printf("appended %d elements in %s", n, time.Since(start))
					log.Printf("size %d, capacity %d, %d reallocations",
						v.Size(), v.Capacity(), config.GrowthSteps(n))
					if err := v.CheckConsistency(); err != nil {
						return fmt.Errorf("consistency check failed: %w", err)
					}
					return nil
				},
			},
			{
				Name:  "growth",
				Usage: "print the reallocation schedule for a target element count",
				Flags: []cli.Flag{
					&cli.UintFlag{
						Name:    "count",
						Aliases: []string{"n"},
						Value:   1000000,
						Usage:   "target number of elements",
					},
				},
				Action: func(c *cli.Context) error {
					n := uint(c.Uint("count"))
					config := vec.Config{}
					fmt.Printf("growing to %d elements costs %d reallocations:\n",
						n, config.GrowthSteps(n))
					for capacity := uint(vec.InitialCapacity); capacity < n; capacity *= vec.GrowthFactor {
						fmt.Printf("%12d -> %d slots\n", capacity, capacity*vec.GrowthFactor)
					}
					fmt.Printf("\npre-sized configuration instead:\n")
					presized := vec.DetermineCapacity(n)
					presized.ExplainIndent("  ")
					return nil
				},
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
