package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/rubenromani/ant/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	maxArityKey = "count"
	outputKey   = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the per-arity signal types",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  maxArityKey,
				Usage: "Highest slot arity to generate",
				Value: 4,
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "Output file, relative to the repo root",
				Value: "signals.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for signals started")
	defer func() {
		log.Printf("Codegen for signals finished in %v", time.Since(start))
	}()

	maxArity := int(cmd.Uint(maxArityKey))
	out := cmd.String(outputKey)
	log.Printf("Generating Signal0..Signal%d into %s", maxArity, out)

	contents := templates.SignalsGen(maxArity)
	return os.WriteFile(out, []byte(contents), 0644)
}
