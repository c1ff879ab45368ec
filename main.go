package main

import (
	_ "embed"
	"log"
	"os"

	"github.com/abiiranathan/cnabsearch/cli"
)

// Example remittance file used when no --path is given.
//
//go:embed cnabExample.rem
var exampleFile []byte

// Default configuration for the CLI
var config = &cli.DefaultConfig

func main() {
	log.SetPrefix("[cnabsearch]: ")
	log.SetFlags(log.Lshortfile)

	config.Example = exampleFile

	// Values from --config are defaults that the flags below override.
	if err := cli.LoadConfig(config, os.Args[1:]); err != nil {
		log.Fatalln(err)
	}

	// Parse the command line arguments
	ctx := cli.DefineFlags(config)
	subcmd, err := ctx.Parse(os.Args)
	if err != nil {
		log.Fatalln(err)
	}

	// If the subcommand is nil, print the usage and exit
	if subcmd == nil {
		ctx.PrintUsage(os.Stdout)
		os.Exit(1)
	}

	// Run the subcommand
	subcmd.Handler()
}
