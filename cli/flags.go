package cli

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/abiiranathan/cnabsearch/cnab"
	"github.com/abiiranathan/goflag"
)

func fatal(err error) {
	if errors.Is(err, cnab.ErrSourceUnavailable) {
		log.Fatalf("Erro ao processar o arquivo: %v\n", err)
	}
	log.Fatalln(err)
}

func DefineFlags(config *Config) *goflag.Context {
	// Create flag context.
	ctx := goflag.NewContext()

	// global flags
	ctx.AddFlag(goflag.FlagString, "path", "p", &config.Path,
		"Path to the CNAB file (default: bundled "+ExampleName+")", false)

	ctx.AddFlag(goflag.FlagString, "encoding", "e", &config.Encoding,
		"Character encoding of the CNAB file: utf-8, latin1, windows-1252", false)

	ctx.AddFlag(goflag.FlagFilePath, "config", "C", &config.ConfigFile,
		"YAML file with default values for the flags", false)

	ctx.AddFlag(goflag.FlagInt, "timeout", "T", &config.Timeout,
		"Seconds allowed to load the CNAB file. 0 disables the timeout",
		false, goflag.Min(0))

	ctx.AddFlag(goflag.FlagBool, "no-color", "N", &config.NoColor,
		"Disable colored output", false)

	// register subcommands
	ctx.AddSubCommand("search", "Extract a field by segment and/or search records by company name", func() {
		if err := Search(context.Background(), config, os.Stdout); err != nil {
			fatal(err)
		}
	}).AddFlag(goflag.FlagInt, "from", "f", &config.From, "First column of the field (1-indexed)", false).
		AddFlag(goflag.FlagInt, "to", "t", &config.To, "Last column of the field (inclusive)", false).
		AddFlag(goflag.FlagString, "segmento", "s", &config.Segment, "Segment code, e.g. p", false).
		AddFlag(goflag.FlagString, "nome", "n", &config.Name, "Company name to search for", false).
		AddFlag(goflag.FlagBool, "json", "j", &config.Export, "Export the name search results", false).
		AddFlag(goflag.FlagString, "output", "o", &config.Output, "Export file (default: cnab_output.<format>)", false).
		AddFlag(goflag.FlagString, "format", "F", &config.Format, "Export format: json, yaml, xlsx", false)

	ctx.AddSubCommand("layout", "Print the columns read by the name search", func() {
		Layout(config, os.Stdout)
	})

	return ctx
}
