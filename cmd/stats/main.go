package main

import (
	"os"

	"github.com/yz3440/nyc-park-study/internal/dataset"
	"github.com/yz3440/nyc-park-study/internal/geo"
	"github.com/yz3440/nyc-park-study/internal/logger"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Input string `short:"i" long:"input" env:"INPUT_FILE" description:"Input GeoJSON file (stdin if omitted)"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	fc, err := geo.ReadFile(opts.Input)
	if err != nil {
		log.Fatal().Err(err).Str("file", opts.Input).Msg("Failed to read input")
	}

	if err := dataset.WriteReport(os.Stdout, fc); err != nil {
		log.Fatal().Err(err).Msg("Failed to write report")
	}
}
