package main

import (
	"os"

	"github.com/yz3440/nyc-park-study/internal/config"
	"github.com/yz3440/nyc-park-study/internal/dataset"
	"github.com/yz3440/nyc-park-study/internal/geo"
	"github.com/yz3440/nyc-park-study/internal/logger"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config"  env:"CONFIG_FILE"  description:"Path to configuration file"`
	Input      string `short:"i" long:"input"   env:"INPUT_FILE"   description:"Input GeoJSON file (stdin if omitted)"`
	Output     string `short:"o" long:"output"  env:"OUTPUT_FILE"  description:"Output file for kept features (stdout if omitted)"`
	Removed    string `short:"r" long:"removed" env:"REMOVED_FILE" description:"Optional output file for removed features"`
	Compact    bool   `short:"m" long:"compact" description:"Minify the output JSON"`
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

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	fc, err := geo.ReadFile(opts.Input)
	if err != nil {
		log.Fatal().Err(err).Str("file", opts.Input).Msg("Failed to read input")
	}

	kept, removed := dataset.Filter(fc, cfg.TypecategoryWhitelist)

	log.Info().
		Int("total", len(fc.Features)).
		Int("kept", len(kept.Features)).
		Int("removed", len(removed.Features)).
		Msg("Filtered by typecategory")

	if err := geo.WriteFile(opts.Output, kept, opts.Compact); err != nil {
		log.Fatal().Err(err).Str("file", opts.Output).Msg("Failed to write kept features")
	}
	if opts.Removed != "" {
		if err := geo.WriteFile(opts.Removed, removed, opts.Compact); err != nil {
			log.Fatal().Err(err).Str("file", opts.Removed).Msg("Failed to write removed features")
		}
	}
}
