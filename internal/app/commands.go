package app

import (
	"context"
	"io"

	"github.com/urfave/cli/v3"

	"CivicWatch/internal/config"
	"CivicWatch/internal/logging"
)

type globalFlags struct {
	configPath string
	logLevel   string
	logFormat  string
	color      bool
}

// Command builds the civicwatch command tree bound to the given streams.
func Command(in io.Reader, out, errOut io.Writer) *cli.Command {
	var flags globalFlags
	var stripMarkup bool

	build := func(extra func(*config.Config)) (*Application, error) {
		cfg, loadErr := config.Load(flags.configPath)
		if flags.logLevel != "" {
			cfg.Logging.Level = flags.logLevel
		}
		if flags.logFormat != "" {
			cfg.Logging.Format = flags.logFormat
		}
		if flags.color {
			cfg.Console.Color = true
		}
		if extra != nil {
			extra(&cfg)
		}
		logger := logging.NewWithWriter(errOut, cfg.Logging.Level, cfg.Logging.Format)
		if loadErr != nil {
			logger.Warn("config not applied", logging.ErrAttr(loadErr))
		}
		return New(cfg, Streams{In: in, Out: out}, logger)
	}

	return &cli.Command{
		Name:      "civicwatch",
		Usage:     "air-quality alerts and news article screening",
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Usage:       "path to YAML configuration",
				Sources:     cli.EnvVars("CIVICWATCH_CONFIG"),
				Destination: &flags.configPath,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error)",
				Destination: &flags.logLevel,
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "log format (text, json, console)",
				Destination: &flags.logFormat,
			},
			&cli.BoolFlag{
				Name:        "color",
				Usage:       "colorize verdict tags",
				Destination: &flags.color,
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "aqi",
				Usage: "publish AQI readings to city subscribers (-1 to exit)",
				Action: func(ctx context.Context, _ *cli.Command) error {
					application, err := build(nil)
					if err != nil {
						return err
					}
					return application.RunAirQuality(ctx)
				},
			},
			{
				Name:  "news",
				Usage: "screen news articles through the check chain ('exit' to quit)",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "strip-markup",
						Usage:       "reduce HTML articles to visible text before checking",
						Destination: &stripMarkup,
					},
				},
				Action: func(ctx context.Context, _ *cli.Command) error {
					application, err := build(func(cfg *config.Config) {
						if stripMarkup {
							cfg.News.StripMarkup = true
						}
					})
					if err != nil {
						return err
					}
					return application.RunNews(ctx)
				},
			},
		},
	}
}
