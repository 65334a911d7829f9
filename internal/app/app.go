package app

import (
	"context"
	"io"
	"log/slog"

	"CivicWatch/internal/checks"
	"CivicWatch/internal/config"
	"CivicWatch/internal/infrastructure/console"
	"CivicWatch/internal/infrastructure/parser"
	"CivicWatch/internal/logging"
	"CivicWatch/internal/subscribers"
	"CivicWatch/internal/usecase"
)

// Streams are the console endpoints an application talks to.
type Streams struct {
	In  io.Reader
	Out io.Writer
}

// Application wires configs to use cases.
type Application struct {
	cfg      config.Config
	sensor   *usecase.Sensor
	pipeline *usecase.Pipeline
	session  *usecase.Session
	prompter *console.Prompter
	logger   *slog.Logger
}

// New builds the sensor, the check chain and the interactive session.
func New(cfg config.Config, streams Streams, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level, cfg.Logging.Format)
	}

	reporter := console.NewReporter(streams.Out, cfg.Console.Color)

	sensor := usecase.NewSensor(baseLogger.With("component", "sensor"))
	policies := subscriberPolicies(cfg.AirQuality)
	for _, name := range subscribers.DefaultOrder {
		sensor.Attach(subscribers.NewThreshold(policies[name], reporter))
	}

	var prepare func(string) string
	if cfg.News.StripMarkup {
		prepare = parser.PlainText
	}
	registry := checks.NewDefaultRegistry(checkSpecs(cfg.News))
	ordered, err := registry.Ordered(checks.DefaultOrder)
	if err != nil {
		return nil, err
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Checks:   ordered,
		Reporter: reporter,
		Prepare:  prepare,
		Logger:   baseLogger.With("component", "pipeline"),
	})

	prompter := console.NewPrompter(streams.In, streams.Out)
	session := usecase.NewSession(usecase.SessionDeps{
		Prompter: prompter,
		Reporter: reporter,
		Out:      streams.Out,
		Logger:   baseLogger.With("component", "session"),
	})

	return &Application{
		cfg:      cfg,
		sensor:   sensor,
		pipeline: pipeline,
		session:  session,
		prompter: prompter,
		logger:   baseLogger,
	}, nil
}

// RunAirQuality runs the interactive reading loop.
func (a *Application) RunAirQuality(ctx context.Context) error {
	defer a.prompter.Close()
	a.logger.Debug("starting air quality session", "subscribers", a.sensor.Len())
	_, err := a.session.RunReadings(ctx, a.sensor)
	return err
}

// RunNews runs the interactive article loop.
func (a *Application) RunNews(ctx context.Context) error {
	defer a.prompter.Close()
	a.logger.Debug("starting news session", "checks", a.pipeline.Len(), "strip_markup", a.cfg.News.StripMarkup)
	_, err := a.session.RunArticles(ctx, a.pipeline)
	return err
}

func subscriberPolicies(cfg config.AirQualityConfig) map[string]subscribers.Policy {
	policies := subscribers.DefaultPolicies()
	for name, override := range cfg.Subscribers {
		policy, ok := policies[name]
		if !ok {
			continue
		}
		if override.Threshold != nil {
			policy.Threshold = *override.Threshold
		}
		if override.High != "" {
			policy.High = override.High
		}
		if override.Normal != "" {
			policy.Normal = override.Normal
		}
		policies[name] = policy
	}
	return policies
}

func checkSpecs(cfg config.NewsConfig) map[string]checks.Spec {
	specs := checks.DefaultSpecs()
	for name, override := range cfg.Checks {
		spec, ok := specs[name]
		if !ok {
			continue
		}
		if len(override.Phrases) > 0 {
			spec.Phrases = override.Phrases
		}
		if override.Reject != "" {
			spec.Reject = override.Reject
		}
		if override.Accept != "" {
			spec.Accept = override.Accept
		}
		specs[name] = spec
	}
	return specs
}
