package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/kjstillabower/weathercli/internal/client"
	"github.com/kjstillabower/weathercli/internal/config"
	"github.com/kjstillabower/weathercli/internal/observability"
	"github.com/kjstillabower/weathercli/internal/session"
	"github.com/kjstillabower/weathercli/internal/units"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "weathercli: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger, err := observability.NewLogger()
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config", zap.Error(err))
		return err
	}

	root := &cobra.Command{
		Use:   "weathercli [location]",
		Short: "Look up current weather and a short-range forecast by place name",
		Long: "weathercli resolves a place name to coordinates via the Open-Meteo geocoding\n" +
			"API and prints current conditions plus a daily forecast. With a location\n" +
			"argument it performs a single lookup; without one it starts an interactive\n" +
			"session.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cfg, logger)
			if err != nil {
				return err
			}
			if len(args) > 0 {
				return sess.LookupOnce(cmd.Context(), strings.Join(args, " "))
			}
			return sess.Run(cmd.Context())
		},
	}

	return root.Execute()
}

func newSession(cfg *config.Config, logger *zap.Logger) (*session.Session, error) {
	unit, err := units.Parse(cfg.DefaultUnit)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	wc := client.New(client.Options{
		GeocodeURL:   cfg.GeocodeURL,
		ForecastURL:  cfg.ForecastURL,
		Timeout:      cfg.HTTPTimeout,
		GeocodeLimit: cfg.GeocodeLimit,
		ForecastDays: cfg.ForecastDays,
		Limiter:      rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
	}, logger)

	sess := session.New(wc, wc, os.Stdin, os.Stdout, logger)
	sess.SetUnit(unit)
	return sess, nil
}
