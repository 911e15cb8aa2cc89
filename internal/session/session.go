// Package session drives the interactive prompt loop: read a location,
// resolve it, fetch weather, render, repeat until quit or end of input.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/kjstillabower/weathercli/internal/client"
	"github.com/kjstillabower/weathercli/internal/models"
	"github.com/kjstillabower/weathercli/internal/observability"
	"github.com/kjstillabower/weathercli/internal/render"
	"github.com/kjstillabower/weathercli/internal/units"
	"github.com/kjstillabower/weathercli/internal/validation"
)

const maxQueryLen = 128

// Resolver turns a free-text place name into coordinates.
type Resolver interface {
	Resolve(ctx context.Context, query string) (models.Place, error)
}

// Fetcher returns current conditions plus a daily forecast for a place.
type Fetcher interface {
	FetchCurrentAndForecast(ctx context.Context, place models.Place) (models.CurrentConditions, []models.ForecastDay, error)
}

// Session holds the only mutable state in the program: the active display
// unit. It is an explicit value, not a global, so tests can construct
// independent sessions.
type Session struct {
	resolver Resolver
	fetcher  Fetcher
	unit     units.Unit
	in       *bufio.Scanner
	out      io.Writer
	logger   *zap.Logger
}

func New(resolver Resolver, fetcher Fetcher, in io.Reader, out io.Writer, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		resolver: resolver,
		fetcher:  fetcher,
		unit:     units.Celsius,
		in:       bufio.NewScanner(in),
		out:      out,
		logger:   logger,
	}
}

// Unit reports the active display unit.
func (s *Session) Unit() units.Unit {
	return s.unit
}

// SetUnit overrides the starting unit, e.g. from config.
func (s *Session) SetUnit(u units.Unit) {
	s.unit = u
}

// ToggleUnit flips between Celsius and Fahrenheit and reports the new unit.
func (s *Session) ToggleUnit() units.Unit {
	s.unit = s.unit.Toggle()
	return s.unit
}

// Run executes the prompt loop until `quit` or end of input. Resolver and
// fetcher failures are printed as one-line messages and the loop continues;
// only a closed input stream ends the session.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "Enter a place name to look up weather.")
	fmt.Fprintln(s.out, "Commands: 'unit' toggles °C/°F, 'stats' shows session stats, 'quit' exits.")

	for {
		fmt.Fprint(s.out, "\nLocation: ")
		line, ok := s.readLine()
		if !ok {
			fmt.Fprintln(s.out)
			return nil
		}

		input := strings.TrimSpace(line)
		switch {
		case input == "":
			continue
		case strings.EqualFold(input, "quit"):
			fmt.Fprintln(s.out, "Bye.")
			return nil
		case strings.EqualFold(input, "unit"):
			fmt.Fprintf(s.out, "Temperature unit set to %s.\n", s.ToggleUnit())
		case strings.EqualFold(input, "stats"):
			fmt.Fprintln(s.out, "Session statistics:")
			fmt.Fprint(s.out, observability.Snapshot())
		default:
			s.interactiveLookup(ctx, input)
		}
	}
}

// LookupOnce performs a single non-interactive lookup and prints current
// conditions followed by the forecast. Used for one-shot invocations with a
// location on the command line.
func (s *Session) LookupOnce(ctx context.Context, query string) error {
	place, cur, days, err := s.lookup(ctx, query)
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, render.Current(place, cur, s.unit))
	fmt.Fprintln(s.out)
	fmt.Fprint(s.out, render.Forecast(days, s.unit))
	return nil
}

// interactiveLookup runs one lookup, prints the result or a one-line error,
// and offers the forecast.
func (s *Session) interactiveLookup(ctx context.Context, query string) {
	place, cur, days, err := s.lookup(ctx, query)
	if err != nil {
		fmt.Fprintf(s.out, "%s: %v\n", kind(err), err)
		return
	}

	fmt.Fprint(s.out, render.Current(place, cur, s.unit))
	fmt.Fprint(s.out, "\nview forecast? (y/n) ")
	answer, ok := s.readLine()
	if !ok {
		return
	}
	answer = strings.TrimSpace(answer)
	if strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes") {
		fmt.Fprint(s.out, render.Forecast(days, s.unit))
	}
}

// lookup validates the query, then resolves and fetches. No network request
// is issued for invalid input.
func (s *Session) lookup(ctx context.Context, query string) (models.Place, models.CurrentConditions, []models.ForecastDay, error) {
	cleaned, err := validation.ValidateQuery(query, maxQueryLen)
	if err != nil {
		return models.Place{}, models.CurrentConditions{}, nil, err
	}

	observability.LookupsTotal.Inc()

	place, err := s.resolver.Resolve(ctx, cleaned)
	if err != nil {
		observability.LookupErrorsTotal.WithLabelValues("resolve", string(client.CategorizeError(err))).Inc()
		s.logger.Debug("resolve failed", zap.String("query", cleaned), zap.Error(err))
		return models.Place{}, models.CurrentConditions{}, nil, err
	}

	cur, days, err := s.fetcher.FetchCurrentAndForecast(ctx, place)
	if err != nil {
		observability.LookupErrorsTotal.WithLabelValues("fetch", string(client.CategorizeError(err))).Inc()
		s.logger.Debug("fetch failed", zap.String("place", place.Name), zap.Error(err))
		return models.Place{}, models.CurrentConditions{}, nil, err
	}

	return place, cur, days, nil
}

func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

// kind labels an error for the one-line message printed at the loop boundary.
func kind(err error) string {
	switch {
	case errors.Is(err, client.ErrLocationNotFound):
		return "not found"
	case errors.Is(err, client.ErrBadResponse):
		return "bad response"
	case errors.Is(err, client.ErrNetwork):
		return "network error"
	case errors.Is(err, validation.ErrQueryEmpty),
		errors.Is(err, validation.ErrQueryTooLong),
		errors.Is(err, validation.ErrQueryInvalidChars):
		return "invalid location"
	default:
		return "error"
	}
}
