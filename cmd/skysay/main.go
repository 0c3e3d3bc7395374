package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	kongdotenv "github.com/titusjaka/kong-dotenv-go"

	"github.com/lox/skysay/internal/geo"
	"github.com/lox/skysay/internal/httputil"
	"github.com/lox/skysay/internal/logging"
	"github.com/lox/skysay/internal/measure"
	"github.com/lox/skysay/internal/metrics"
	"github.com/lox/skysay/internal/provider"
)

// Globals are the flags shared by every command.
type Globals struct {
	EnvFile     kongdotenv.ENVFileConfig `name:"env-file" default:".env" help:"Path to a .env file."`
	LogLevel    string                   `name:"log-level" env:"SKYSAY_LOG_LEVEL" default:"warn" enum:"debug,info,warn,error" help:"Log level (${enum})."`
	Provider    string                   `env:"SKYSAY_PROVIDER" default:"openmeteo" enum:"openmeteo,fake" help:"Weather source (${enum})."`
	Coords      string                   `env:"SKYSAY_COORDS" placeholder:"LAT,LON" help:"Location; looked up from your IP address when empty."`
	Timeout     time.Duration            `env:"SKYSAY_TIMEOUT" default:"30s" help:"HTTP timeout per request."`
	Seed        uint64                   `env:"SKYSAY_SEED" default:"1" help:"Seed for the fake provider."`
	MetricsFile string                   `name:"metrics-file" env:"SKYSAY_METRICS_FILE" type:"path" help:"Write Prometheus metrics to this file on exit."`
	BaseURL     string                   `name:"base-url" env:"SKYSAY_BASE_URL" default:"https://api.open-meteo.com" help:"Open-Meteo API base URL."`
	GeoURL      string                   `name:"geo-url" env:"SKYSAY_GEO_URL" default:"http://ip-api.com/json/" help:"IP geolocation endpoint."`
	NoColor     bool                     `name:"no-color" env:"NO_COLOR" help:"Disable coloured log output."`
}

type CLI struct {
	Globals

	Current  CurrentCmd  `cmd:"" help:"Weather right now."`
	Today    TodayCmd    `cmd:"" help:"Forecast for the rest of today."`
	Forecast ForecastCmd `cmd:"" help:"Forecast for the coming days, starting today."`
	Past     PastCmd     `cmd:"" help:"Observed weather for the days before today."`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("skysay"),
		kong.Description("Describe the weather in plain English."),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.BindTo(io.Writer(os.Stdout), (*io.Writer)(nil)),
	)

	err := kctx.Run(&cli.Globals)
	if cli.MetricsFile != "" {
		if merr := metrics.WriteTextfile(cli.MetricsFile); merr != nil {
			fmt.Fprintf(os.Stderr, "skysay: write metrics: %v\n", merr)
		}
	}
	kctx.FatalIfErrorf(err)
}

// session is what every command needs once the globals are resolved.
type session struct {
	logger   *slog.Logger
	provider provider.Provider
	at       measure.Coordinates
}

func (g *Globals) open(ctx context.Context) (*session, error) {
	level, err := logging.ParseLevel(g.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.New(os.Stderr, level, g.NoColor)

	client := httputil.NewClient(g.Timeout)

	var p provider.Provider
	switch g.Provider {
	case "fake":
		p = provider.NewFake(g.Seed, nil)
	case "openmeteo":
		p = provider.NewOpenMeteo(g.BaseURL,
			provider.WithHTTPClient(client),
			provider.WithLogger(logger),
		)
	default:
		return nil, fmt.Errorf("unknown provider %q", g.Provider)
	}

	at, err := g.coordinates(ctx, logger, client)
	if err != nil {
		return nil, err
	}
	return &session{logger: logger, provider: p, at: at}, nil
}

// coordinates parses --coords, or locates the caller by IP when it is empty.
// The fake provider needs no real position and falls back to 0,0.
func (g *Globals) coordinates(ctx context.Context, logger *slog.Logger, client *http.Client) (measure.Coordinates, error) {
	if g.Coords != "" {
		return measure.ParseCoordinates(g.Coords)
	}
	if g.Provider == "fake" {
		return measure.Coordinates{}, nil
	}

	loc, err := geo.NewClient(g.GeoURL, client, httputil.DefaultRetry).Locate(ctx)
	if err != nil {
		return measure.Coordinates{}, fmt.Errorf("no --coords given: %w", err)
	}
	logger.Info("located", "place", loc.Place(), "coords", loc.Coordinates.String())
	return loc.Coordinates, nil
}
