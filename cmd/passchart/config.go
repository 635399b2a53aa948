package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/kiyo-astro/heavens-above/internal/heavens"
)

// args holds the command line.
type args struct {
	OutputPath  string
	SatelliteID int
	Date        string
	Observer    heavens.Observer
	Timezone    string
	ImageSize   int
	Verbose     bool
}

// requiredFlags maps each required value to its long flag name.
var requiredFlags = []struct{ short, long string }{
	{"n", "norad"},
	{"t", "date"},
	{"l", "lon"},
	{"b", "lat"},
	{"z", "height"},
}

// parseArgs reads flags and the single output path. Flags may appear on
// either side of the path.
func parseArgs(argv []string, stderr io.Writer) (args, error) {
	var a args
	fs := flag.NewFlagSet("passchart", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Retrieve a satellite pass chart from heavens-above.com")
		fmt.Fprintln(fs.Output(), "\nusage: passchart [flags] OUTPUT")
		fs.PrintDefaults()
	}

	fs.IntVar(&a.SatelliteID, "n", 0, "NORAD catalog number (shorthand)")
	fs.IntVar(&a.SatelliteID, "norad", 0, "NORAD catalog number")
	fs.StringVar(&a.Date, "t", "", "pass start in UTC, YYYY-MM-DDThh:mm:ss (shorthand)")
	fs.StringVar(&a.Date, "date", "", "pass start in UTC, YYYY-MM-DDThh:mm:ss")
	fs.Float64Var(&a.Observer.LongitudeDeg, "l", 0, "observer geodetic longitude [deg] (shorthand)")
	fs.Float64Var(&a.Observer.LongitudeDeg, "lon", 0, "observer geodetic longitude [deg]")
	fs.Float64Var(&a.Observer.LatitudeDeg, "b", 0, "observer geodetic latitude [deg] (shorthand)")
	fs.Float64Var(&a.Observer.LatitudeDeg, "lat", 0, "observer geodetic latitude [deg]")
	fs.Float64Var(&a.Observer.HeightKm, "z", 0, "observer geodetic height [km] (shorthand)")
	fs.Float64Var(&a.Observer.HeightKm, "height", 0, "observer geodetic height [km]")
	fs.StringVar(&a.Timezone, "Z", heavens.DefaultTimezone, "chart display timezone (shorthand)")
	fs.StringVar(&a.Timezone, "tz", heavens.DefaultTimezone, "chart display timezone")
	fs.IntVar(&a.ImageSize, "R", heavens.DefaultImageSize, "chart image size [pix] (shorthand)")
	fs.IntVar(&a.ImageSize, "size", heavens.DefaultImageSize, "chart image size [pix]")
	fs.BoolVar(&a.Verbose, "v", false, "debug logging")

	var positional []string
	rest := argv
	for {
		if err := fs.Parse(rest); err != nil {
			return a, err
		}
		if fs.NArg() == 0 {
			break
		}
		positional = append(positional, fs.Arg(0))
		rest = fs.Args()[1:]
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	var missing []string
	for _, f := range requiredFlags {
		if !set[f.short] && !set[f.long] {
			missing = append(missing, "-"+f.long)
		}
	}

	var errs []error
	if len(missing) > 0 {
		errs = append(errs, fmt.Errorf("missing required flags: %s", strings.Join(missing, ", ")))
	}
	switch len(positional) {
	case 0:
		errs = append(errs, errors.New("missing OUTPUT path"))
	case 1:
		a.OutputPath = positional[0]
	default:
		errs = append(errs, fmt.Errorf("expected one OUTPUT path, got %d", len(positional)))
	}
	if a.ImageSize < 1 {
		errs = append(errs, fmt.Errorf("image size must be positive, got %d", a.ImageSize))
	}

	if err := errors.Join(errs...); err != nil {
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return a, err
	}
	return a, nil
}

// clientConfig configures the heavens-above client.
type clientConfig struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

func loadClientConfig(logger *slog.Logger) clientConfig {
	cfg := clientConfig{
		BaseURL:   heavens.DefaultBaseURL,
		Timeout:   30 * time.Second,
		UserAgent: "passchart/1.0 (+https://github.com/kiyo-astro/heavens-above)",
	}

	if v := os.Getenv("PASSCHART_BASE_URL"); v != "" {
		cfg.BaseURL = strings.TrimRight(v, "/")
	}

	if v := os.Getenv("PASSCHART_HTTP_TIMEOUT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			logger.Warn("invalid PASSCHART_HTTP_TIMEOUT value, using default", "value", v, "default", 30)
		} else {
			cfg.Timeout = time.Duration(n) * time.Second
		}
	}

	if v := os.Getenv("PASSCHART_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}

	logger.Debug("client config",
		"base_url", cfg.BaseURL,
		"timeout_seconds", cfg.Timeout.Seconds(),
		"user_agent", cfg.UserAgent,
	)

	return cfg
}

// logLevel resolves PASSCHART_LOG_LEVEL; verbose forces debug.
func logLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	var level slog.Level
	if v := os.Getenv("PASSCHART_LOG_LEVEL"); v != "" {
		if err := level.UnmarshalText([]byte(v)); err == nil {
			return level
		}
	}
	return slog.LevelInfo
}
