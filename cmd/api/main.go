package main

import (
	"expvar"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/JPVercaut/Syntra-evaluatie-14jan2026/internal/data"
	"github.com/JPVercaut/Syntra-evaluatie-14jan2026/internal/dataset"
	"github.com/JPVercaut/Syntra-evaluatie-14jan2026/internal/jsonlog"
)

// Declare a string containing the application version number.
const version = "1.0.0"

// Define a config struct to hold all the configuration settings for our
// application: the network port to listen on, the name of the current
// operating environment, the path of the dataset file to serve reports
// over, the rate limiter settings, and the trusted CORS origins. All of
// these are read in from command-line flags when the application starts.
type config struct {
	port int
	env  string
	file string

	limiter struct {
		rps     float64
		burst   int
		enabled bool
	}

	cors struct {
		trustedOrigins []string
	}
}

// Define an application struct to hold the dependencies for our HTTP
// handlers, helpers and middleware: the config struct, the logger, the
// loaded dataset and the person registry (which owns the distinct-person
// count that the summary report exposes).
type application struct {
	config  config
	logger  *jsonlog.Logger
	dataset *dataset.Dataset
	persons *data.PersonRegistry
}

func main() {
	// Declare an instance of the config struct and read the settings from
	// command-line flags, defaulting to port 4000 and the development
	// environment if no corresponding flags are provided.
	var cfg config

	flag.IntVar(&cfg.port, "port", 4000, "API server port")
	flag.StringVar(&cfg.env, "env", "development", "Environment (development|staging|production)")
	flag.StringVar(&cfg.file, "file", "reviews.csv", "Movie dataset CSV file")

	flag.Float64Var(&cfg.limiter.rps, "limiter-rps", 2, "Rate limiter maximum requests per second")
	flag.IntVar(&cfg.limiter.burst, "limiter-burst", 4, "Rate limiter maximum burst")
	flag.BoolVar(&cfg.limiter.enabled, "limiter-enabled", true, "Enable rate limiter")

	// Use the flag.Func() function to process the -cors-trusted-origins
	// flag. strings.Fields() splits the value on whitespace, and returns
	// an empty slice if the flag is absent or blank.
	flag.Func("cors-trusted-origins", "Trusted CORS origins (space separated)", func(val string) error {
		cfg.cors.trustedOrigins = strings.Fields(val)
		return nil
	})

	flag.Parse()

	// Initialize a new jsonlog.Logger which writes any messages *at or
	// above* the INFO severity level to the standard out stream.
	logger := jsonlog.New(os.Stdout, jsonlog.LevelInfo)

	// Build the two registries and the record factory, then load the whole
	// dataset before the server starts. Loading is the only phase that
	// writes to the registries; once it completes, every handler sees an
	// immutable collection. A missing or unreadable dataset file is fatal.
	ratings := data.NewRatingRegistry()
	persons := data.NewPersonRegistry()
	factory := data.NewFactory(ratings, persons)

	ds, err := dataset.Load(cfg.file, factory, logger)
	if err != nil {
		logger.PrintFatal(err, map[string]string{"file": cfg.file})
	}

	logger.PrintInfo("dataset loaded", map[string]string{
		"file":    cfg.file,
		"loaded":  fmt.Sprintf("%d", ds.Loaded),
		"skipped": fmt.Sprintf("%d", ds.Skipped),
		"persons": fmt.Sprintf("%d", persons.Count()),
	})

	// Publish a "version" variable in the expvar handler, plus the
	// goroutine count, the dataset load tallies and the current Unix
	// timestamp, so they all show up under GET /debug/vars.
	expvar.NewString("version").Set(version)

	expvar.Publish("goroutines", expvar.Func(func() interface{} {
		return runtime.NumGoroutine()
	}))

	expvar.Publish("dataset", expvar.Func(func() interface{} {
		return ds.Stats()
	}))

	expvar.Publish("persons", expvar.Func(func() interface{} {
		return persons.Count()
	}))

	expvar.Publish("timestamp", expvar.Func(func() interface{} {
		return time.Now().Unix()
	}))

	// Declare an instance of the application struct and start the server.
	app := &application{
		config:  cfg,
		logger:  logger,
		dataset: ds,
		persons: persons,
	}

	err = app.serve()
	if err != nil {
		logger.PrintFatal(err, nil)
	}
}
