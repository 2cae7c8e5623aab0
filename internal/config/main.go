package config

import (
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

const Version = "0.3.0"

var LogLevels = []string{"trace", "debug", "info", "warn", "error"}

type Config struct {
	File     string // Read frames from this file instead of stdin
	Color    bool
	Wait     bool // Wait for a key press before exiting
	Quiet    bool // Never prompt
	LogLevel string
}

// App declares the command line. Every flag can also be set from a BOWL_
// environment variable.
func App(cfg *Config) *kingpin.Application {
	app := kingpin.New("bowl", "Ten-pin bowling score calculator")
	app.Version(Version)

	app.Arg("file", "File with one frame per line").ExistingFileVar(&cfg.File)
	app.Flag("color", "Colour strikes, spares and gutters").Default("true").Envar("BOWL_COLOR").Short('c').BoolVar(&cfg.Color)
	app.Flag("wait", "Wait for a key press before exiting").Default("false").Envar("BOWL_WAIT").Short('w').BoolVar(&cfg.Wait)
	app.Flag("quiet", "Do not prompt for frames").Default("false").Envar("BOWL_QUIET").Short('q').BoolVar(&cfg.Quiet)
	app.Flag("log-level", "Diagnostic log level").Default("warn").Envar("BOWL_LOG_LEVEL").Short('l').EnumVar(&cfg.LogLevel, LogLevels...)
	return app
}

func Parse(args []string) (*Config, error) {
	cfg := &Config{}
	if _, err := App(cfg).Parse(args); nil != err {
		return nil, errors.Wrap(err, "unable to parse arguments")
	}
	return cfg, nil
}
