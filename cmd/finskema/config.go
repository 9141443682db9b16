package main

import (
	"flag"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// config keys
const (
	keyLang      = "lang"
	keyFormat    = "format"
	keyWorkers   = "workers"
	keyLogLevel  = "log.level"
	keyLogFormat = "log.format"
)

// loadConfig layers explicitly set flags over FINSKEMA_* environment
// variables, an optional config file and defaults.
func loadConfig(fs *flag.FlagSet, file string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(keyLang, "en")
	v.SetDefault(keyFormat, "auto")
	v.SetDefault(keyWorkers, 4)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogFormat, "console")

	v.SetEnvPrefix("FINSKEMA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "config", "entity", "op":
			return
		case "log-level":
			v.Set(keyLogLevel, f.Value.String())
		case "log-format":
			v.Set(keyLogFormat, f.Value.String())
		default:
			v.Set(f.Name, f.Value.String())
		}
	})
	return v, nil
}

func newLogger(v *viper.Viper, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(v.GetString(keyLogLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	out := w
	if v.GetString(keyLogFormat) != "json" {
		out = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
