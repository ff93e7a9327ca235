package main

import (
	"strings"

	"github.com/cockroachdb/errors"
	log "github.com/inconshreveable/log15"
	"github.com/ostafen/interval"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

const (
	cfgFormatSimplified = "format.simplified"
	cfgFormatLocale     = "format.locale"
	cfgFormatPrecision  = "format.precision"
	cfgCatalogDir       = "catalog.dir"
	cfgCatalogBackend   = "catalog.backend"
	cfgLogLevel         = "log.level"

	envPrefix = "INTERVAL"
)

const (
	backendBolt   = "bbolt"
	backendBadger = "badger"
	backendMemory = "memory"
)

// flag names, mapped to their configuration key
var flagKeys = map[string]string{
	"simplified":  cfgFormatSimplified,
	"locale":      cfgFormatLocale,
	"precision":   cfgFormatPrecision,
	"catalog-dir": cfgCatalogDir,
	"backend":     cfgCatalogBackend,
	"log-level":   cfgLogLevel,
}

func addConfigFlags(flags *flag.FlagSet) {
	flags.StringP("config", "c", "", "path of a configuration file (json, toml or yaml)")
	flags.BoolP("simplified", "s", false, "print intervals in the simplified notation")
	flags.String("locale", "", "BCP 47 tag of the locale endpoints are printed in, e.g. de-DE")
	flags.IntP("precision", "p", interval.PrecisionDefault, "number of decimal places of printed endpoints, negative for the shortest exact form")
	flags.String("catalog-dir", ".interval", "directory holding the interval catalog")
	flags.String("backend", backendBolt, "catalog storage backend: bbolt, badger or memory")
	flags.String("log-level", "warn", "log level: debug, info, warn, error or crit")
}

// loadConfig reads the configuration from, by increasing priority, the config file,
// the INTERVAL_* environment variables and the command line.
func loadConfig(flags *flag.FlagSet) (*viper.Viper, error) {
	v := viper.New()

	// replace dots with underscores in env
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return nil, err
		}
	}

	path, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", path)
		}
	}
	return v, nil
}

func formatOptions(v *viper.Viper) ([]interval.FormatOption, error) {
	var opts []interval.FormatOption
	if v.GetBool(cfgFormatSimplified) {
		opts = append(opts, interval.WithSimplifiedNotation())
	}

	if prec := v.GetInt(cfgFormatPrecision); prec >= 0 {
		opts = append(opts, interval.WithPrecision('f', prec))
	}

	if locale := v.GetString(cfgFormatLocale); locale != "" {
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid locale %q", locale)
		}
		opts = append(opts, interval.WithLocale(tag))
	}
	return opts, nil
}

func logLevel(v *viper.Viper) (log.Lvl, error) {
	lvl, err := log.LvlFromString(v.GetString(cfgLogLevel))
	if err != nil {
		return 0, errors.Wrapf(err, "invalid log level")
	}
	return lvl, nil
}
