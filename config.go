package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	RequestFile string   `mapstructure:"request"`
	Headers     []string `mapstructure:"headers"`
	JSONOutput  bool     `mapstructure:"json"`
	Normalize   bool     `mapstructure:"normalize"`
	Colorize    bool     `mapstructure:"color"`
	Verbose     bool     `mapstructure:"verbose"`
}

// loadConfig fills a.cfg from the config file, the environment and the bound
// flags. A missing default config file is not an error; a missing explicit
// one is.
func (a *app) loadConfig() error {
	a.v.SetEnvPrefix("REQPARSE")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.AddConfigPath(".")
		a.v.SetConfigName("reqparse")
		a.v.SetConfigType("yaml")
	}

	if err := a.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return errors.Wrap(err, "reading config")
		}
	}

	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return errors.Wrap(err, "decoding config")
	}

	// -H flags come after headers from the config file so they win
	a.cfg.Headers = append(a.cfg.Headers, a.headers...)
	return nil
}
