// Copyright (c) 2026 Fielddrop Team
// Fielddrop - profile field drop pad
// This source code is licensed under the MIT license found in the LICENSE file.

package config

import (
	"strconv"

	"github.com/toeirei/fielddrop/internal/classify"
	"github.com/toeirei/fielddrop/internal/session"
)

// Config is the application configuration.
type Config struct {
	// Patterns lists the sensitive key fragments; "re:" marks a regexp.
	Patterns  []string `mapstructure:"patterns" yaml:"patterns"`
	Delimiter string   `mapstructure:"delimiter" yaml:"delimiter"`
	Language  string   `mapstructure:"language" yaml:"language"`
	LogFile   string   `mapstructure:"log_file" yaml:"log_file"`
	LogLevel  string   `mapstructure:"log_level" yaml:"log_level"`
	Watch     bool     `mapstructure:"watch" yaml:"watch"`
	Sample    bool     `mapstructure:"sample" yaml:"sample"`
	Clipboard bool     `mapstructure:"clipboard" yaml:"clipboard"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Patterns:  append([]string(nil), classify.DefaultPatterns...),
		Delimiter: session.DefaultDelimiter,
		Language:  "en",
		LogLevel:  "info",
		Watch:     true,
		Sample:    true,
		Clipboard: true,
	}
}

// DefaultMap is Defaults keyed for viper.
func DefaultMap() map[string]any {
	d := Defaults()
	return map[string]any{
		"patterns":  d.Patterns,
		"delimiter": d.Delimiter,
		"language":  d.Language,
		"log_file":  d.LogFile,
		"log_level": d.LogLevel,
		"watch":     d.Watch,
		"sample":    d.Sample,
		"clipboard": d.Clipboard,
	}
}

// DelimiterValue interprets Go escape sequences, so a delimiter given on the
// command line as `\n` or `\t` means a real newline or tab.
func (c Config) DelimiterValue() string {
	if s, err := strconv.Unquote(`"` + c.Delimiter + `"`); err == nil {
		return s
	}
	return c.Delimiter
}
