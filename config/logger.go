// SPDX-License-Identifier: MIT

package config

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger builds a logrus logger from the log section. Invalid settings
// fall back to info level and the text formatter.
func (c *Config) Logger() *logrus.Logger {
	l := logrus.New()

	level, err := parseLevel(c.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if strings.EqualFold(c.Log.Format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return l
}

func parseLevel(s string) (logrus.Level, error) {
	if s == "" {
		return logrus.InfoLevel, nil
	}
	return logrus.ParseLevel(s)
}
