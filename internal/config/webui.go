package config

import (
	"log/slog"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
)

type WebUI struct {
	Title            string `env:"TITLE,expand" envDefault:"Shared todo list"`
	AdminDisplayName string `env:"ADMIN_DISPLAY_NAME,expand" envDefault:"admin"`
	Timezone         string `env:"TIMEZONE,expand" envDefault:"Asia/Shanghai"`
}

var fallbackLocation = time.FixedZone("UTC+8", 8*60*60)

// Location returns the configured time zone, or a fixed UTC+8 zone if it
// could not be loaded.
func (w WebUI) Location() *time.Location {
	loc, err := time.LoadLocation(w.Timezone)
	if err != nil {
		slog.Warn("could not load timezone, using fallback", slog.String("timezone", w.Timezone), slog.String("fallback", fallbackLocation.String()), slogx.Error(errors.WithStack(err)))
		return fallbackLocation
	}

	return loc
}
