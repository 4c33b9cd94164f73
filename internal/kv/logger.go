// ABOUTME: Routes badger's internal logging through zerolog.
// ABOUTME: Info and debug chatter is demoted so it only shows at trace level.
package kv

import (
	"strings"

	"github.com/rs/zerolog/log"
)

type badgerLogger struct{}

func (badgerLogger) Errorf(format string, args ...interface{}) {
	log.Error().Str("component", "badger").Msgf(strings.TrimSpace(format), args...)
}

func (badgerLogger) Warningf(format string, args ...interface{}) {
	log.Warn().Str("component", "badger").Msgf(strings.TrimSpace(format), args...)
}

func (badgerLogger) Infof(format string, args ...interface{}) {
	log.Debug().Str("component", "badger").Msgf(strings.TrimSpace(format), args...)
}

func (badgerLogger) Debugf(format string, args ...interface{}) {
	log.Trace().Str("component", "badger").Msgf(strings.TrimSpace(format), args...)
}
