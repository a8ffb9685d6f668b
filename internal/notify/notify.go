// Package notify delivers non-blocking, user-facing notifications. Every
// failed workflow action produces exactly one message here; nothing in the
// pipeline is fatal to the process.
package notify

import "github.com/rs/zerolog/log"

type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// LogNotifier writes notifications to the application log. It stands in for
// the storefront's toast popups in headless runs.
type LogNotifier struct{}

func (LogNotifier) Success(msg string) {
	log.Info().Str("toast", "success").Msg(msg)
}

func (LogNotifier) Error(msg string) {
	log.Warn().Str("toast", "error").Msg(msg)
}
