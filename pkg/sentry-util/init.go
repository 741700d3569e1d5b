package sentryUtil

import (
	"log"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
)

const flushTimeout = 2 * time.Second

var enabled bool

func getSentryDsn() *string {
	sentryDsn := os.Getenv("SENTRY_DSN")
	if sentryDsn == "" {
		return nil
	}

	return &sentryDsn
}

// InitSentryIfNeeded enables reporting when SENTRY_DSN is set. Without it
// every function in this package is a no-op.
func InitSentryIfNeeded(program string) {
	sentryDsn := getSentryDsn()
	if sentryDsn == nil {
		return
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         *sentryDsn,
		Environment: os.Getenv("SENTRY_ENVIRONMENT"),
		ServerName:  program,
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}

	enabled = true
}

// CaptureError reports err tagged with the walkthrough step that produced it.
func CaptureError(step string, err error) {
	if !enabled || err == nil {
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("step", step)
		sentry.CaptureException(err)
	})
}

func ShutdownSentry() {
	if !enabled {
		return
	}

	sentry.Flush(flushTimeout)
	log.Println("Sentry shutdown complete")
}
