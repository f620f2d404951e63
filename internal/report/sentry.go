package report

import (
	"runtime"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog/log"
)

// Setup initializes the global Sentry client. An empty DSN leaves reporting
// disabled; ReportError is then a no-op.
func Setup(dsn, env string) error {
	if dsn == "" {
		log.Debug().Msg("SENTRY_DSN not set, error reporting disabled")
		return nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      env,
		AttachStacktrace: true,
	}); err != nil {
		return err
	}

	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("go_version", runtime.Version())
		scope.SetTag("goarch", runtime.GOARCH)
	})
	return nil
}

func Flush() {
	sentry.Flush(2 * time.Second)
}

// ReportError sends err to Sentry with optional tags
func ReportError(err error, tags map[string]string) {
	if err == nil {
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(sentry.LevelError)
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		sentry.CaptureException(err)
	})
}
