package utils

import (
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

// InitSentry initializes Sentry for error tracking. It is a no-op without a DSN.
func InitSentry(dsn, environment string) (bool, error) {
	if dsn == "" {
		logrus.Info("SENTRY_DSN is not set, error tracking disabled")
		return false, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      environment,
		EnableTracing:    true,
		TracesSampleRate: 0.2,
	})
	if err != nil {
		return false, fmt.Errorf("sentry.Init: %w", err)
	}

	logrus.Info("Sentry initialized")
	return true, nil
}
