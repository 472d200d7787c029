// Package logger builds the process zap logger, optionally reporting errors
// to Sentry.
package logger

import (
	"fmt"
	"time"

	"github.com/TheZeroSlave/zapsentry"
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logger configuration.
type Config struct {
	Debug     bool
	SentryDSN string
	Tags      map[string]string
}

// Logger is the built logger plus the Sentry client behind it, if any.
type Logger struct {
	*zap.Logger
	sentry *sentry.Client
}

// New builds a development logger when Debug is set and a production one
// otherwise. With a SentryDSN, error entries go to Sentry and info entries
// become breadcrumbs.
func New(cfg Config) (*Logger, error) {
	zapConfig := zap.NewProductionConfig()
	if cfg.Debug {
		zapConfig = zap.NewDevelopmentConfig()
	}

	base, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}
	if cfg.SentryDSN == "" {
		return &Logger{Logger: base}, nil
	}

	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:   cfg.SentryDSN,
		Debug: cfg.Debug,
	})
	if err != nil {
		return nil, fmt.Errorf("create sentry client: %w", err)
	}

	core, err := zapsentry.NewCore(zapsentry.Configuration{
		Level:             zapcore.ErrorLevel,
		EnableBreadcrumbs: true,
		BreadcrumbLevel:   zapcore.InfoLevel,
		Tags:              cfg.Tags,
	}, zapsentry.NewSentryClientFromClient(client))
	if err != nil {
		return nil, fmt.Errorf("create sentry core: %w", err)
	}

	return &Logger{
		Logger: zapsentry.AttachCoreToLogger(core, base),
		sentry: client,
	}, nil
}

// Close syncs the logger and flushes pending Sentry events.
func (l *Logger) Close(timeout time.Duration) {
	_ = l.Sync()
	if l.sentry != nil {
		l.sentry.Flush(timeout)
	}
}
