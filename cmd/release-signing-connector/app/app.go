package app

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/venafi/release-signing-connector/internal/app/config"
	"github.com/venafi/release-signing-connector/internal/app/release"
	"github.com/venafi/release-signing-connector/internal/handler/web"
)

func New() *fx.App {
	var logger *zap.Logger

	app := fx.New(
		fx.Provide(
			config.New,
			configureLogger,
			web.ConfigureHTTPServers,
			fx.Annotate(release.NewSigningServices, fx.As(new(release.SigningServices))),
			fx.Annotate(release.NewReleaseService, fx.As(new(web.ReleaseService))),
		),
		fx.Invoke(
			web.RegisterHandlers,
		),
		fx.Populate(&logger),
	)

	if logger != nil {
		logger.Info("release signing connector starting")
	}

	return app
}

func configureLogger(cfg *config.Config) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(zap.DebugLevel)
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		return nil, err
	}

	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = level
	loggerConfig.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	loggerConfig.EncoderConfig.TimeKey = "time"
	loggerConfig.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	loggerConfig.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	logger, err := loggerConfig.Build()
	if err != nil {
		return nil, err
	}

	zap.ReplaceGlobals(logger)
	zap.RedirectStdLog(zap.L())
	return zap.L(), nil
}
