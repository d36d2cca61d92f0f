// Package web contains the web server and registered routes
package web

import (
	"bytes"
	"context"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gopkg.in/square/go-jose.v2"

	"github.com/venafi/release-signing-connector/internal/app/config"
)

// ReleaseService ...
type ReleaseService interface {
	HandleGetSigningStatus(c echo.Context) error
	HandleResolveReleaseConfiguration(c echo.Context) error
}

// ConfigureHTTPServers creates the HTTP server and ties it to the application lifecycle
// returns the echo engine for serving API
func ConfigureHTTPServers(lifecycle fx.Lifecycle, shutdowner fx.Shutdowner, cfg *config.Config) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(cfg.Server.Address); err != nil && err != http.ErrServerClosed {
					zap.L().Error("failed to start echo server", zap.Error(err))
					if err = shutdowner.Shutdown(); err != nil {
						zap.L().Error("fx shutdown error", zap.Error(err))
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})

	return e, nil
}

// RegisterHandlers will add the health check and the release configuration routes.
// Taking the logger makes fx build it before the routes are registered.
func RegisterHandlers(e *echo.Echo, releaseService ReleaseService, cfg *config.Config, logger *zap.Logger) error {
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	g := e.Group("/v1")
	g.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	pk, err := readPayloadEncryptionKey(cfg.Payload.Key)
	if err != nil {
		logger.Error("payload encryption key not usable, payloads are accepted unencrypted", zap.String("path", cfg.Payload.Key), zap.Error(err))
	} else {
		logger.Info("adding payload encryption middleware")
		g.Use(payloadDecryption(pk))
	}

	g.POST("/releaseconfiguration", releaseService.HandleResolveReleaseConfiguration)
	g.POST("/signingstatus", releaseService.HandleGetSigningStatus)

	return nil
}

func readPayloadEncryptionKey(path string) (*rsa.PrivateKey, error) {
	privateKeyPemData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("payload encryption key not found or readable: %w", err)
	}

	p, _ := pem.Decode(privateKeyPemData)
	if p == nil {
		return nil, errors.New("payload encryption key not in PEM format")
	}

	pk, err := x509.ParsePKCS1PrivateKey(p.Bytes)
	if err != nil {
		return nil, fmt.Errorf("payload encryption key not properly encoded: %w", err)
	}

	return pk, nil
}

func payloadDecryption(pk *rsa.PrivateKey) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			body, err := io.ReadAll(req.Body)
			if err != nil {
				return err
			}
			object, err := jose.ParseEncrypted(string(body))
			if err != nil {
				return c.String(http.StatusBadRequest, fmt.Sprintf("failed to parse encrypted payload: %s", err.Error()))
			}
			decrypted, err := object.Decrypt(pk)
			if err != nil {
				return c.String(http.StatusBadRequest, fmt.Sprintf("failed to decrypt payload: %s", err.Error()))
			}
			req.Body = io.NopCloser(bytes.NewReader(decrypted))
			return next(c)
		}
	}
}
