package release

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/venafi/release-signing-connector/internal/app/domain"
	"github.com/venafi/release-signing-connector/internal/app/signing"
)

// ResolveReleaseConfigurationRequest contains the toolchain supplied values for a release build
type ResolveReleaseConfigurationRequest struct {
	Toolchain domain.ToolchainDefaults `json:"toolchain"`
}

// ResolveReleaseConfigurationResponse contains the response for a ResolveReleaseConfigurationRequest
type ResolveReleaseConfigurationResponse struct {
	ReleaseConfiguration domain.ReleaseConfiguration `json:"releaseConfiguration"`
}

// HandleResolveReleaseConfiguration will load the signing properties and return the release configuration
func (svc *Service) HandleResolveReleaseConfiguration(c echo.Context) error {
	req := ResolveReleaseConfigurationRequest{}
	if err := c.Bind(&req); err != nil {
		zap.L().Error("invalid request, failed to unmarshall json", zap.Error(err))
		return c.String(http.StatusBadRequest, fmt.Sprintf("failed to unmarshall json: %s", err.Error()))
	}

	identity, err := svc.resolveSigningIdentity()
	if err != nil {
		return c.String(http.StatusBadRequest, err.Error())
	}

	res := ResolveReleaseConfigurationResponse{
		ReleaseConfiguration: Assemble(svc.Config, req.Toolchain, identity),
	}

	zap.L().Info("release configuration resolved", zap.String("applicationId", res.ReleaseConfiguration.ApplicationID),
		zap.String("signing", string(res.ReleaseConfiguration.Release.Signing)),
		zap.Int("versionCode", req.Toolchain.VersionCode), zap.String("versionName", req.Toolchain.VersionName))

	return c.JSON(http.StatusOK, &res)
}

func (svc *Service) resolveSigningIdentity() (*domain.SigningIdentity, error) {
	path := svc.Config.PropertiesPath()

	props, err := svc.SigningService.LoadSigningProperties(path)
	if err != nil {
		zap.L().Error("failed to load signing properties", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("failed to load signing properties: %w", err)
	}

	identity, ok := svc.SigningService.BuildReleaseSigningIdentity(svc.Config.Project.Root, props)
	if !ok {
		if svc.Config.Release.Strict {
			zap.L().Error("release signing identity required but not configured", zap.String("path", path))
			return nil, fmt.Errorf(`release signing identity required: no storeFile configured in "%s"`, path)
		}

		zap.L().Warn("no release signing identity configured, using the toolchain default signing", zap.String("path", path))
		return nil, nil
	}

	for _, warning := range signing.Inspect(identity) {
		zap.L().Warn("release signing identity may be rejected by the toolchain", zap.String("storeFile", identity.StoreFile), zap.String("reason", warning))
	}

	return &identity, nil
}
