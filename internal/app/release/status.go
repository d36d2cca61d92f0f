package release

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/venafi/release-signing-connector/internal/app/signing"
)

// SigningStatusResponse contains the signing configuration without any credentials
type SigningStatusResponse struct {
	PropertiesFile string         `json:"propertiesFile"`
	Strict         bool           `json:"strict"`
	Status         signing.Status `json:"status"`
}

// HandleGetSigningStatus will report how release builds would be signed
func (svc *Service) HandleGetSigningStatus(c echo.Context) error {
	path := svc.Config.PropertiesPath()

	props, err := svc.SigningService.LoadSigningProperties(path)
	if err != nil {
		zap.L().Error("failed to load signing properties", zap.String("path", path), zap.Error(err))
		return c.String(http.StatusBadRequest, fmt.Sprintf("failed to load signing properties: %s", err.Error()))
	}

	res := SigningStatusResponse{
		PropertiesFile: path,
		Strict:         svc.Config.Release.Strict,
		Status:         signing.Summarize(svc.Config.Project.Root, props),
	}

	return c.JSON(http.StatusOK, &res)
}
