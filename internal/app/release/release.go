package release

import (
	"github.com/venafi/release-signing-connector/internal/app/config"
)

// Service resolves release configuration for the configured project
type Service struct {
	Config         *config.Config
	SigningService SigningServices
}

// NewReleaseService will return a new Service
func NewReleaseService(cfg *config.Config, signingServices SigningServices) *Service {
	return &Service{
		Config:         cfg,
		SigningService: signingServices,
	}
}
