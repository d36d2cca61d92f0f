// Package release assembles the release build configuration handed to the build toolchain
package release

import (
	"github.com/venafi/release-signing-connector/internal/app/domain"
	"github.com/venafi/release-signing-connector/internal/app/properties"
	"github.com/venafi/release-signing-connector/internal/app/signing"
)

//go:generate go run github.com/golang/mock/mockgen -source ./signing_services.go -destination=./mocks/mock_signing_services.go -package=mocks

// SigningServices interfaces for loading signing configuration
type SigningServices interface {
	// LoadSigningProperties will read the signing properties file, a missing file yields unset properties
	LoadSigningProperties(path string) (domain.SigningProperties, error)
	// BuildReleaseSigningIdentity will build the release signing identity, false means the toolchain default applies
	BuildReleaseSigningIdentity(projectRoot string, props domain.SigningProperties) (domain.SigningIdentity, bool)
}

// SigningServicesImpl implementation of SigningServices
type SigningServicesImpl struct {
}

// NewSigningServices will return a new SigningServicesImpl
func NewSigningServices() *SigningServicesImpl {
	return &SigningServicesImpl{}
}

// LoadSigningProperties will read the signing properties file at path
func (s *SigningServicesImpl) LoadSigningProperties(path string) (domain.SigningProperties, error) {
	return properties.Load(path)
}

// BuildReleaseSigningIdentity will build the release signing identity from props
func (s *SigningServicesImpl) BuildReleaseSigningIdentity(projectRoot string, props domain.SigningProperties) (domain.SigningIdentity, bool) {
	return signing.BuildReleaseSigningIdentity(projectRoot, props)
}
