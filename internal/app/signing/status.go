package signing

import (
	"github.com/venafi/release-signing-connector/internal/app/domain"
)

// Status is a view of the signing configuration that never carries passwords
type Status struct {
	StoreFileSet     bool               `json:"storeFileSet"`
	StorePasswordSet bool               `json:"storePasswordSet"`
	KeyAliasSet      bool               `json:"keyAliasSet"`
	KeyPasswordSet   bool               `json:"keyPasswordSet"`
	Signing          domain.SigningMode `json:"signing"`
	StoreFile        string             `json:"storeFile,omitempty"`
	KeyAlias         string             `json:"keyAlias,omitempty"`
	Warnings         []string           `json:"warnings"`
}

// Summarize builds the Status for props
func Summarize(projectRoot string, props domain.SigningProperties) Status {
	status := Status{
		StoreFileSet:     props.StoreFile.IsSet(),
		StorePasswordSet: props.StorePassword.IsSet(),
		KeyAliasSet:      props.KeyAlias.IsSet(),
		KeyPasswordSet:   props.KeyPassword.IsSet(),
		Signing:          domain.SigningModeToolchainDefault,
		Warnings:         []string{},
	}

	identity, ok := BuildReleaseSigningIdentity(projectRoot, props)
	if !ok {
		status.Warnings = append(status.Warnings, "no storeFile configured, release builds use the toolchain default signing")
		return status
	}

	status.Signing = domain.SigningModeExplicit
	status.StoreFile = identity.StoreFile
	status.KeyAlias = identity.KeyAlias.OrElse("")
	status.Warnings = append(status.Warnings, Inspect(identity)...)

	return status
}
