// Package signing turns loaded signing properties into a release signing identity
package signing

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/venafi/release-signing-connector/internal/app/domain"
)

// BuildReleaseSigningIdentity builds the release signing identity from props.
// It returns false when no store file is configured, meaning the toolchain should apply its default signing.
// A relative store file is resolved against projectRoot.
func BuildReleaseSigningIdentity(projectRoot string, props domain.SigningProperties) (domain.SigningIdentity, bool) {
	storeFile, ok := props.StoreFile.Get()
	if !ok || len(storeFile) == 0 {
		return domain.SigningIdentity{}, false
	}

	return domain.SigningIdentity{
		StoreFile:     resolvePath(projectRoot, storeFile),
		StorePassword: props.StorePassword,
		KeyAlias:      props.KeyAlias,
		KeyPassword:   props.KeyPassword,
	}, true
}

func resolvePath(projectRoot, path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(projectRoot, path)
	}

	absolute, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}

	return absolute
}

// Inspect returns warnings for an identity the toolchain is likely to reject
func Inspect(identity domain.SigningIdentity) []string {
	warnings := make([]string, 0)

	if !identity.StorePassword.IsSet() {
		warnings = append(warnings, "storePassword is not set")
	}

	if !identity.KeyAlias.IsSet() {
		warnings = append(warnings, "keyAlias is not set")
	}

	if !identity.KeyPassword.IsSet() {
		warnings = append(warnings, "keyPassword is not set")
	}

	info, err := os.Stat(identity.StoreFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		warnings = append(warnings, fmt.Sprintf(`store file "%s" does not exist`, identity.StoreFile))
	case err != nil:
		warnings = append(warnings, fmt.Sprintf(`store file "%s" is not readable: %s`, identity.StoreFile, err.Error()))
	case info.IsDir():
		warnings = append(warnings, fmt.Sprintf(`store file "%s" is a directory`, identity.StoreFile))
	}

	return warnings
}
