package properties

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/file"
	"go.uber.org/zap"

	"github.com/venafi/release-signing-connector/internal/app/domain"
)

const (
	// DefaultFileName is the name of the signing properties file at the project root
	DefaultFileName = "key.properties"

	// StoreFileKey is the property holding the keystore path
	StoreFileKey = "storeFile"
	// StorePasswordKey is the property holding the keystore password
	StorePasswordKey = "storePassword"
	// KeyAliasKey is the property holding the signing key alias
	KeyAliasKey = "keyAlias"
	// KeyPasswordKey is the property holding the signing key password
	KeyPasswordKey = "keyPassword"
)

// Load reads the signing properties file at path.
// A missing file is not an error: every field of the result is unset.
func Load(path string) (domain.SigningProperties, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			zap.L().Debug("signing properties file not found, release signing falls back to the toolchain default", zap.String("path", path))
			return domain.SigningProperties{}, nil
		}
		return domain.SigningProperties{}, fmt.Errorf(`failed to read signing properties "%s": %w`, path, err)
	}

	if info.IsDir() {
		return domain.SigningProperties{}, fmt.Errorf(`failed to read signing properties "%s": path is a directory`, path)
	}

	k := koanf.New(".")
	if err = k.Load(file.Provider(path), Parser()); err != nil {
		return domain.SigningProperties{}, fmt.Errorf(`failed to read signing properties "%s": %w`, path, err)
	}

	values := k.All()
	props := domain.SigningProperties{
		StoreFile:     lookup(values, StoreFileKey),
		StorePassword: lookup(values, StorePasswordKey),
		KeyAlias:      lookup(values, KeyAliasKey),
		KeyPassword:   lookup(values, KeyPasswordKey),
	}

	zap.L().Debug("signing properties loaded", zap.String("path", path),
		zap.Bool(StoreFileKey, props.StoreFile.IsSet()),
		zap.Bool(StorePasswordKey, props.StorePassword.IsSet()),
		zap.Bool(KeyAliasKey, props.KeyAlias.IsSet()),
		zap.Bool(KeyPasswordKey, props.KeyPassword.IsSet()))

	return props, nil
}

// lookup reads the flattened values so dotted keys such as "storeFile.old" never shadow "storeFile"
func lookup(values map[string]interface{}, key string) domain.OptionalString {
	value, ok := values[key].(string)
	if !ok {
		return domain.None()
	}
	return domain.Some(value)
}
