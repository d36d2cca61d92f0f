// Package config loads the connector configuration from defaults, an optional YAML file and the environment
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
)

const (
	// EnvPrefix is the prefix of environment variables overriding configuration keys,
	// e.g. SIGNING_CONNECTOR_PROJECT_ROOT sets project.root
	EnvPrefix = "SIGNING_CONNECTOR_"
	// FileEnv names the environment variable holding an optional YAML configuration file
	FileEnv = EnvPrefix + "CONFIG_FILE"
)

// Config is the connector configuration
type Config struct {
	Server  Server  `koanf:"server"`
	Log     Log     `koanf:"log"`
	Payload Payload `koanf:"payload"`
	Project Project `koanf:"project"`
	Release Release `koanf:"release"`
	Android Android `koanf:"android"`
}

// Server holds the HTTP listener settings
type Server struct {
	Address string `koanf:"address"`
}

// Log holds the logger settings
type Log struct {
	Level string `koanf:"level"`
}

// Payload holds the request payload encryption settings
type Payload struct {
	// Key is the path of the PEM encoded RSA key used to decrypt request payloads
	Key string `koanf:"key"`
}

// Project locates the project whose release build is being configured
type Project struct {
	// Root is the project root directory, absolute after Load
	Root string `koanf:"root"`
	// Properties is the signing properties file, relative to Root
	Properties string `koanf:"properties"`
}

// Release holds the release build type settings
type Release struct {
	// Strict rejects release configuration when no signing identity is configured
	Strict bool `koanf:"strict"`
	Minify bool `koanf:"minify"`
	Shrink bool `koanf:"shrink"`
}

// Android holds the application values forwarded to the toolchain
type Android struct {
	Namespace     string `koanf:"namespace"`
	ApplicationID string `koanf:"applicationid"`
	NdkVersion    string `koanf:"ndkversion"`
	MinSdk        int    `koanf:"minsdk"`
	JavaVersion   string `koanf:"javaversion"`
	FlutterSource string `koanf:"fluttersource"`
}

// PropertiesPath returns the location of the signing properties file
func (c *Config) PropertiesPath() string {
	return filepath.Join(c.Project.Root, c.Project.Properties)
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"server.address":        ":8080",
		"log.level":             "debug",
		"payload.key":           "/keys/payload-encryption-key.pem",
		"project.root":          ".",
		"project.properties":    "key.properties",
		"release.strict":        false,
		"release.minify":        true,
		"release.shrink":        true,
		"android.namespace":     "com.harupan.harupan2",
		"android.applicationid": "com.harupan.harupan2",
		"android.ndkversion":    "28.2.13676358",
		"android.minsdk":        24,
		"android.javaversion":   "17",
		"android.fluttersource": "../..",
	}
}

// New returns the configuration read from the process environment
func New() (*Config, error) {
	return Load(os.Getenv(FileEnv))
}

// Load layers the defaults, the YAML file at path when path is not empty, and the environment
func Load(path string) (*Config, error) {
	var err error

	k := koanf.New(".")

	if err = k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load default configuration: %w", err)
	}

	if len(path) > 0 {
		if err = k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf(`failed to load configuration file "%s": %w`, path, err)
		}
	}

	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment configuration: %w", err)
	}

	cfg := &Config{}
	if err = k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err = cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.Project.Properties) == 0 {
		return errors.New("project.properties must not be empty")
	}

	if !filepath.IsLocal(c.Project.Properties) {
		return fmt.Errorf(`project.properties "%s" must be a path inside the project root`, c.Project.Properties)
	}

	root, err := filepath.Abs(c.Project.Root)
	if err != nil {
		return fmt.Errorf(`invalid project.root "%s": %w`, c.Project.Root, err)
	}
	c.Project.Root = root

	if c.Android.MinSdk <= 0 {
		return fmt.Errorf("android.minsdk must be positive, got %d", c.Android.MinSdk)
	}

	return nil
}
