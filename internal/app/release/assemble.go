package release

import (
	"github.com/venafi/release-signing-connector/internal/app/config"
	"github.com/venafi/release-signing-connector/internal/app/domain"
)

// Assemble builds the release configuration. The toolchain values are forwarded unmodified.
// A nil identity selects the toolchain default signing.
func Assemble(cfg *config.Config, toolchain domain.ToolchainDefaults, identity *domain.SigningIdentity) domain.ReleaseConfiguration {
	signingMode := domain.SigningModeToolchainDefault
	if identity != nil {
		signingMode = domain.SigningModeExplicit
	}

	return domain.ReleaseConfiguration{
		Namespace:     cfg.Android.Namespace,
		ApplicationID: cfg.Android.ApplicationID,
		CompileSdk:    toolchain.CompileSdkVersion,
		NdkVersion:    cfg.Android.NdkVersion,
		MinSdk:        cfg.Android.MinSdk,
		TargetSdk:     toolchain.TargetSdkVersion,
		VersionCode:   toolchain.VersionCode,
		VersionName:   toolchain.VersionName,
		CompileOptions: domain.CompileOptions{
			SourceCompatibility: cfg.Android.JavaVersion,
			TargetCompatibility: cfg.Android.JavaVersion,
		},
		JvmTarget:     cfg.Android.JavaVersion,
		FlutterSource: cfg.Android.FlutterSource,
		Release: domain.ReleaseBuildType{
			MinifyEnabled:   cfg.Release.Minify,
			ShrinkResources: cfg.Release.Shrink,
			Signing:         signingMode,
			Identity:        identity,
		},
	}
}
