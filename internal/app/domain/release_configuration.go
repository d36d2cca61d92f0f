package domain

// SigningMode describes how the toolchain should sign the release build
type SigningMode string

const (
	// SigningModeExplicit means the release build is signed with the returned identity
	SigningModeExplicit SigningMode = "explicit"
	// SigningModeToolchainDefault means no identity was configured and the toolchain applies its own default
	SigningModeToolchainDefault SigningMode = "toolchain-default"
)

// ToolchainDefaults are the values supplied by the build toolchain. They are forwarded unmodified.
type ToolchainDefaults struct {
	CompileSdkVersion int    `json:"compileSdkVersion"`
	TargetSdkVersion  int    `json:"targetSdkVersion"`
	VersionCode       int    `json:"versionCode"`
	VersionName       string `json:"versionName"`
}

// CompileOptions holds the Java language level of the build
type CompileOptions struct {
	SourceCompatibility string `json:"sourceCompatibility"`
	TargetCompatibility string `json:"targetCompatibility"`
}

// ReleaseBuildType holds the release build type settings
type ReleaseBuildType struct {
	MinifyEnabled   bool             `json:"minifyEnabled"`
	ShrinkResources bool             `json:"shrinkResources"`
	Signing         SigningMode      `json:"signing"`
	Identity        *SigningIdentity `json:"identity"`
}

// ReleaseConfiguration is the complete configuration handed back to the toolchain for a release build
type ReleaseConfiguration struct {
	Namespace      string           `json:"namespace"`
	ApplicationID  string           `json:"applicationId"`
	CompileSdk     int              `json:"compileSdk"`
	NdkVersion     string           `json:"ndkVersion"`
	MinSdk         int              `json:"minSdk"`
	TargetSdk      int              `json:"targetSdk"`
	VersionCode    int              `json:"versionCode"`
	VersionName    string           `json:"versionName"`
	CompileOptions CompileOptions   `json:"compileOptions"`
	JvmTarget      string           `json:"jvmTarget"`
	FlutterSource  string           `json:"flutterSource"`
	Release        ReleaseBuildType `json:"release"`
}
