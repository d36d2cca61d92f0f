package domain

// SigningIdentity is the keystore and key used to sign a release build
type SigningIdentity struct {
	// StoreFile is the absolute path of the keystore
	StoreFile     string         `json:"storeFile"`
	StorePassword OptionalString `json:"storePassword"`
	KeyAlias      OptionalString `json:"keyAlias"`
	KeyPassword   OptionalString `json:"keyPassword"`
}
