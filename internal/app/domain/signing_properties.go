package domain

// SigningProperties represents the keystore credentials read from the key.properties file.
// The zero value has every field unset, which is the state used when the file does not exist.
type SigningProperties struct {
	StoreFile     OptionalString `json:"storeFile"`
	StorePassword OptionalString `json:"storePassword"`
	KeyAlias      OptionalString `json:"keyAlias"`
	KeyPassword   OptionalString `json:"keyPassword"`
}
