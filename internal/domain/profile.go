package domain

// Profile is the single shipping/contact record of the storefront's
// user. It is overwritten wholesale on save; fields default to the
// empty string when never saved.
type Profile struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
	ZipCode string `json:"zip_code"`
}
