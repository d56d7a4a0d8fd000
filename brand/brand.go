// Package brand holds the institutional identity stamped onto every
// exported report: organization name, custodian line, emblem text, and
// the header accent color. A Config is passed to each renderer at
// construction time so one build can serve multiple report tenants.
package brand

import "fmt"

// RGB is a 24-bit color used for table header fills and accents.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as an RRGGBB hex string without a leading '#'.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// Config describes the branding applied by the renderers.
type Config struct {
	// Organization is the institution name shown in page and running headers.
	Organization string

	// Custodian is the attribution line stamped into footers.
	Custodian string

	// EmblemText stands in for the institutional emblem in the print header.
	EmblemText string

	// HeaderColor fills table header rows and header rules.
	HeaderColor RGB
}

// Default returns the stock institutional branding.
func Default() Config {
	return Config{
		Organization: "DEPARTMENT OF PERSONNEL MANAGEMENT",
		Custodian:    "Custodian: Human Resource Development Division",
		EmblemText:   "DPM",
		HeaderColor:  RGB{R: 0x1F, G: 0x49, B: 0x7D},
	}
}
