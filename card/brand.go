// Package card classifies card numbers into networks by prefix and checks
// number lengths against each network's allowed range. It performs no Luhn
// or checksum validation; the tokenization API is the authority on whether a
// number is chargeable.
package card

import "regexp"

// Brand is a card network.
type Brand string

const (
	Visa       Brand = "Visa"
	MasterCard Brand = "MasterCard"
	JCB        Brand = "JCB"
	Amex       Brand = "American Express"
	Diners     Brand = "Diners Club"
	Laser      Brand = "Laser"
	Maestro    Brand = "Maestro"
	Discover   Brand = "Discover"
)

func (b Brand) String() string {
	return string(b)
}

// BrandSpec ties a brand to its detection pattern and the inclusive range of
// valid number lengths. Patterns are anchored at the start of the number.
type BrandSpec struct {
	Brand   Brand
	Pattern *regexp.Regexp
	MinLen  int
	MaxLen  int
}

// DefaultBrandSpecs lists every brand in detection precedence order. Order
// matters where prefixes overlap: "6304" is both a Laser and a Maestro
// prefix, and Laser wins because it is probed first. "54"/"55" match both
// MasterCard and Diners, and MasterCard wins the same way.
var DefaultBrandSpecs = []BrandSpec{
	{Visa, regexp.MustCompile(`^4`), 16, 16},
	{MasterCard, regexp.MustCompile(`^(5[1-5]|2(2(2[1-9]|[3-9])|[3-6]|7(0|1|20)))`), 16, 16},
	{JCB, regexp.MustCompile(`^35(2[89]|[3-8])`), 16, 16},
	{Amex, regexp.MustCompile(`^3[47]`), 15, 15},
	{Diners, regexp.MustCompile(`^3(0[0-5]|[6,8-9])|^5[4-5]`), 14, 14},
	{Laser, regexp.MustCompile(`^(6304|670[69]|6771)`), 16, 19},
	{Maestro, regexp.MustCompile(`^(5[0,6-8]|6304|6759|676[1-3])`), 12, 19},
	{Discover, regexp.MustCompile(`^(6011|622(12[6-9]|1[3-9][0-9]|[2-8][0-9]{2}|9[0-1][0-9]|92[0-5]|64[4-9])|65)`), 16, 16},
}
