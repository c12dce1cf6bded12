package card

// Classifier detects the card network of a number and validates its length.
// A Classifier is immutable after construction and safe for concurrent use.
type Classifier struct {
	specs  []BrandSpec
	byName map[Brand]BrandSpec
}

// NewClassifier builds a classifier that probes specs in the given order.
// Pass DefaultBrandSpecs for the standard precedence.
func NewClassifier(specs []BrandSpec) *Classifier {
	byName := make(map[Brand]BrandSpec, len(specs))
	for _, s := range specs {
		byName[s.Brand] = s
	}
	return &Classifier{specs: specs, byName: byName}
}

// NewDefaultClassifier builds a classifier over DefaultBrandSpecs.
func NewDefaultClassifier() *Classifier {
	return NewClassifier(DefaultBrandSpecs)
}

// Identify returns the first brand whose pattern matches the start of the
// number. Numbers containing non-digit characters never match, nor does the
// empty string.
func (c *Classifier) Identify(number string) (Brand, bool) {
	if !isDigits(number) {
		return "", false
	}
	for _, s := range c.specs {
		if s.Pattern.MatchString(number) {
			return s.Brand, true
		}
	}
	return "", false
}

// IsValidLength reports whether the number's length falls within the brand's
// inclusive valid range. It is independent of detection: callers decide
// separately whether "no brand" and "wrong length" matter.
func (c *Classifier) IsValidLength(brand Brand, number string) bool {
	s, ok := c.byName[brand]
	if !ok {
		return false
	}
	return len(number) >= s.MinLen && len(number) <= s.MaxLen
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
