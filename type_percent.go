package incomelens

import "fmt"

// Percent is a percentage derived from decimal amounts; it is never
// accumulated independently.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.1f%%", float64(p))
}

// SignedString returns the percentage with an explicit sign, "-" for zero.
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.1f%%", float64(p))
	if res == "+0.0%" {
		return "-"
	}
	return res
}
