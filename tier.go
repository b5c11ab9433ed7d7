package fastapprox

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTier is returned when a tier name or value is not recognized.
var ErrUnknownTier = errors.New("fastapprox: unknown tier")

// Tier selects an accuracy/speed trade-off.
type Tier int

const (
	// TierFast selects package fast (about 1% relative error).
	TierFast Tier = iota
	// TierFaster selects package faster (about 15% relative error).
	TierFaster

	tierCount // sentinel
)

var tierNames = [tierCount]string{"fast", "faster"}

// Tiers returns every known tier, most accurate first.
func Tiers() []Tier {
	return []Tier{TierFast, TierFaster}
}

// String returns the name of the tier.
func (t Tier) String() string {
	if t.Valid() {
		return tierNames[t]
	}
	return fmt.Sprintf("Tier(%d)", int(t))
}

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	return t >= 0 && t < tierCount
}

// ParseTier returns the tier named s, ignoring case and surrounding space.
func ParseTier(s string) (Tier, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range tierNames {
		if n == name {
			return Tier(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTier, s)
}
