package models

// TierOrder lists tiers best to worst. It is passed around as data so
// callers (and tests) can substitute their own enumeration.
type TierOrder []string

// DefaultTierOrder returns the site's S..Z scale.
func DefaultTierOrder() TierOrder {
	return TierOrder{"S", "A", "B", "C", "D", "F", "Z"}
}

// Contains reports an exact, case-sensitive membership match.
func (o TierOrder) Contains(tier string) bool {
	return o.Index(tier) >= 0
}

// Index returns the position of tier (0 = best) or -1.
func (o TierOrder) Index(tier string) int {
	for i, t := range o {
		if t == tier {
			return i
		}
	}
	return -1
}
