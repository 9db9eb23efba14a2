package valueobjects

import (
	"fmt"
	"strings"
)

type Tier string

const (
	Tier1 Tier = "TIER1"
	Tier2 Tier = "TIER2"
	Tier3 Tier = "TIER3"
)

var validTiers = map[Tier]bool{
	Tier1: true,
	Tier2: true,
	Tier3: true,
}

func (t Tier) String() string {
	return string(t)
}

func (t Tier) IsValid() bool {
	return validTiers[t]
}

// ParseTier accepts "tier2", "TIER2" and " Tier2 ". An empty string is TIER1.
func ParseTier(s string) (Tier, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Tier1, nil
	}
	t := Tier(strings.ToUpper(s))
	if !t.IsValid() {
		return "", fmt.Errorf("invalid wholesale tier: %s", s)
	}
	return t, nil
}
