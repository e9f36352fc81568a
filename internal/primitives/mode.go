package primitives

import (
	"fmt"
	"strings"
)

// Mode selects how invalid areas are reported. The zero value is
// ModeProduction.
type Mode int

const (
	// ModeProduction silently ignores invalid areas.
	ModeProduction Mode = iota
	// ModeDevelopment rejects invalid areas with an *InvalidAreaError.
	ModeDevelopment
)

func (m Mode) String() string {
	switch m {
	case ModeDevelopment:
		return "development"
	default:
		return "production"
	}
}

// ParseMode maps an environment name onto a Mode. Empty input is production.
func ParseMode(env string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "", "production", "prod", "staging", "test":
		return ModeProduction, nil
	case "development", "dev":
		return ModeDevelopment, nil
	default:
		return ModeProduction, fmt.Errorf("unknown environment %q", env)
	}
}

// Check validates a against the closed area set. Valid areas return (true,
// nil). Invalid areas return false, plus an *InvalidAreaError in development
// mode only.
func (m Mode) Check(a Area) (bool, error) {
	if a.Known() {
		return true, nil
	}
	if m == ModeDevelopment {
		return false, &InvalidAreaError{Area: a}
	}
	return false, nil
}
