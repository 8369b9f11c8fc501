// Package assert provides debug-only internal consistency checks.
//
// Assertions guard programming errors, not user input: an assertion firing
// means the library itself (or a caller violating a documented contract)
// is broken. They compile to no-ops unless the build carries the
// "assertions" tag, so release binaries pay nothing for them.
package assert

import (
	"github.com/rs/zerolog/log"
)

// That panics with msg when cond is false and assertions are enabled.
func That(cond bool, msg string) {
	if enabled && !cond {
		fail(msg)
	}
}

// Fail unconditionally reports a broken invariant when assertions are enabled.
func Fail(msg string) {
	if enabled {
		fail(msg)
	}
}

func fail(msg string) {
	log.Error().Str("assert", msg).Msg("Internal consistency violation")
	panic("assertion failed: " + msg)
}
