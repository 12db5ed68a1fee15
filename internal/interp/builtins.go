package interp

import (
	"time"

	"github.com/cwbudde/go-lox/internal/errors"
)

// registerBuiltins installs the interpreter's native bindings into the
// global environment.
func registerBuiltins(globals *Environment) {
	globals.Define("clock", NewBuiltin("clock", 0, builtinClock))
}

// builtinClock returns the number of seconds since the Unix epoch, as a
// float so fractional seconds survive the trip through Number. If the
// evaluator has a ClockEpoch override configured (.loxrc.yaml's
// builtins.clockEpoch), that fixed value is returned instead, so tests of
// scripts that call clock() can be deterministic.
func builtinClock(ev *Evaluator, args []Value) (Value, *errors.SourceError) {
	if ev.ClockEpoch != nil {
		return Number(*ev.ClockEpoch), nil
	}
	return Number(float64(time.Now().UnixNano()) / 1e9), nil
}
