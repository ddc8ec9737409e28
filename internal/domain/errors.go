package domain

import "errors"

// ErrDomain reports an invalid category or element configuration. It is a
// caller error and retrying with the same arguments cannot succeed.
var ErrDomain = errors.New("invalid puzzle domain")

// ErrGeneration reports that the assembler exhausted its attempt budget
// without reaching a uniquely solvable clue set. Retrying with a fresh
// seed may succeed.
var ErrGeneration = errors.New("puzzle generation failed")

// ErrSolverBudget reports that a solver run exceeded its node budget or
// was canceled before reaching an outcome.
var ErrSolverBudget = errors.New("solver budget exceeded")

// ErrCorruptSave reports a save record that failed decoding or the
// solver integrity re-check on load.
var ErrCorruptSave = errors.New("save record corrupt")

// ErrHintsExhausted reports that the hint budget for the active puzzle
// has been spent.
var ErrHintsExhausted = errors.New("hint budget exhausted")

// ErrNoSession reports a session load when none has been saved yet.
var ErrNoSession = errors.New("no session saved")

// ErrNotFound reports a missing save record.
var ErrNotFound = errors.New("save record not found")
