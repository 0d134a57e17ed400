// SPDX-License-Identifier: MIT

// Package topoerr declares the error kinds shared by every lvtopo package.
//
// Each package keeps its own sentinel errors ("simplex: simplex not found",
// "witness: relaxation must be non-negative", ...). Every sentinel wraps
// exactly one kind from this package, so a caller may match the precise
// condition or only its category:
//
//	errors.Is(err, simplex.ErrSimplexNotFound) // precise
//	errors.Is(err, topoerr.ErrNotFound)        // category
//
// Kinds:
//
//   - ErrInvalidArgument    bad caller input (empty sets, negative parameters).
//     The call fails and the target structure is left untouched.
//   - ErrPrecondition       the target is in the wrong state (already populated,
//     degenerate triangulation, collapse run twice). The call is a no-op.
//   - ErrNotFound           a simplex, vertex or key is absent.
//   - ErrFamilyUnsupported  a lattice/root-system family is not implemented.
//
// No lvtopo operation retries on any of these.
package topoerr

import "errors"

var (
	// ErrInvalidArgument classifies rejected caller input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrPrecondition classifies calls made against a structure in the wrong state.
	ErrPrecondition = errors.New("precondition violation")

	// ErrNotFound classifies lookups of absent simplices, vertices or keys.
	ErrNotFound = errors.New("not found")

	// ErrFamilyUnsupported classifies requests for unimplemented lattice families.
	ErrFamilyUnsupported = errors.New("family unsupported")
)

// sentinel is a package-level error whose message is msg and whose
// category is kind.
type sentinel struct {
	msg  string
	kind error
}

func (e *sentinel) Error() string { return e.msg }

func (e *sentinel) Unwrap() error { return e.kind }

// New returns a package sentinel with the given message that matches kind
// under errors.Is. The message should carry the package prefix.
func New(kind error, msg string) error {
	return &sentinel{msg: msg, kind: kind}
}

// KindOf reports which kind err belongs to, or nil when err carries none.
func KindOf(err error) error {
	for _, kind := range []error{ErrInvalidArgument, ErrPrecondition, ErrNotFound, ErrFamilyUnsupported} {
		if errors.Is(err, kind) {
			return kind
		}
	}

	return nil
}
