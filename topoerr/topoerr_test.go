package topoerr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvtopo/topoerr"
)

func TestNew_MatchesKindAndKeepsMessage(t *testing.T) {
	errMissing := topoerr.New(topoerr.ErrNotFound, "pkg: widget missing")

	assert.Equal(t, "pkg: widget missing", errMissing.Error())
	assert.ErrorIs(t, errMissing, topoerr.ErrNotFound)
	assert.NotErrorIs(t, errMissing, topoerr.ErrInvalidArgument)

	wrapped := fmt.Errorf("Lookup(7): %w", errMissing)
	assert.ErrorIs(t, wrapped, errMissing)
	assert.ErrorIs(t, wrapped, topoerr.ErrNotFound)
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"invalid", topoerr.New(topoerr.ErrInvalidArgument, "x: bad"), topoerr.ErrInvalidArgument},
		{"precondition", topoerr.New(topoerr.ErrPrecondition, "x: twice"), topoerr.ErrPrecondition},
		{"family", fmt.Errorf("ctx: %w", topoerr.New(topoerr.ErrFamilyUnsupported, "x: E8")), topoerr.ErrFamilyUnsupported},
		{"plain", errors.New("boom"), nil},
		{"nil", nil, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, topoerr.KindOf(tc.err))
		})
	}
}
