package errors

import (
	"net/http"
	"testing"

	"catalog/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrInvalidAlias.WithDetails("bad")

	assert.True(t, errors.Is(err, ErrInvalidAlias))

	appErr, ok := errors.AsType[AppError](err)
	require.True(t, ok)
	assert.Equal(t, "bad", appErr.Details())
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, KindInvalidArgument, appErr.Kind())
}

func TestAliasTakenError(t *testing.T) {
	err := errors.Wrap(NewAliasTakenError([]string{"Rocky Balboa", "The Stallion"}), "create person")

	assert.True(t, errors.Is(err, ErrAliasTaken))
	assert.Equal(t, KindConflict, KindOf(err))

	taken, ok := errors.AsType[*AliasTakenError](err)
	require.True(t, ok)
	assert.Equal(t, []string{"Rocky Balboa", "The Stallion"}, taken.Values)
	assert.Equal(t, "Rocky Balboa, The Stallion", taken.Details())
	assert.Equal(t, http.StatusConflict, taken.HTTPCode())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "invalid argument", err: ErrInvalidPage.WrapMessage("search"), want: KindInvalidArgument},
		{name: "not found", err: ErrMovieNotFound, want: KindNotFound},
		{name: "auth failure", err: ErrWrongPassword, want: KindAuthFailure},
		{name: "database", err: NewDatabaseExecuteError(errors.New("boom"), "insert"), want: KindInternal},
		{name: "plain", err: errors.New("boom"), want: KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}
