package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	pkgerrors "github.com/riftworks/skinforge/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "input file",
			Path:     "csv/ddragon_skins.csv",
		}
		assert.Equal(t, "input file not found: csv/ddragon_skins.csv", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewNotFoundError("pricing catalog", "csv/wiki_skins.csv")
		assert.Equal(t, "pricing catalog not found: csv/wiki_skins.csv", err.Error())
		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("input file", "missing.csv")
		wrapped := fmt.Errorf("loading catalog: %w", base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "policy",
			Message: "must be drop or fallback",
		}
		assert.Equal(t, "validation failed for field policy: must be drop or fallback", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "invalid configuration"}
		assert.Equal(t, "validation failed: invalid configuration", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewValidationError("price_rp", -500, "must be non-negative")
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}

func TestIOError(t *testing.T) {
	base := errors.New("permission denied")
	err := &pkgerrors.IOError{Op: "write", Path: "csv/dim_skins_final.csv", Err: base}
	assert.Equal(t, "write csv/dim_skins_final.csv: permission denied", err.Error())
	assert.Equal(t, base, errors.Unwrap(err))
}

func TestParseError(t *testing.T) {
	t.Run("with line", func(t *testing.T) {
		err := &pkgerrors.ParseError{Source: "wiki", Line: 42, Message: "unreadable cost value"}
		assert.Equal(t, "parse error in wiki at line 42: unreadable cost value", err.Error())
	})

	t.Run("without line", func(t *testing.T) {
		err := &pkgerrors.ParseError{Source: "cdragon", Message: "missing load screen path"}
		assert.Equal(t, "parse error in cdragon: missing load screen path", err.Error())
	})
}

func TestAPIError(t *testing.T) {
	t.Run("rate limited", func(t *testing.T) {
		err := pkgerrors.NewAPIError("ddragon", 429, "too many requests")
		assert.True(t, errors.Is(err, pkgerrors.ErrRateLimited))
	})

	t.Run("server error", func(t *testing.T) {
		err := pkgerrors.NewAPIError("cdragon", 503, "service unavailable")
		assert.True(t, errors.Is(err, pkgerrors.ErrSourceUnavailable))
	})

	t.Run("client error is neither", func(t *testing.T) {
		err := pkgerrors.NewAPIError("ddragon", 404, "no such champion")
		assert.False(t, errors.Is(err, pkgerrors.ErrRateLimited))
		assert.False(t, errors.Is(err, pkgerrors.ErrSourceUnavailable))
	})
}

func TestSentinelErrors(t *testing.T) {
	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", pkgerrors.ErrNotFound},
		{"ErrAlreadyExists", pkgerrors.ErrAlreadyExists},
		{"ErrInvalidInput", pkgerrors.ErrInvalidInput},
		{"ErrSourceUnavailable", pkgerrors.ErrSourceUnavailable},
		{"ErrRateLimited", pkgerrors.ErrRateLimited},
	}

	for _, tc := range sentinels {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotNil(t, tc.err)
			assert.NotEmpty(t, tc.err.Error())
		})
	}
}
