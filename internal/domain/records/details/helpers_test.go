package details

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var today = time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

func testFactory() *Factory {
	return NewFactoryWithClock(func() time.Time { return today })
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

// requireInvalidField verifica que err sea una ValidationError que cita field.
func requireInvalidField(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidDetail)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "expected *ValidationError, got %T", err)
	require.Equal(t, field, ve.Field, "unexpected field in %q", err.Error())
}
