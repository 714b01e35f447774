package homework

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesByKind(t *testing.T) {
	err := fmt.Errorf("cycle: %w", NewError(KindEndpoint, "homework API returned status 503", nil))

	assert.True(t, errors.Is(err, ErrEndpoint))
	assert.False(t, errors.Is(err, ErrShape))
	assert.False(t, errors.Is(err, ErrDelivery))
}

func TestError_UnwrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewError(KindEndpoint, "request homework API", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "request homework API: connection refused", err.Error())
}

func TestKindOf(t *testing.T) {
	kind, ok := KindOf(fmt.Errorf("wrapped: %w", NewError(KindUnknownStatus, "unknown status", nil)))
	assert.True(t, ok)
	assert.Equal(t, KindUnknownStatus, kind)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "missing_key", KindMissingKey.String())
	assert.Equal(t, "delivery", KindDelivery.String())
	assert.Equal(t, "unknown", ErrorKind(0).String())
}

func TestVerdictFor(t *testing.T) {
	verdict, ok := VerdictFor(StatusApproved)
	assert.True(t, ok)
	assert.Equal(t, "Работа проверена: ревьюеру всё понравилось. Ура!", verdict)

	_, ok = VerdictFor(Status("unknown_value"))
	assert.False(t, ok)
}
