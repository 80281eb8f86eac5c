package apierr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"plantstore-admin/internal/apierr"
)

func TestFromResponse(t *testing.T) {
	t.Run("message key", func(t *testing.T) {
		err := apierr.FromResponse(400, []byte(`{"message":"bad input"}`))
		assert.Equal(t, "bad input", err.Message)
		assert.Equal(t, 400, err.StatusCode)
	})

	t.Run("error key", func(t *testing.T) {
		err := apierr.FromResponse(500, []byte(`{"error":"boom"}`))
		assert.Equal(t, "boom", err.Message)
	})

	t.Run("message wins over error", func(t *testing.T) {
		err := apierr.FromResponse(400, []byte(`{"message":"a","error":"b"}`))
		assert.Equal(t, "a", err.Message)
	})

	t.Run("non-json body leaves message empty", func(t *testing.T) {
		err := apierr.FromResponse(502, []byte("<html>Bad Gateway</html>"))
		assert.Empty(t, err.Message)
		assert.Contains(t, err.Error(), "Bad Gateway")
	})
}

func TestUnauthorizedUnwrap(t *testing.T) {
	err := apierr.FromResponse(http.StatusUnauthorized, nil)
	assert.ErrorIs(t, err, apierr.ErrUnauthorized)

	wrapped := fmt.Errorf("list orders: %w", err)
	assert.ErrorIs(t, wrapped, apierr.ErrUnauthorized)

	assert.False(t, errors.Is(apierr.FromResponse(403, nil), apierr.ErrUnauthorized))
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "from backend",
		apierr.UserMessage(&apierr.APIError{StatusCode: 400, Message: "from backend"}, "fallback"))
	assert.Equal(t, "fallback",
		apierr.UserMessage(&apierr.APIError{StatusCode: 400}, "fallback"))
	assert.Equal(t, "fallback",
		apierr.UserMessage(errors.New("dial tcp: refused"), "fallback"))
}

func TestFriendly(t *testing.T) {
	t.Run("backend message wins", func(t *testing.T) {
		err := &apierr.APIError{StatusCode: 400, Message: "order already shipped"}
		assert.Equal(t, "order already shipped", apierr.Friendly(err, 400, "friendly", "fallback"))
	})

	t.Run("bare matching status gets the friendly wording", func(t *testing.T) {
		err := &apierr.APIError{StatusCode: 400}
		assert.Equal(t, "friendly", apierr.Friendly(err, 400, "friendly", "fallback"))
	})

	t.Run("other statuses fall back", func(t *testing.T) {
		err := &apierr.APIError{StatusCode: 500}
		assert.Equal(t, "fallback", apierr.Friendly(err, 400, "friendly", "fallback"))
	})

	t.Run("non-api errors fall back", func(t *testing.T) {
		assert.Equal(t, "fallback", apierr.Friendly(errors.New("timeout"), 400, "friendly", "fallback"))
	})
}
