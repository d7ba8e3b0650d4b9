package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindAuth, KindOf(Auth("invalid email or password")))
	assert.Equal(t, KindStorage, KindOf(Storage("query", errors.New("boom"))))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestKindOfWrapped(t *testing.T) {
	inner := Conflict("user already exists")
	wrapped := fmt.Errorf("register: %w", inner)
	assert.Equal(t, KindConflict, KindOf(wrapped))
}

func TestErrorMessage(t *testing.T) {
	plain := Validation("email is required")
	assert.Equal(t, "email is required", plain.Error())

	cause := errors.New("dial tcp: refused")
	wrapped := Storage("find user", cause)
	assert.Equal(t, "find user: dial tcp: refused", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		KindValidation: http.StatusBadRequest,
		KindAuth:       http.StatusUnauthorized,
		KindConflict:   http.StatusBadRequest,
		KindNotFound:   http.StatusNotFound,
		KindReferenced: http.StatusConflict,
		KindStorage:    http.StatusInternalServerError,
		KindUnknown:    http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, HTTPStatus(kind), kind.String())
	}
}
