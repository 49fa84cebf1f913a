package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusFromErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NewError("user 9 not found").Mark(ErrNotFound), http.StatusNotFound},
		{"conflict", NewError("key taken").Mark(ErrAlreadyExists), http.StatusBadRequest},
		{"validation", NewError("empty patch").Mark(ErrValidation), http.StatusBadRequest},
		{"database", NewError("connection refused").Mark(ErrDatabase), http.StatusInternalServerError},
		{"unmarked", fmt.Errorf("boom"), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("service: %w", NewError("gone").Mark(ErrNotFound)), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatusFromErr(tt.err))
		})
	}
}

func TestKindPredicates(t *testing.T) {
	notFound := NewError("missing").Mark(ErrNotFound)
	exists := NewError("taken").Mark(ErrAlreadyExists)

	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsNotFound(exists))
	assert.True(t, IsAlreadyExists(exists))
	assert.False(t, IsValidation(exists))
	assert.True(t, IsValidation(NewError("bad").Mark(ErrValidation)))
}

func TestDisplayMessage(t *testing.T) {
	err := NewError("contact 42 missing").WithHint("Contact not found").Mark(ErrNotFound)

	msg, ok := DisplayMessage(err)
	assert.True(t, ok)
	assert.Equal(t, "Contact not found", msg)

	_, ok = DisplayMessage(fmt.Errorf("plain"))
	assert.False(t, ok)
}

func TestInternalErrorIs(t *testing.T) {
	wrapped := &InternalError{Code: ErrCodeNotFound, Message: "x"}

	assert.True(t, wrapped.Is(ErrNotFound))
	assert.False(t, wrapped.Is(ErrValidation))
	assert.False(t, wrapped.Is(nil))
	assert.Equal(t, "not_found: x", wrapped.Error())
}
