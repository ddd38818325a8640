package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorStatusCodes(t *testing.T) {
	assert.Equal(t, 404, NewNotFoundError("task not found: x").StatusCode())
	assert.Equal(t, 400, NewAmbiguousError("Multiple tags").StatusCode())
	assert.Equal(t, 400, NewValidationError("bad input").StatusCode())
	assert.Equal(t, 500, NewInfrastructureError("boom", nil).StatusCode())
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "task not found: x", NewNotFoundError("task not found: x").Error())

	wrapped := NewInfrastructureError("decoding bridge output", errors.New("unexpected EOF"))
	assert.Equal(t, "decoding bridge output: unexpected EOF", wrapped.Error())

	bare := NewInfrastructureError("", errors.New("exit status 1"))
	assert.Equal(t, "exit status 1", bare.Error())
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewInfrastructureError("context", cause)
	assert.True(t, errors.Is(err, cause))
}

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("loading tasks for stats: %w", NewNotFoundError("task not found: x"))
	assert.Equal(t, ErrKindNotFound, KindOf(err))
	assert.Equal(t, 404, StatusCodeOf(err))
	assert.True(t, IsNotFound(err))
}

func TestKindOfForeignError(t *testing.T) {
	err := errors.New("something else")
	assert.Equal(t, ErrKindInfrastructure, KindOf(err))
	assert.Equal(t, 500, StatusCodeOf(err))
	assert.False(t, IsNotFound(err))
	assert.False(t, IsAmbiguous(err))
	assert.False(t, IsValidation(err))
}
