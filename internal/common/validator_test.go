package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator(t *testing.T) {
	v := NewValidator()
	assert.True(t, v.Valid())

	v.Check(false, "name", "must be provided")
	v.Check(false, "name", "must be shorter")
	v.Check(true, "password", "must be provided")

	assert.False(t, v.Valid())
	assert.Equal(t, ValidationError{Errors: map[string]string{"name": "must be provided"}}, v.ValidationError())
}

func TestCheckStringLength(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.CheckStringLength("héllo", 5, 5))
	assert.False(t, v.CheckStringLength("", 1, 5))
	assert.False(t, v.CheckStringLength("toolong", 1, 5))
}
