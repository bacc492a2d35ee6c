package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginInput struct {
	Password string `json:"password,omitempty" validate:"required"`
	Note     string `json:"note" validate:"max=3"`
	Plain    string `validate:"required"`
}

func TestFromBindError(t *testing.T) {
	in := loginInput{Note: "toolong"}
	err := validator.New().Struct(&in)
	require.Error(t, err)

	got := FromBindError(err, &in)
	assert.Equal(t, FieldErrors{
		"password": "required",
		"note":     "max=3",
		"plain":    "required",
	}, got)

	assert.Equal(t, FieldErrors{"_": "malformed"}, FromBindError(errors.New("unexpected EOF"), &in))
}
