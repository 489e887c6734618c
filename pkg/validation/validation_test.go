package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Title  string `json:"title" validate:"notblank,min=3,max=50"`
	Rating *int   `json:"rating" validate:"required,min=1,max=5"`
}

func intPtr(v int) *int {
	return &v
}

func TestNew_ReportsJSONNamesInFieldOrder(t *testing.T) {
	err := New().Struct(payload{Title: "   ", Rating: intPtr(0)})

	var fieldErrors validator.ValidationErrors
	require.True(t, errors.As(err, &fieldErrors))
	require.Len(t, fieldErrors, 2)

	assert.Equal(t, "payload.title.notblank", MessageKey(fieldErrors[0]))
	assert.Equal(t, "payload.rating.min", MessageKey(fieldErrors[1]))
}

func TestNew_MissingPointerIsRequired(t *testing.T) {
	err := New().Struct(payload{Title: "Товар"})

	var fieldErrors validator.ValidationErrors
	require.True(t, errors.As(err, &fieldErrors))
	require.Len(t, fieldErrors, 1)
	assert.Equal(t, "payload.rating.required", MessageKey(fieldErrors[0]))
}

func TestNew_CountsRunes(t *testing.T) {
	// три кириллических символа - это шесть байт, но три руны
	assert.NoError(t, New().Struct(payload{Title: "Чай", Rating: intPtr(1)}))
}
