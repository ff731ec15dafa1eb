package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type efficiencyPayload struct {
	Level int `json:"level" validate:"efficiency"`
}

func TestValidateEfficiency(t *testing.T) {
	v := GetValidator()

	for level := 0; level <= 10; level++ {
		assert.NoError(t, v.ValidateStruct(efficiencyPayload{Level: level}), "level %d", level)
	}
	assert.Error(t, v.ValidateStruct(efficiencyPayload{Level: -1}))
	assert.Error(t, v.ValidateStruct(efficiencyPayload{Level: 11}))
}

func TestFormatValidationError(t *testing.T) {
	t.Run("Nil error", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})

	t.Run("Validation errors map to field messages", func(t *testing.T) {
		err := GetValidator().ValidateStruct(efficiencyPayload{Level: 99})
		formatted := FormatValidationError(err)
		assert.Equal(t, "Must be between 0 and 10", formatted["level"])
	})

	t.Run("Non-validator errors get a generic message", func(t *testing.T) {
		formatted := FormatValidationError(assert.AnError)
		assert.Equal(t, "Invalid request format", formatted["error"])
	})
}
