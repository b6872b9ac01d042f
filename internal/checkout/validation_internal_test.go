package checkout

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestMustRegister(t *testing.T) {
	ok := func(validator.FieldLevel) bool { return true }

	t.Run("registers", func(t *testing.T) {
		v := validator.New()
		assert.NotPanics(t, func() { mustRegister(v, "always", ok) })
		assert.NoError(t, v.Var("x", "always"))
	})

	t.Run("empty tag", func(t *testing.T) {
		assert.Panics(t, func() { mustRegister(validator.New(), "", ok) })
	})

	t.Run("nil func", func(t *testing.T) {
		assert.Panics(t, func() { mustRegister(validator.New(), "broken", nil) })
	})

	t.Run("form validator builds", func(t *testing.T) {
		assert.NotPanics(t, func() { NewValidator() })
	})
}
