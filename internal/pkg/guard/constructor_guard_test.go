package guard_test

import (
	"errors"
	"testing"

	"wastecollection/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("command not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardEmbedded shows the guard embedded in a command-like value.
func TestConstructorGuardEmbedded(t *testing.T) {
	errPickupNotConstructed := errors.New("pickup must be created via newPickup")

	type pickup struct {
		residuo string
		guard   guard.ConstructorGuard
	}

	newPickup := func(residuo string) (pickup, error) {
		if residuo == "" {
			return pickup{}, errors.New("residuo is required")
		}
		return pickup{residuo: residuo, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_is_valid", func(t *testing.T) {
		p, err := newPickup("Metal Ferroso")

		require.NoError(t, err)
		require.NoError(t, p.guard.Validate(errPickupNotConstructed))
		assert.Equal(t, "Metal Ferroso", p.residuo)
	})

	t.Run("zero_value_is_rejected", func(t *testing.T) {
		var p pickup

		assert.Equal(t, errPickupNotConstructed, p.guard.Validate(errPickupNotConstructed))
	})

	t.Run("constructor_rules_still_apply", func(t *testing.T) {
		_, err := newPickup("")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "residuo is required")
	})
}
