package guard_test

import (
	"errors"
	"sync"
	"testing"

	"depot/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errShelfNotConstructed = errors.New("shelf must be created via newShelf")

type shelf struct {
	label string
	guard guard.ConstructorGuard
}

func newShelf(label string) (*shelf, error) {
	if label == "" {
		return nil, errors.New("label is required")
	}
	return &shelf{label: label, guard: guard.NewConstructorGuard()}, nil
}

func (s *shelf) Validate() error {
	return s.guard.Validate(errShelfNotConstructed)
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errShelfNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_returns_supplied_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errShelfNotConstructed)

		require.ErrorIs(t, err, errShelfNotConstructed)
	})

	t.Run("zero_value_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInEntity(t *testing.T) {
	t.Run("entity_built_by_constructor_is_valid", func(t *testing.T) {
		s, err := newShelf("A-01")
		require.NoError(t, err)

		require.NoError(t, s.Validate())
	})

	t.Run("zero_value_entity_is_rejected", func(t *testing.T) {
		s := &shelf{label: "A-01"}

		require.ErrorIs(t, s.Validate(), errShelfNotConstructed)
	})

	t.Run("guard_survives_copy_by_value", func(t *testing.T) {
		s, err := newShelf("B-02")
		require.NoError(t, err)

		copied := *s

		require.NoError(t, copied.Validate())
	})
}

func TestConstructorGuard_ConcurrentValidate(t *testing.T) {
	g := guard.NewConstructorGuard()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, g.Validate(errShelfNotConstructed))
		}()
	}
	wg.Wait()
}
