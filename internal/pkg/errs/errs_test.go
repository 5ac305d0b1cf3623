//go:build unit

package errs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	sentinel := New("order not found")
	cause := New("no rows in result set")

	t.Run("sentinel is matchable with errors.Is", func(t *testing.T) {
		err := Mark(cause, sentinel)
		require.ErrorIs(t, err, sentinel)
	})

	t.Run("cause chain stays matchable", func(t *testing.T) {
		err := Mark(Wrap(cause, "fetch order"), sentinel)
		require.ErrorIs(t, err, cause)
		require.ErrorIs(t, err, sentinel)
	})

	t.Run("message comes from the cause", func(t *testing.T) {
		err := Mark(cause, sentinel)
		assert.Equal(t, cause.Error(), err.Error())
	})

	t.Run("typed causes survive marking", func(t *testing.T) {
		var target *kindError
		err := Mark(Wrap(&kindError{kind: "NOT_FOUND"}, "fetch order"), sentinel)
		require.ErrorAs(t, err, &target)
		assert.Equal(t, "NOT_FOUND", target.kind)
	})

	t.Run("nil cause yields the sentinel itself", func(t *testing.T) {
		err := Mark(nil, sentinel)
		assert.Equal(t, sentinel, err)
		require.ErrorIs(t, err, sentinel)
	})
}

type kindError struct {
	kind string
}

func (e *kindError) Error() string { return e.kind }
