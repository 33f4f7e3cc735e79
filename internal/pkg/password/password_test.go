//go:build unit

package password_test

import (
	"testing"

	"loyalty-ledger/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hashed, err := password.Hash("correct-horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse", hashed)

	require.NoError(t, password.Compare(hashed, "correct-horse"))
	require.ErrorIs(t, password.Compare(hashed, "battery-staple"), password.ErrMismatch)
}

func TestEmptyInputs(t *testing.T) {
	_, err := password.Hash("")
	require.ErrorIs(t, err, password.ErrEmpty)

	require.ErrorIs(t, password.Compare("", "x"), password.ErrEmpty)
	require.ErrorIs(t, password.Compare("$2a$10$abc", ""), password.ErrEmpty)
}

func TestCompareDummy(t *testing.T) {
	require.ErrorIs(t, password.CompareDummy("anything"), password.ErrMismatch)
}
