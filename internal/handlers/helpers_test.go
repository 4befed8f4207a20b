package handlers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClampDate(t *testing.T) {
	require.Equal(t, "2026-03-02", clampDate("2026-03-02"))
	require.Equal(t, "2026-03-02", clampDate("2026-03-02T15:04:05Z"))
	require.Equal(t, "", clampDate(""))
	require.Equal(t, "2026-03", clampDate("2026-03"))
}
