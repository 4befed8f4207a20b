package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidEventType(t *testing.T) {
	for _, kind := range []string{
		EventPageView, EventFocus, EventBlur, EventHeartbeat, EventUnload, EventAction,
	} {
		require.True(t, ValidEventType(kind), kind)
	}
	require.False(t, ValidEventType("click"))
	require.False(t, ValidEventType(""))
	require.False(t, ValidEventType("PAGE_VIEW"))
}
