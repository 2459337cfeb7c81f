package scroll

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidButton(t *testing.T) {
	for _, b := range []int{0, 3, 17, 32} {
		require.True(t, ValidButton(b), "button %d", b)
	}
	for _, b := range []int{-1, 1, 2, 33, 99} {
		require.False(t, ValidButton(b), "button %d", b)
	}
}

func TestRawButtonIsZeroBased(t *testing.T) {
	require.Equal(t, int64(2), Config{Button: 3}.RawButton())
	require.Equal(t, int64(31), Config{Button: 32}.RawButton())
	require.Equal(t, int64(-1), Config{}.RawButton())
}

func TestSubscriptions(t *testing.T) {
	require.Equal(t, []EventType{EventMouseMoved}, Config{}.Subscriptions())

	withKeys := Config{Keys: FlagShift}.Subscriptions()
	require.Equal(t, []EventType{EventMouseMoved, EventFlagsChanged}, withKeys)

	withButton := Config{Button: 3}.Subscriptions()
	require.Contains(t, withButton, EventOtherMouseDown)
	require.Contains(t, withButton, EventOtherMouseUp)
	require.Contains(t, withButton, EventOtherMouseDragged)
	require.Contains(t, withButton, EventLeftMouseDown)
	require.Contains(t, withButton, EventRightMouseUp)
	require.NotContains(t, withButton, EventFlagsChanged)
}

func TestParseModifier(t *testing.T) {
	flag, err := ParseModifier("Shift")
	require.NoError(t, err)
	require.Equal(t, FlagShift, flag)

	flag, err = ParseModifier("CAPSLOCK")
	require.NoError(t, err)
	require.Equal(t, FlagCapsLock, flag)

	_, err = ParseModifier("hyper")
	require.Error(t, err)

	require.Equal(t, []string{"shift", "command"}, (FlagCommand | FlagShift).Names())
}
