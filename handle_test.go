package fst

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignalHandleGetIndex(t *testing.T) {
	require.Equal(t, 0, SignalHandle(1).GetIndex())
	require.Equal(t, 41, SignalHandle(42).GetIndex())
}
