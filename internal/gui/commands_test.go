package gui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommands_Dispatch(t *testing.T) {
	cmds := NewCommands()
	calls := 0
	cmds.Register(CmdOpen, func() { calls++ })

	require.True(t, cmds.Has(CmdOpen))
	require.NoError(t, cmds.Dispatch(CmdOpen))
	require.NoError(t, cmds.Dispatch(CmdOpen))
	require.Equal(t, 2, calls)
}

func TestCommands_Unknown(t *testing.T) {
	cmds := NewCommands()

	err := cmds.Dispatch(CmdSave)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnknownCommand))
	require.False(t, cmds.Has(CmdSave))
}

func TestCommands_RegisterReplaces(t *testing.T) {
	cmds := NewCommands()
	var got string
	cmds.Register(CmdQuit, func() { got = "first" })
	cmds.Register(CmdQuit, func() { got = "second" })

	require.NoError(t, cmds.Dispatch(CmdQuit))
	require.Equal(t, "second", got)
}
