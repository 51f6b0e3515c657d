package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	require.NotEmpty(t, c.ProcessNames)
	require.EqualValues(t, 0x2000000, c.RegionSize)
	require.Equal(t, []byte("GQPE78"), c.Signature)
	require.EqualValues(t, 0x80000000, c.SignatureAddr)
}

func TestApplyEnv(t *testing.T) {
	c := DefaultConfig()
	err := c.ApplyEnv(map[string]string{
		EnvProcessNames: " dolphin-emu, Dolphin ,,",
		EnvRegionSize:   "0x4000000",
		EnvRegionHint:   "",
		EnvSignature:    "GQPP78",
		EnvVerbose:      "true",
		"UNRELATED":     "x",
	})
	require.NoError(t, err)
	require.Equal(t, []string{"dolphin-emu", "Dolphin"}, c.ProcessNames)
	require.EqualValues(t, 0x4000000, c.RegionSize)
	require.Equal(t, "", c.RegionPathHint)
	require.Equal(t, []byte("GQPP78"), c.Signature)
	require.True(t, c.Verbose)
}

func TestApplyEnvRejectsBadValues(t *testing.T) {
	require.Error(t, DefaultConfig().ApplyEnv(map[string]string{EnvRegionSize: "big"}))
	require.Error(t, DefaultConfig().ApplyEnv(map[string]string{EnvVerbose: "maybe"}))
	require.Error(t, DefaultConfig().ApplyEnv(map[string]string{EnvProcessNames: " , "}))
}

func TestMergeEnviron(t *testing.T) {
	env := map[string]string{EnvSignature: "file"}
	mergeEnviron(env, []string{
		"PATH=/bin",
		EnvSignature + "=environ",
		EnvRegionHint + "=a=b",
	})
	require.Equal(t, "environ", env[EnvSignature])
	require.Equal(t, "a=b", env[EnvRegionHint])
	require.NotContains(t, env, "PATH")
}

func TestUnhookedClassification(t *testing.T) {
	ioErr := Unhooked("read", 0x10, ErrProcessNotFound)
	require.True(t, IsConnectivity(ioErr))
	require.ErrorIs(t, ioErr, ErrProcessNotFound)
	require.Contains(t, ioErr.Error(), "read at 0x10")

	require.Same(t, ErrInvalidData, Unhooked("read", 0, ErrInvalidData))
	require.Same(t, ErrInvalidPointer, Unhooked("read", 0, ErrInvalidPointer))
	require.NoError(t, Unhooked("read", 0, nil))
	require.Same(t, ioErr, Unhooked("write", 0, ioErr))
}
