package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vparity/gpsolve/gameconfig"
)

// resetFlags clears every package-level flag var back to its zero value so
// tests don't see state left over from a previous case.
func resetFlags() {
	*pgPath, *gpgPath, *configPath = "", "", ""
	*rec, *snl, *par = false, false, false
	*bdd, *reg, *fbdd = false, false, false
	*verbose, *versionF, *help = false, false, false
}

func TestBuildConfigDefaultsToParAndBDD(t *testing.T) {
	resetFlags()
	*pgPath = "arena.pg"

	cfg, err := buildConfig()
	require.NoError(t, err)
	require.Equal(t, gameconfig.FormatPGSolver, cfg.Input.Format)
	require.Equal(t, "arena.pg", cfg.Input.Path)
	require.Equal(t, gameconfig.AlgoGeneralizedPartialMultiple, cfg.Algorithm)
	require.Equal(t, gameconfig.BackendBDD, cfg.Backend)
}

func TestBuildConfigGPGWithRec(t *testing.T) {
	resetFlags()
	*gpgPath = "arena.gpg"
	*rec = true

	cfg, err := buildConfig()
	require.NoError(t, err)
	require.Equal(t, gameconfig.FormatGeneralPGS, cfg.Input.Format)
	require.Equal(t, gameconfig.AlgoGeneralizedParity, cfg.Algorithm)
}

func TestBuildConfigRejectsBothPgAndGpg(t *testing.T) {
	resetFlags()
	*pgPath, *gpgPath = "a.pg", "b.gpg"

	_, err := buildConfig()
	require.Error(t, err)
}

func TestBuildConfigRejectsNoInput(t *testing.T) {
	resetFlags()

	_, err := buildConfig()
	require.Error(t, err)
}

func TestBuildConfigRejectsConflictingAlgorithmFlags(t *testing.T) {
	resetFlags()
	*pgPath = "arena.pg"
	*snl, *par = true, true

	_, err := buildConfig()
	require.Error(t, err)
}

func TestBuildConfigRejectsPartialSolverWithExplicitBackend(t *testing.T) {
	resetFlags()
	*pgPath = "arena.pg"
	*reg = true
	*par = true

	_, err := buildConfig()
	require.Error(t, err)
}

func TestBuildConfigExplicitBackendDefaultsToZielonka(t *testing.T) {
	resetFlags()
	*pgPath = "arena.pg"
	*reg = true

	cfg, err := buildConfig()
	require.NoError(t, err)
	require.Equal(t, gameconfig.AlgoZielonka, cfg.Algorithm)
	require.Equal(t, gameconfig.BackendExplicit, cfg.Backend)
}

func TestBuildConfigRejectsConfigWithLiteralFlags(t *testing.T) {
	resetFlags()
	*configPath = "game.yaml"
	*pgPath = "arena.pg"

	_, err := buildConfig()
	require.Error(t, err)
}

func TestBuildConfigFBDDSelectsFullySymbolicBackend(t *testing.T) {
	resetFlags()
	*gpgPath = "arena.gpg"
	*fbdd = true

	cfg, err := buildConfig()
	require.NoError(t, err)
	require.Equal(t, gameconfig.BackendFBDD, cfg.Backend)
}
