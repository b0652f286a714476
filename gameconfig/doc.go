// Package gameconfig loads and validates the YAML configuration consumed by
// cmd/paritysolve, grounded on the structure and validation style of
// dungeon.Config (dshills-dungo/pkg/dungeon/config.go): a single struct with
// yaml tags, nested sub-configs with their own Validate(), and a
// LoadConfig/LoadConfigFromBytes pair so tests can exercise validation
// without touching the filesystem.
package gameconfig
