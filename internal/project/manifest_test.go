package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseManifest(t *testing.T) {
	yaml := `
filament_colors: ["#FF0000", "#00FF00", "#0000FF"]
printer_preset_name: X1C
filament_preset_names: [PLA Basic, PETG HF, PLA Basic]
has_printer_settings: true
has_filament_settings: true
`

	info, err := ParseManifest([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, 3, info.FilamentCount)
	assert.Equal(t, []string{"#FF0000", "#00FF00", "#0000FF"}, info.FilamentColors)
	assert.Equal(t, "X1C", info.PrinterPresetName)
	assert.Len(t, info.FilamentPresetNames, 3)
	assert.True(t, info.HasPrinterSettings)
	assert.True(t, info.HasFilamentSettings)
}

func TestParseManifest_ExplicitCountWins(t *testing.T) {
	info, err := ParseManifest([]byte("filament_count: 4\nfilament_colors: ['#FFFFFF']\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, info.FilamentCount)
}

func TestParseManifest_Invalid(t *testing.T) {
	_, err := ParseManifest([]byte("filament_colors: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse project manifest")
}

func TestManifestParser_PreParse(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cube.yaml")
	require.NoError(t, os.WriteFile(path, []byte("filament_colors: ['#112233']\n"), 0o644))

	info, ok := ManifestParser{}.PreParse(path)
	require.True(t, ok)
	assert.Equal(t, 1, info.FilamentCount)
}

func TestManifestParser_MissingFile(t *testing.T) {
	var gotPath string
	var gotErr error

	parser := ManifestParser{OnError: func(path string, err error) {
		gotPath = path
		gotErr = err
	}}

	missing := filepath.Join(t.TempDir(), "missing.yaml")
	info, ok := parser.PreParse(missing)

	assert.False(t, ok)
	assert.Equal(t, Info{}, info)
	assert.Equal(t, missing, gotPath)
	require.Error(t, gotErr)
}

func TestInfo_Clone(t *testing.T) {
	orig := Info{FilamentColors: []string{"#000000"}, FilamentPresetNames: []string{"A"}}
	clone := orig.Clone()
	clone.FilamentColors[0] = "#FFFFFF"
	clone.FilamentPresetNames[0] = "B"

	assert.Equal(t, "#000000", orig.FilamentColors[0])
	assert.Equal(t, "A", orig.FilamentPresetNames[0])
}
