package project

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ManifestParser is a PreParser reading a YAML project manifest in place of
// an archive. The CLI and the tests use it to stand in for the archive
// reader.
type ManifestParser struct {
	// OnError, if set, receives the read or decode failure.
	OnError func(path string, err error)
}

// PreParse implements PreParser.
func (p ManifestParser) PreParse(path string) (Info, bool) {
	info, err := LoadManifest(path)
	if err != nil {
		if p.OnError != nil {
			p.OnError(path, err)
		}

		return Info{}, false
	}

	return info, true
}

// LoadManifest reads and parses a YAML project manifest.
func LoadManifest(path string) (Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Info{}, fmt.Errorf("failed to read project manifest %s: %w", path, err)
	}

	return ParseManifest(data)
}

// ParseManifest parses YAML manifest data.
func ParseManifest(data []byte) (Info, error) {
	var info Info

	if err := yaml.Unmarshal(data, &info); err != nil {
		return Info{}, fmt.Errorf("failed to parse project manifest: %w", err)
	}

	applyDefaults(&info)

	return info, nil
}

// applyDefaults derives the filament count from the colors when omitted.
func applyDefaults(info *Info) {
	if info.FilamentCount == 0 {
		info.FilamentCount = len(info.FilamentColors)
	}
}
