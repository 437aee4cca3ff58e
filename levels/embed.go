package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed *.json manifest.yaml
var LevelsFS embed.FS

// LoadLevelFromFS loads an embedded level by file name; the .json suffix is
// optional. Defaults are applied.
func LoadLevelFromFS(name string) (*Level, error) {
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	data, err := fs.ReadFile(LevelsFS, path.Base(name))
	if err != nil {
		return nil, fmt.Errorf("levels: read level: %w", err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, err
	}
	lvl.ApplyDefaults()
	return lvl, nil
}

// Entry is one level listed in the manifest.
type Entry struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
	File string `yaml:"file"`
}

type Manifest struct {
	Levels []Entry `yaml:"levels"`
}

func LoadManifest() (*Manifest, error) {
	data, err := fs.ReadFile(LevelsFS, "manifest.yaml")
	if err != nil {
		return nil, fmt.Errorf("levels: read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("levels: unmarshal manifest: %w", err)
	}
	return &m, nil
}

func (m *Manifest) Level(id int) (Entry, bool) {
	if m == nil {
		return Entry{}, false
	}
	for _, e := range m.Levels {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Load reads the level for id from the embedded files.
func (m *Manifest) Load(id int) (*Level, error) {
	entry, ok := m.Level(id)
	if !ok {
		return nil, fmt.Errorf("levels: no level with id %d", id)
	}
	return LoadLevelFromFS(entry.File)
}
