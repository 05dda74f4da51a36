package config

import (
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// Config file layout under the loader root
const (
	LevelFile = "level.yaml"
	MapsDir   = "maps"
	AssetsDir = "assets"
)

// Loader loads level configuration and maps using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the path the loader was created with
func (l *Loader) BasePath() string {
	return l.basePath
}

// FS returns the loader's filesystem
func (l *Loader) FS() fs.FS {
	return l.fsys
}

// Assets returns the asset subtree. It falls back to the loader root when
// there is no assets directory.
func (l *Loader) Assets() fs.FS {
	sub, err := fs.Sub(l.fsys, AssetsDir)
	if err != nil {
		return l.fsys
	}
	return sub
}

// LoadLevel loads level.yaml and fills unset fields with defaults
func (l *Loader) LoadLevel() (*LevelConfig, error) {
	data, err := fs.ReadFile(l.fsys, LevelFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", LevelFile, err)
	}

	var cfg LevelConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", LevelFile, err)
	}

	return cfg.WithDefaults(), nil
}

// LoadMap loads and parses maps/<name>
func (l *Loader) LoadMap(name string) (*MapData, error) {
	p := path.Join(MapsDir, name)
	f, err := l.fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("failed to read map %s: %w", name, err)
	}
	defer f.Close()

	md, err := ParseMap(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse map %s: %w", name, err)
	}

	return md, nil
}
