package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed weapons/*.yaml ranges/*.yaml scripts/*.tengo
var FS embed.FS

// DefaultDir is where on-disk prefabs shadow the embedded ones.
const DefaultDir = "prefabs"

const (
	weaponsDir = "weapons"
	rangesDir  = "ranges"
	scriptsDir = "scripts"
)

// Library resolves prefab files. A file under Dir on disk wins over the
// copy embedded in the binary, so edits show up without a rebuild.
type Library struct {
	Dir string
}

// Default reads from DefaultDir relative to the working directory.
func Default() Library {
	return Library{Dir: DefaultDir}
}

func (l Library) Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if l.Dir != "" {
		if data, err := os.ReadFile(l.diskPath(clean)); err == nil {
			return data, nil
		}
	}
	return FS.ReadFile(clean)
}

func (l Library) LoadScript(name string) ([]byte, error) {
	return l.Load(inDir(scriptsDir, name))
}

func (l Library) ModTime(name string) (time.Time, bool) {
	if l.Dir == "" {
		return time.Time{}, false
	}
	info, err := os.Stat(l.diskPath(cleanPrefabPath(name)))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func (l Library) diskPath(clean string) string {
	return filepath.Join(l.Dir, filepath.FromSlash(clean))
}

func Load(name string) ([]byte, error) {
	return Default().Load(name)
}

func LoadScript(name string) ([]byte, error) {
	return Default().LoadScript(name)
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, DefaultDir+"/"); ok {
		return after
	}
	return s
}

// inDir places name under dir unless it already names that directory.
func inDir(dir, name string) string {
	s := cleanPrefabPath(name)
	if after, ok := strings.CutPrefix(s, dir+"/"); ok {
		s = after
	}
	return dir + "/" + s
}
