package manifests

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v3"
)

type decodeFunc func(path string, content []byte, target *Manifest) error

// file names in lookup order
var formats = []struct {
	name   string
	decode decodeFunc
}{
	{"flask.cue", decodeCue},
	{"flask.json", decodeCue},
	{"flask.toml", decodeToml},
	{"flask.yaml", decodeYaml},
}

// Load decodes the first manifest file present in dir
func Load(dir string) (*Manifest, error) {
	for _, format := range formats {
		path := filepath.Join(dir, format.name)
		content, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		} else if err != nil {
			return nil, err
		}
		manifest := new(Manifest)
		if err := format.decode(path, content, manifest); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		manifest.Path = path
		if err := manifest.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return manifest, nil
	}
	return nil, fmt.Errorf("%w in %s", ErrNotFound, dir)
}

// json is a subset of cue
func decodeCue(path string, content []byte, target *Manifest) error {
	value := cuecontext.New().CompileBytes(content, cue.Filename(path))
	if err := value.Err(); err != nil {
		return err
	}
	return value.Decode(target)
}

func decodeToml(_ string, content []byte, target *Manifest) error {
	return toml.Unmarshal(content, target)
}

func decodeYaml(_ string, content []byte, target *Manifest) error {
	return yaml.Unmarshal(content, target)
}
