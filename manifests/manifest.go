package manifests

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Manifest describes a Gin project
type Manifest struct {
	Name         string                `json:"name" toml:"name" yaml:"name"`
	Description  string                `json:"description,omitempty" toml:"description,omitempty" yaml:"description,omitempty"`
	Version      string                `json:"version" toml:"version" yaml:"version"`
	Authors      []string              `json:"authors" toml:"authors" yaml:"authors"`
	MadeIn       string                `json:"made_in" toml:"made_in" yaml:"made_in"`
	Targets      []string              `json:"targets,omitempty" toml:"targets,omitempty" yaml:"targets,omitempty"`
	Dependencies map[string]Dependency `json:"dependencies" toml:"dependencies" yaml:"dependencies"`

	// the file it is loaded from
	Path string `json:"-" toml:"-" yaml:"-"`
}

// Dependency is fetched from exactly one of a registry version, a local path or a git url
type Dependency struct {
	Version  string   `json:"version,omitempty" toml:"version,omitempty" yaml:"version,omitempty"`
	Path     string   `json:"path,omitempty" toml:"path,omitempty" yaml:"path,omitempty"`
	Git      string   `json:"git,omitempty" toml:"git,omitempty" yaml:"git,omitempty"`
	Features []string `json:"features,omitempty" toml:"features,omitempty" yaml:"features,omitempty"`
	Optional bool     `json:"optional,omitempty" toml:"optional,omitempty" yaml:"optional,omitempty"`
}

var (
	ErrNotFound         = errors.New("manifest not found")
	ErrMissingField     = errors.New("missing field")
	ErrDependencySource = errors.New("dependency must have exactly one source")
)

func (d Dependency) Source() string {
	switch {
	case d.Version != "":
		return "version " + d.Version
	case d.Path != "":
		return "path " + d.Path
	case d.Git != "":
		return "git " + d.Git
	}
	return ""
}

func (m *Manifest) Validate() error {
	var errs []error
	if m.Name == "" {
		errs = append(errs, fmt.Errorf("%w: name", ErrMissingField))
	}
	if m.Version == "" {
		errs = append(errs, fmt.Errorf("%w: version", ErrMissingField))
	}
	for _, name := range m.DependencyNames() {
		dep := m.Dependencies[name]
		n := 0
		for _, s := range []string{dep.Version, dep.Path, dep.Git} {
			if s != "" {
				n++
			}
		}
		if n != 1 {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDependencySource, name))
		}
	}
	return errors.Join(errs...)
}

func (m *Manifest) DependencyNames() []string {
	return slices.Sorted(maps.Keys(m.Dependencies))
}
