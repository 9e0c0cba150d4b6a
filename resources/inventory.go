package resources

import (
	"maps"
	"os"
	"slices"

	"github.com/drone/envsubst"
)

// Inventory collects the distinct paths exposed to it, per kind.
type Inventory struct {
	paths map[Kind]map[string]struct{}
}

func NewInventory() *Inventory {
	return &Inventory{paths: make(map[Kind]map[string]struct{})}
}

// Expose records path and returns it unchanged. Empty paths are ignored.
func (i *Inventory) Expose(kind Kind, path string) string {
	if path == "" {
		return path
	}
	set := i.paths[kind]
	if set == nil {
		set = make(map[string]struct{})
		i.paths[kind] = set
	}
	set[path] = struct{}{}
	return path
}

// Paths returns the sorted paths recorded for kind.
func (i *Inventory) Paths(kind Kind) []string {
	return slices.Sorted(maps.Keys(i.paths[kind]))
}

// Kinds returns the sorted kinds that have at least one path.
func (i *Inventory) Kinds() []Kind {
	return slices.Sorted(maps.Keys(i.paths))
}

// All returns every recorded path regardless of kind, sorted and deduplicated.
func (i *Inventory) All() []string {
	all := make(map[string]struct{})
	for _, set := range i.paths {
		for p := range set {
			all[p] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(all))
}

// Renamer rewrites paths found in a mapping and leaves others untouched.
type Renamer struct {
	mapping map[string]string
	renamed int
}

func NewRenamer(mapping map[string]string) *Renamer {
	return &Renamer{mapping: mapping}
}

// Expose implements Worker.
func (r *Renamer) Expose(kind Kind, path string) string {
	if n, ok := r.mapping[path]; ok {
		r.renamed++
		return n
	}
	return path
}

// Renamed returns the number of references rewritten so far.
func (r *Renamer) Renamed() int {
	return r.renamed
}

// EnvExpander substitutes ${VAR} references in paths. Paths that fail to
// parse are kept as they are and the error is recorded.
type EnvExpander struct {
	lookup func(string) string
	errs   []error
}

// NewEnvExpander creates an expander resolving variables with lookup, or
// with the process environment when lookup is nil.
func NewEnvExpander(lookup func(string) string) *EnvExpander {
	if lookup == nil {
		lookup = os.Getenv
	}
	return &EnvExpander{lookup: lookup}
}

// Expose implements Worker.
func (e *EnvExpander) Expose(kind Kind, path string) string {
	s, err := envsubst.Eval(path, e.lookup)
	if err != nil {
		e.errs = append(e.errs, err)
		return path
	}
	return s
}

// Errors returns the expansion errors met so far.
func (e *EnvExpander) Errors() []error {
	return e.errs
}
