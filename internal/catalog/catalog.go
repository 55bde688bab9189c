// Package catalog loads a workspace directory of TOML files declaring named
// finite objects, arrows, and diagrams, and resolves the declarations into
// kernel values. Names are unique across the whole workspace, not per file.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/papapumpkin/topos/internal/diagram"
	"github.com/papapumpkin/topos/internal/fin"
)

// Catalog is a fully resolved workspace: every declared object, arrow, and
// diagram, addressable by name.
type Catalog struct {
	dir      string
	objects  map[string]*fin.Obj
	arrows   map[string]fin.Arrow
	diagrams map[string]*diagram.Diagram
}

// Load reads every *.toml file in dir and resolves the declarations. Each
// arrow's index map is validated against its declared domain and codomain,
// and each diagram edge must reuse the diagram's own object declarations,
// so a loaded catalog contains only well-formed kernel values.
func Load(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoWorkspace, dir)
		}
		return nil, fmt.Errorf("reading workspace directory: %w", err)
	}

	var objects []ObjectDecl
	var arrows []ArrowDecl
	var diagrams []DiagramDecl
	declared := make(map[string]string) // name → source file

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".toml") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", e.Name(), err)
		}

		var f file
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", e.Name(), err)
		}

		for _, o := range f.Objects {
			if err := claim(declared, o.Name, e.Name()); err != nil {
				return nil, err
			}
			objects = append(objects, o)
		}
		for _, a := range f.Arrows {
			if err := claim(declared, a.Name, e.Name()); err != nil {
				return nil, err
			}
			arrows = append(arrows, a)
		}
		for _, d := range f.Diagrams {
			if err := claim(declared, d.Name, e.Name()); err != nil {
				return nil, err
			}
			diagrams = append(diagrams, d)
		}
	}

	return resolve(dir, objects, arrows, diagrams)
}

// claim records a declaration name, rejecting redeclaration.
func claim(declared map[string]string, name, source string) error {
	if name == "" {
		return fmt.Errorf("%w: name (in %s)", ErrMissingField, source)
	}
	if prev, ok := declared[name]; ok {
		return fmt.Errorf("%w: %q declared in both %s and %s", ErrDuplicateName, name, prev, source)
	}
	declared[name] = source
	return nil
}

// resolve builds kernel values from the collected declarations. Objects
// resolve first, then arrows against objects, then diagrams against both.
func resolve(dir string, objects []ObjectDecl, arrows []ArrowDecl, diagrams []DiagramDecl) (*Catalog, error) {
	c := &Catalog{
		dir:      dir,
		objects:  make(map[string]*fin.Obj, len(objects)),
		arrows:   make(map[string]fin.Arrow, len(arrows)),
		diagrams: make(map[string]*diagram.Diagram, len(diagrams)),
	}

	for _, o := range objects {
		c.objects[o.Name] = fin.NewObj(o.Elements...)
	}

	for _, a := range arrows {
		dom, ok := c.objects[a.Dom]
		if !ok {
			return nil, fmt.Errorf("%w: arrow %q dom %q", ErrUnknownObject, a.Name, a.Dom)
		}
		cod, ok := c.objects[a.Cod]
		if !ok {
			return nil, fmt.Errorf("%w: arrow %q cod %q", ErrUnknownObject, a.Name, a.Cod)
		}
		arr, err := fin.NewArrow(dom, cod, a.Map)
		if err != nil {
			return nil, fmt.Errorf("arrow %q: %w", a.Name, err)
		}
		c.arrows[a.Name] = arr
	}

	for _, d := range diagrams {
		objs := make([]*fin.Obj, len(d.Objects))
		for i, name := range d.Objects {
			obj, ok := c.objects[name]
			if !ok {
				return nil, fmt.Errorf("%w: diagram %q position %d object %q", ErrUnknownObject, d.Name, i, name)
			}
			objs[i] = obj
		}
		dg := diagram.New(objs...)
		for _, e := range d.Edges {
			arr, ok := c.arrows[e.Arrow]
			if !ok {
				return nil, fmt.Errorf("%w: diagram %q edge arrow %q", ErrUnknownArrow, d.Name, e.Arrow)
			}
			if err := dg.Add(e.Src, e.Dst, arr); err != nil {
				return nil, fmt.Errorf("diagram %q edge %q: %w", d.Name, e.Arrow, err)
			}
		}
		c.diagrams[d.Name] = dg
	}

	return c, nil
}

// Dir returns the workspace directory the catalog was loaded from.
func (c *Catalog) Dir() string { return c.dir }

// Object looks up a declared object by name.
func (c *Catalog) Object(name string) (*fin.Obj, error) {
	o, ok := c.objects[name]
	if !ok {
		return nil, fmt.Errorf("%w: object %q", ErrNotFound, name)
	}
	return o, nil
}

// Arrow looks up a declared arrow by name.
func (c *Catalog) Arrow(name string) (fin.Arrow, error) {
	a, ok := c.arrows[name]
	if !ok {
		return fin.Arrow{}, fmt.Errorf("%w: arrow %q", ErrNotFound, name)
	}
	return a, nil
}

// Diagram looks up a declared diagram by name.
func (c *Catalog) Diagram(name string) (*diagram.Diagram, error) {
	d, ok := c.diagrams[name]
	if !ok {
		return nil, fmt.Errorf("%w: diagram %q", ErrNotFound, name)
	}
	return d, nil
}

// ObjectNames returns all declared object names in sorted order.
func (c *Catalog) ObjectNames() []string { return sortedKeys(c.objects) }

// ArrowNames returns all declared arrow names in sorted order.
func (c *Catalog) ArrowNames() []string { return sortedKeys(c.arrows) }

// DiagramNames returns all declared diagram names in sorted order.
func (c *Catalog) DiagramNames() []string { return sortedKeys(c.diagrams) }

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
