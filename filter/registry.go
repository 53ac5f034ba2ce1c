package filter

import (
	"fmt"
	"sort"
	"sync"

	"github.com/ngpaint/paintcore"
)

// Registry is a name-keyed lookup from plugin name to Filter.
// Registration is idempotent per name: re-registering a name replaces
// the previous entry.
type Registry struct {
	mu      sync.RWMutex
	filters map[string]Filter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{filters: make(map[string]Filter)}
}

// Register adds a filter under its own name. Nil filters are ignored.
func (r *Registry) Register(f Filter) {
	if f == nil {
		return
	}
	r.mu.Lock()
	r.filters[f.Name()] = f
	r.mu.Unlock()
	paintcore.Logger().Debug("filter registered", "name", f.Name(), "version", f.Version())
}

// Has reports whether a filter is registered under name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.filters[name]
	return ok
}

// Get returns the filter registered under name.
func (r *Registry) Get(name string) (Filter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.filters[name]
	return f, ok
}

// Names returns the registered plugin names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.filters))
	for name := range r.filters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke runs the named filter over the tile slice. Invoking an
// unregistered name fails cleanly with an error and touches nothing.
func (r *Registry) Invoke(name string, tiles []*paintcore.Tile, width, height int, params Params, cb Callback) error {
	f, ok := r.Get(name)
	if !ok {
		return fmt.Errorf("filter: no plugin registered under %q", name)
	}
	paintcore.Logger().Info("filter dispatch", "name", name, "width", width, "height", height)
	f.Process(tiles, width, height, params, cb)
	return nil
}

// ApplyToGrid adapts a TileGrid to the flat tile-slice plugin contract
// and invokes the named filter from the registry over it. This is the
// dispatch seam between Canvas.ApplyFilter, which only records intent,
// and an actual plugin run.
func ApplyToGrid(r *Registry, name string, grid *paintcore.TileGrid, params Params, cb Callback) error {
	tiles := make([]*paintcore.Tile, 0, grid.TileCountX()*grid.TileCountY())
	for ty := 0; ty < grid.TileCountY(); ty++ {
		for tx := 0; tx < grid.TileCountX(); tx++ {
			tiles = append(tiles, grid.Tile(tx, ty))
		}
	}
	return r.Invoke(name, tiles, grid.Width(), grid.Height(), params, cb)
}

// defaultRegistry holds the stock filters shipped with this package.
var defaultRegistry = NewRegistry()

func init() {
	defaultRegistry.Register(Blur{})
	defaultRegistry.Register(Unsharp{})
	defaultRegistry.Register(Smudge{})
	defaultRegistry.Register(Inpaint{})
}

// Default returns the package registry, pre-populated with the stock
// filters.
func Default() *Registry { return defaultRegistry }
