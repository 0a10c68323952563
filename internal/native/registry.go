package native

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
)

// ErrNoBackend is returned by Open when no dialog backend could be opened.
var ErrNoBackend = errors.New("no dialog backend available")

// Opener prepares a backend. It returns an error when the backend cannot
// run in the current environment.
type Opener func() (Library, error)

type backend struct {
	name     string
	priority int
	open     Opener
}

var (
	registryMu sync.Mutex
	backends   = map[string]backend{}
)

// register adds a backend. Backends with a higher priority are tried first
// when Open is asked to pick automatically.
func register(name string, priority int, open Opener) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = backend{name: name, priority: priority, open: open}
}

// Backends returns the names of the backends compiled into this binary,
// highest priority first.
func Backends() []string {
	var names []string
	for _, b := range sorted() {
		names = append(names, b.name)
	}
	return names
}

// Open returns the named backend. An empty name or "auto" selects the
// highest-priority backend that opens successfully.
func Open(name string) (Library, error) {
	if name == "" || name == "auto" {
		return openAuto()
	}

	registryMu.Lock()
	b, ok := backends[name]
	registryMu.Unlock()
	if !ok {
		return nil, fmt.Errorf("unknown dialog backend %q (available: %v)", name, Backends())
	}

	lib, err := b.open()
	if err != nil {
		return nil, fmt.Errorf("open dialog backend %s: %w", name, err)
	}
	return lib, nil
}

func openAuto() (Library, error) {
	for _, b := range sorted() {
		lib, err := b.open()
		if err != nil {
			log.Printf("[native] Backend %s unavailable: %v", b.name, err)
			continue
		}
		log.Printf("[native] Using backend %s", b.name)
		return lib, nil
	}
	return nil, ErrNoBackend
}

func sorted() []backend {
	registryMu.Lock()
	defer registryMu.Unlock()

	list := make([]backend, 0, len(backends))
	for _, b := range backends {
		list = append(list, b)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].priority != list[j].priority {
			return list[i].priority > list[j].priority
		}
		return list[i].name < list[j].name
	})
	return list
}
