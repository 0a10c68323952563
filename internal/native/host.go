package native

import (
	"errors"
	"sync"
	"unsafe"
)

// errCanceled is what a picker returns when the user dismissed the dialog.
var errCanceled = errors.New("dialog canceled")

// picker is a Go dialog library reduced to the three call shapes.
type picker interface {
	pickFile(filters []FilterGroup, defaultPath string) (string, error)
	pickFiles(filters []FilterGroup, defaultPath string) ([]string, error)
	pickSave(filters []FilterGroup, defaultPath string) (string, error)
}

// hostLibrary adapts a picker to the Library contract. Returned paths and
// path sets are NUL-terminated buffers owned by the library until they are
// handed back, and failures go through a single last-error slot, exactly as
// libnfd behaves. Releasing something twice panics.
type hostLibrary struct {
	name   string
	picker picker

	mu      sync.Mutex
	lastErr []byte
	paths   map[*byte][]byte
	sets    map[PathSet]*hostPathSet
}

type hostPathSet struct {
	paths [][]byte
}

func newHostLibrary(name string, p picker) *hostLibrary {
	return &hostLibrary{
		name:   name,
		picker: p,
		paths:  make(map[*byte][]byte),
		sets:   make(map[PathSet]*hostPathSet),
	}
}

func (l *hostLibrary) OpenDialog(filterList, defaultPath *byte, outPath **byte) Status {
	path, err := l.picker.pickFile(ParseFilterList(GoString(filterList)), GoString(defaultPath))
	return l.single(path, err, outPath)
}

func (l *hostLibrary) SaveDialog(filterList, defaultPath *byte, outPath **byte) Status {
	path, err := l.picker.pickSave(ParseFilterList(GoString(filterList)), GoString(defaultPath))
	return l.single(path, err, outPath)
}

func (l *hostLibrary) OpenDialogMultiple(filterList, defaultPath *byte, outPaths *PathSet) Status {
	paths, err := l.picker.pickFiles(ParseFilterList(GoString(filterList)), GoString(defaultPath))
	if status, failed := l.check(err); failed {
		return status
	}

	set := &hostPathSet{paths: make([][]byte, len(paths))}
	for i, p := range paths {
		set.paths[i] = NulTerminated(p)
	}
	handle := PathSet(unsafe.Pointer(set))

	l.mu.Lock()
	l.sets[handle] = set
	l.mu.Unlock()

	*outPaths = handle
	return StatusOkay
}

func (l *hostLibrary) GetError() *byte {
	l.mu.Lock()
	defer l.mu.Unlock()
	return BytePtr(l.lastErr)
}

func (l *hostLibrary) PathSetGetCount(set PathSet) int {
	return len(l.lookupSet(set).paths)
}

func (l *hostLibrary) PathSetGetPath(set PathSet, index int) *byte {
	s := l.lookupSet(set)
	if index < 0 || index >= len(s.paths) {
		return nil
	}
	return BytePtr(s.paths[index])
}

func (l *hostLibrary) PathSetFree(set PathSet) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.sets[set]; !ok {
		panic("native: " + l.name + ": free of unknown or already freed path set")
	}
	delete(l.sets, set)
}

func (l *hostLibrary) FreePath(path *byte) {
	if path == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.paths[path]; !ok {
		panic("native: " + l.name + ": free of unknown or already freed path")
	}
	delete(l.paths, path)
}

func (l *hostLibrary) single(path string, err error, outPath **byte) Status {
	if status, failed := l.check(err); failed {
		return status
	}

	buf := NulTerminated(path)
	l.mu.Lock()
	l.paths[&buf[0]] = buf
	l.mu.Unlock()

	*outPath = &buf[0]
	return StatusOkay
}

// check maps a picker error to a status, recording the message in the
// last-error slot on failure.
func (l *hostLibrary) check(err error) (Status, bool) {
	if err == nil {
		return StatusOkay, false
	}
	if errors.Is(err, errCanceled) {
		return StatusCancel, true
	}

	l.mu.Lock()
	l.lastErr = NulTerminated(err.Error())
	l.mu.Unlock()
	return StatusError, true
}

func (l *hostLibrary) lookupSet(set PathSet) *hostPathSet {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.sets[set]
	if !ok {
		panic("native: " + l.name + ": use of unknown or freed path set")
	}
	return s
}
