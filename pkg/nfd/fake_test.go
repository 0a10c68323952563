package nfd

import (
	"unsafe"

	"github.com/mmilitzer/nfd-go/internal/native"
)

// fakeLibrary is a scripted native.Library that records every call and
// owns its returned buffers the way libnfd does. Freeing anything twice
// panics.
type fakeLibrary struct {
	status native.Status
	path   *string  // returned by OpenDialog/SaveDialog on StatusOkay
	paths  []string // returned by OpenDialogMultiple on StatusOkay
	errMsg string   // loaded into the error slot on StatusError

	calls      []string
	gotFilter  *string
	gotDefault *string

	errSlot []byte
	live    map[*byte][]byte
	sets    map[native.PathSet]*fakeSet
}

type fakeSet struct {
	paths [][]byte
}

func newFakeLibrary(status native.Status) *fakeLibrary {
	return &fakeLibrary{
		status: status,
		live:   make(map[*byte][]byte),
		sets:   make(map[native.PathSet]*fakeSet),
	}
}

func (f *fakeLibrary) withPath(p string) *fakeLibrary {
	f.path = &p
	return f
}

func (f *fakeLibrary) withPaths(p ...string) *fakeLibrary {
	f.paths = p
	return f
}

func (f *fakeLibrary) withError(msg string) *fakeLibrary {
	f.errMsg = msg
	return f
}

func (f *fakeLibrary) record(call string) {
	f.calls = append(f.calls, call)
}

func (f *fakeLibrary) capture(filter, defaultPath *byte) {
	if filter != nil {
		s := native.GoString(filter)
		f.gotFilter = &s
	}
	if defaultPath != nil {
		s := native.GoString(defaultPath)
		f.gotDefault = &s
	}
}

func (f *fakeLibrary) finish() native.Status {
	if f.status == native.StatusError {
		f.errSlot = native.NulTerminated(f.errMsg)
	}
	return f.status
}

func (f *fakeLibrary) single(filter, defaultPath *byte, outPath **byte) native.Status {
	f.capture(filter, defaultPath)
	if f.status == native.StatusOkay && f.path != nil {
		buf := native.NulTerminated(*f.path)
		f.live[&buf[0]] = buf
		*outPath = &buf[0]
	}
	return f.finish()
}

func (f *fakeLibrary) OpenDialog(filter, defaultPath *byte, outPath **byte) native.Status {
	f.record("OpenDialog")
	return f.single(filter, defaultPath, outPath)
}

func (f *fakeLibrary) SaveDialog(filter, defaultPath *byte, outPath **byte) native.Status {
	f.record("SaveDialog")
	return f.single(filter, defaultPath, outPath)
}

func (f *fakeLibrary) OpenDialogMultiple(filter, defaultPath *byte, outPaths *native.PathSet) native.Status {
	f.record("OpenDialogMultiple")
	f.capture(filter, defaultPath)
	if f.status == native.StatusOkay {
		set := &fakeSet{}
		for _, p := range f.paths {
			set.paths = append(set.paths, native.NulTerminated(p))
		}
		handle := native.PathSet(unsafe.Pointer(set))
		f.sets[handle] = set
		*outPaths = handle
	}
	return f.finish()
}

func (f *fakeLibrary) GetError() *byte {
	f.record("GetError")
	return native.BytePtr(f.errSlot)
}

func (f *fakeLibrary) PathSetGetCount(set native.PathSet) int {
	f.record("PathSetGetCount")
	return len(f.lookup(set).paths)
}

func (f *fakeLibrary) PathSetGetPath(set native.PathSet, index int) *byte {
	f.record("PathSetGetPath")
	return native.BytePtr(f.lookup(set).paths[index])
}

func (f *fakeLibrary) PathSetFree(set native.PathSet) {
	f.record("PathSetFree")
	if _, ok := f.sets[set]; !ok {
		panic("fake: path set freed twice or never allocated")
	}
	delete(f.sets, set)
}

func (f *fakeLibrary) FreePath(path *byte) {
	f.record("FreePath")
	if _, ok := f.live[path]; !ok {
		panic("fake: path freed twice or never allocated")
	}
	delete(f.live, path)
}

func (f *fakeLibrary) lookup(set native.PathSet) *fakeSet {
	s, ok := f.sets[set]
	if !ok {
		panic("fake: path set used after free")
	}
	return s
}

func (f *fakeLibrary) count(call string) int {
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}
