package nfd

import "github.com/mmilitzer/nfd-go/internal/native"

// ownedPath takes ownership of a path returned by a single-path call.
// release hands it back to the library at most once; reading it afterwards
// panics instead of touching freed memory.
type ownedPath struct {
	lib      native.Library
	ptr      *byte
	released bool
}

func newOwnedPath(lib native.Library, ptr *byte) *ownedPath {
	return &ownedPath{lib: lib, ptr: ptr}
}

func (o *ownedPath) copyString() string {
	if o.released {
		panic("nfd: native path used after release")
	}
	return native.GoString(o.ptr)
}

func (o *ownedPath) release() {
	if o.released {
		return
	}
	o.released = true
	o.lib.FreePath(o.ptr)
	o.ptr = nil
}

// ownedPathSet takes ownership of a path collection returned by a
// successful multiple-selection call. release frees it at most once;
// any access afterwards panics.
type ownedPathSet struct {
	lib      native.Library
	set      native.PathSet
	released bool
}

func newOwnedPathSet(lib native.Library, set native.PathSet) *ownedPathSet {
	return &ownedPathSet{lib: lib, set: set}
}

func (o *ownedPathSet) count() int {
	o.mustBeLive()
	return o.lib.PathSetGetCount(o.set)
}

func (o *ownedPathSet) copyPath(index int) string {
	o.mustBeLive()
	return native.GoString(o.lib.PathSetGetPath(o.set, index))
}

// copyAll copies every entry in index order.
func (o *ownedPathSet) copyAll() []string {
	n := o.count()
	paths := make([]string, 0, n)
	for i := 0; i < n; i++ {
		paths = append(paths, o.copyPath(i))
	}
	return paths
}

func (o *ownedPathSet) release() {
	if o.released {
		return
	}
	o.released = true
	o.lib.PathSetFree(o.set)
	o.set = nil
}

func (o *ownedPathSet) mustBeLive() {
	if o.released {
		panic("nfd: native path set used after release")
	}
}
