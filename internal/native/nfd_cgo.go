//go:build cgo && nfd

package native

/*
#cgo LDFLAGS: -lnfd
#cgo linux pkg-config: gtk+-3.0
#cgo darwin LDFLAGS: -framework AppKit -framework UniformTypeIdentifiers
#cgo windows LDFLAGS: -lole32 -luuid -lshell32

#include <stdlib.h>
#include <nfd.h>
*/
import "C"
import "unsafe"

func init() {
	register("nfd", 30, func() (Library, error) {
		return nfdLibrary{}, nil
	})
}

// nfdLibrary calls straight into libnfd. Input pointers refer to Go memory
// without Go pointers inside, which cgo pins for the duration of each call.
type nfdLibrary struct{}

func (nfdLibrary) OpenDialog(filterList, defaultPath *byte, outPath **byte) Status {
	var out *C.nfdchar_t
	result := C.NFD_OpenDialog(cchar(filterList), cchar(defaultPath), &out)
	*outPath = (*byte)(unsafe.Pointer(out))
	return status(result)
}

func (nfdLibrary) OpenDialogMultiple(filterList, defaultPath *byte, outPaths *PathSet) Status {
	set := new(C.nfdpathset_t)
	result := C.NFD_OpenDialogMultiple(cchar(filterList), cchar(defaultPath), set)
	if result == C.NFD_OKAY {
		*outPaths = PathSet(unsafe.Pointer(set))
	}
	return status(result)
}

func (nfdLibrary) SaveDialog(filterList, defaultPath *byte, outPath **byte) Status {
	var out *C.nfdchar_t
	result := C.NFD_SaveDialog(cchar(filterList), cchar(defaultPath), &out)
	*outPath = (*byte)(unsafe.Pointer(out))
	return status(result)
}

func (nfdLibrary) GetError() *byte {
	return (*byte)(unsafe.Pointer(C.NFD_GetError()))
}

func (nfdLibrary) PathSetGetCount(set PathSet) int {
	return int(C.NFD_PathSet_GetCount((*C.nfdpathset_t)(set)))
}

func (nfdLibrary) PathSetGetPath(set PathSet, index int) *byte {
	return (*byte)(unsafe.Pointer(C.NFD_PathSet_GetPath((*C.nfdpathset_t)(set), C.size_t(index))))
}

// PathSetFree releases the buffers libnfd allocated inside the set. The
// nfdpathset_t struct itself lives in Go memory.
func (nfdLibrary) PathSetFree(set PathSet) {
	C.NFD_PathSet_Free((*C.nfdpathset_t)(set))
}

// FreePath releases a path returned by OpenDialog or SaveDialog; libnfd
// allocates it with malloc.
func (nfdLibrary) FreePath(path *byte) {
	if path != nil {
		C.free(unsafe.Pointer(path))
	}
}

func cchar(p *byte) *C.nfdchar_t {
	return (*C.nfdchar_t)(unsafe.Pointer(p))
}

func status(r C.nfdresult_t) Status {
	switch r {
	case C.NFD_OKAY:
		return StatusOkay
	case C.NFD_CANCEL:
		return StatusCancel
	}
	return StatusError
}
