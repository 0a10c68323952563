// Package native is the boundary with the platform file dialog library.
//
// Library mirrors the nativefiledialog C entry points one to one: every
// string crossing the boundary is a pointer to NUL-terminated bytes, every
// result is a three-valued status, and failures are described by a
// process-global error slot that is only valid until the next call.
// Implementations are either the cgo binding to libnfd or a Go dialog
// library adapted to the same contract.
package native

import "unsafe"

// Status is the result code of a dialog call (nfdresult_t).
type Status int

const (
	StatusError Status = iota
	StatusOkay
	StatusCancel
)

func (s Status) String() string {
	switch s {
	case StatusOkay:
		return "okay"
	case StatusCancel:
		return "cancel"
	case StatusError:
		return "error"
	}
	return "unknown"
}

// PathSet is an opaque handle to a collection of paths allocated by the
// library. It is only populated by a successful OpenDialogMultiple and must
// be released with PathSetFree exactly once.
type PathSet unsafe.Pointer

// Library is the set of native entry points a dialog backend exposes.
//
// filterList and defaultPath are nil or point to NUL-terminated bytes that
// the caller keeps alive for the duration of the call. Paths written to
// outPath are owned by the library and must be handed back to FreePath.
// GetError is only meaningful immediately after a call returned StatusError.
//
// Calls block until the user dismisses the dialog. Implementations are not
// required to support concurrent calls.
type Library interface {
	OpenDialog(filterList, defaultPath *byte, outPath **byte) Status
	OpenDialogMultiple(filterList, defaultPath *byte, outPaths *PathSet) Status
	SaveDialog(filterList, defaultPath *byte, outPath **byte) Status
	GetError() *byte

	PathSetGetCount(set PathSet) int
	PathSetGetPath(set PathSet, index int) *byte
	PathSetFree(set PathSet)

	FreePath(path *byte)
}
