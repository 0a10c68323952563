// Package nfd shows the operating system's open/save file dialogs.
//
// A call encodes the optional filter list and default path as
// NUL-terminated buffers, makes exactly one native call and decodes the
// outcome into a Response, copying every returned path into Go memory and
// releasing the native allocations before it returns.
//
// Calls block until the user closes the dialog and cannot be cancelled.
// The native libraries do not support concurrent dialogs; callers must not
// open two at once. Use Builder.Start to run a dialog off the calling
// goroutine.
package nfd

// Mode selects the dialog shown and the shape of its result.
type Mode int

const (
	// SingleFile opens one existing file.
	SingleFile Mode = iota
	// MultipleFiles opens any number of existing files.
	MultipleFiles
	// SaveFile picks a path to save to.
	SaveFile
)

func (m Mode) String() string {
	switch m {
	case SingleFile:
		return "open"
	case MultipleFiles:
		return "open-multiple"
	case SaveFile:
		return "save"
	}
	return "unknown"
}

// ResponseKind tells which outcome a Response carries.
type ResponseKind int

const (
	// Okay: the user picked a single path, in Response.Path.
	Okay ResponseKind = iota
	// OkayMultiple: the user confirmed a multiple selection, in
	// Response.Paths. The slice may be empty.
	OkayMultiple
	// Cancel: the user dismissed the dialog. This is not an error.
	Cancel
)

func (k ResponseKind) String() string {
	switch k {
	case Okay:
		return "okay"
	case OkayMultiple:
		return "okay-multiple"
	case Cancel:
		return "cancel"
	}
	return "unknown"
}

// Response is the successful result of a dialog.
type Response struct {
	Kind  ResponseKind
	Path  string   // set for Okay
	Paths []string // set for OkayMultiple, in the order the library returned them
}

// Cancelled reports whether the user dismissed the dialog.
func (r Response) Cancelled() bool {
	return r.Kind == Cancel
}

// Selected returns the picked paths regardless of the dialog shape, or nil
// on Cancel.
func (r Response) Selected() []string {
	switch r.Kind {
	case Okay:
		return []string{r.Path}
	case OkayMultiple:
		return r.Paths
	}
	return nil
}
