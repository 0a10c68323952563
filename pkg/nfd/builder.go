package nfd

import "sync"

var (
	defaultOnce   sync.Once
	defaultDialog *Dialog
	defaultErr    error
)

// Default returns the Dialog for the automatically selected backend. The
// backend is chosen once per process.
func Default() (*Dialog, error) {
	defaultOnce.Do(func() {
		defaultDialog, defaultErr = New("auto")
	})
	return defaultDialog, defaultErr
}

// Builder collects the optional inputs of a dialog.
//
//	resp, err := nfd.NewBuilder().Filter("png,jpg;pdf").DefaultPath(home).Open()
type Builder struct {
	dialog *Dialog
	req    Request
}

// NewBuilder returns a Builder that runs on the Default dialog. Its calls
// fail with the backend error, not an *Error, when no backend can be opened.
func NewBuilder() *Builder {
	return &Builder{}
}

// Builder returns a Builder that runs on d.
func (d *Dialog) Builder() *Builder {
	return &Builder{dialog: d}
}

// Filter sets the filter list: extension groups separated by ';', the
// extensions of a group separated by ',' ("png,jpg;pdf").
func (b *Builder) Filter(filterList string) *Builder {
	b.req.Filter = &filterList
	return b
}

// DefaultPath sets the directory the dialog starts in.
func (b *Builder) DefaultPath(path string) *Builder {
	b.req.DefaultPath = &path
	return b
}

// Request returns the inputs collected so far.
func (b *Builder) Request() Request {
	return b.req
}

// Open shows a single-file open dialog.
func (b *Builder) Open() (Response, error) {
	return b.run(SingleFile)
}

// OpenMultiple shows an open dialog that accepts several files.
func (b *Builder) OpenMultiple() (Response, error) {
	return b.run(MultipleFiles)
}

// Save shows a save dialog.
func (b *Builder) Save() (Response, error) {
	return b.run(SaveFile)
}

func (b *Builder) run(mode Mode) (Response, error) {
	d := b.dialog
	if d == nil {
		var err error
		if d, err = Default(); err != nil {
			return Response{}, err
		}
	}
	return d.Run(mode, b.req)
}

// OpenFileDialog shows a single-file open dialog on the Default dialog.
// An empty filterList or defaultPath is omitted.
func OpenFileDialog(filterList, defaultPath string) (Response, error) {
	return runDefault(SingleFile, filterList, defaultPath)
}

// OpenFileMultipleDialog shows a multiple-file open dialog on the Default
// dialog. An empty filterList or defaultPath is omitted.
func OpenFileMultipleDialog(filterList, defaultPath string) (Response, error) {
	return runDefault(MultipleFiles, filterList, defaultPath)
}

// OpenSaveDialog shows a save dialog on the Default dialog.
// An empty filterList or defaultPath is omitted.
func OpenSaveDialog(filterList, defaultPath string) (Response, error) {
	return runDefault(SaveFile, filterList, defaultPath)
}

func runDefault(mode Mode, filterList, defaultPath string) (Response, error) {
	d, err := Default()
	if err != nil {
		return Response{}, err
	}
	return d.Run(mode, Request{Filter: optional(filterList), DefaultPath: optional(defaultPath)})
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
