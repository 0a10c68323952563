package nfd

import (
	"fmt"
	"log"
	"runtime"
	"strconv"
	"sync/atomic"

	"github.com/mmilitzer/nfd-go/internal/logging"
	"github.com/mmilitzer/nfd-go/internal/native"
)

// inflight counts dialog calls in progress across the process. The native
// error slot and dialog state are process-wide, so overlap is only
// reported, never prevented.
var inflight atomic.Int32

// Dialog invokes one dialog backend.
type Dialog struct {
	lib native.Library
}

// New opens the named backend ("nfd", "sqweek", "zenity"); "" or "auto"
// picks the best one available in this build.
func New(backend string) (*Dialog, error) {
	lib, err := native.Open(backend)
	if err != nil {
		return nil, fmt.Errorf("nfd: %w", err)
	}
	return newDialog(lib), nil
}

func newDialog(lib native.Library) *Dialog {
	return &Dialog{lib: lib}
}

// Backends lists the dialog backends compiled into this binary.
func Backends() []string {
	return native.Backends()
}

// Run shows the dialog for mode and blocks until the user closes it.
// Cancellation is reported as a Response of kind Cancel; err is non-nil
// only for an unknown mode, an input that cannot be encoded or a failure
// reported by the native library, and is then always an *Error.
func (d *Dialog) Run(mode Mode, req Request) (Response, error) {
	if mode != SingleFile && mode != MultipleFiles && mode != SaveFile {
		return Response{}, modeError(mode)
	}

	enc, err := encode(req)
	if err != nil {
		return Response{}, err
	}
	// the native call reads through these buffers
	defer runtime.KeepAlive(enc)

	defer enter(mode)()

	filter, defaultPath := enc.pointers()
	if mode == MultipleFiles {
		return d.decodeMultiple(d.invokeMultiple(req, filter, defaultPath))
	}
	return d.decodeSingle(d.invokeSingle(mode, req, filter, defaultPath))
}

// singleOutcome is the result of a single-path call (open or save).
type singleOutcome struct {
	status native.Status
	path   *ownedPath // StatusOkay only; nil if the library returned no path
	errMsg string     // StatusError only
}

// multiOutcome is the result of a multiple-selection call.
type multiOutcome struct {
	status native.Status
	set    *ownedPathSet // StatusOkay only; nil if the library returned no set
	errMsg string        // StatusError only
}

func (d *Dialog) invokeSingle(mode Mode, req Request, filter, defaultPath *byte) singleOutcome {
	call, op := d.lib.OpenDialog, "OpenDialog"
	if mode == SaveFile {
		call, op = d.lib.SaveDialog, "SaveDialog"
	}

	var out *byte
	done := logging.Trace(op, "filter=%s default_path=%s", describe(req.Filter), describe(req.DefaultPath))
	status := call(filter, defaultPath, &out)
	done()

	o := singleOutcome{status: status}
	switch status {
	case native.StatusOkay:
		if out != nil {
			o.path = newOwnedPath(d.lib, out)
		}
	case native.StatusError:
		// Must be the next native call after the failure: any other call
		// overwrites the library's error slot.
		o.errMsg = native.GoString(d.lib.GetError())
	}
	return o
}

func (d *Dialog) invokeMultiple(req Request, filter, defaultPath *byte) multiOutcome {
	var set native.PathSet
	done := logging.Trace("OpenDialogMultiple", "filter=%s default_path=%s", describe(req.Filter), describe(req.DefaultPath))
	status := d.lib.OpenDialogMultiple(filter, defaultPath, &set)
	done()

	o := multiOutcome{status: status}
	switch status {
	case native.StatusOkay:
		if set != nil {
			o.set = newOwnedPathSet(d.lib, set)
		}
	case native.StatusError:
		// Must be the next native call after the failure: any other call
		// overwrites the library's error slot.
		o.errMsg = native.GoString(d.lib.GetError())
	}
	return o
}

func (d *Dialog) decodeSingle(o singleOutcome) (Response, error) {
	switch o.status {
	case native.StatusOkay:
		if o.path == nil {
			return Response{}, nativeError("native library reported success without a path")
		}
		defer o.path.release()
		return Response{Kind: Okay, Path: o.path.copyString()}, nil
	case native.StatusCancel:
		return Response{Kind: Cancel}, nil
	case native.StatusError:
		log.Printf("[nfd] Dialog failed: %s", o.errMsg)
		return Response{}, nativeError(o.errMsg)
	}
	return Response{}, nativeError(fmt.Sprintf("unexpected native status %d", o.status))
}

func (d *Dialog) decodeMultiple(o multiOutcome) (Response, error) {
	switch o.status {
	case native.StatusOkay:
		if o.set == nil {
			return Response{}, nativeError("native library reported success without a path set")
		}
		defer o.set.release()
		return Response{Kind: OkayMultiple, Paths: o.set.copyAll()}, nil
	case native.StatusCancel:
		return Response{Kind: Cancel}, nil
	case native.StatusError:
		log.Printf("[nfd] Dialog failed: %s", o.errMsg)
		return Response{}, nativeError(o.errMsg)
	}
	return Response{}, nativeError(fmt.Sprintf("unexpected native status %d", o.status))
}

func enter(mode Mode) (leave func()) {
	if n := inflight.Add(1); n > 1 {
		log.Printf("[nfd] Warning: %s dialog opened on g=%d while %d other dialog call(s) are in flight; concurrent dialogs are undefined",
			mode, logging.GoroutineID(), n-1)
	}
	return func() { inflight.Add(-1) }
}

func describe(s *string) string {
	if s == nil {
		return "<none>"
	}
	return strconv.Quote(*s)
}
