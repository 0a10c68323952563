package nfd

import "runtime"

// Result is the outcome of a dialog started with Builder.Start.
type Result struct {
	Response Response
	Err      error
}

// Start runs the dialog on a dedicated goroutine locked to its OS thread
// and returns a channel that receives exactly one Result and is then
// closed. The dialog itself still cannot be cancelled; only the caller
// stops waiting.
func (b *Builder) Start(mode Mode) <-chan Result {
	job := &Builder{dialog: b.dialog, req: b.req}
	ch := make(chan Result, 1)

	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		defer close(ch)

		resp, err := job.run(mode)
		ch <- Result{Response: resp, Err: err}
	}()

	return ch
}
