package logging

import (
	"bytes"
	"fmt"
	"log"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"
)

var traceEnabled atomic.Bool

// EnableTrace turns native call tracing on or off.
func EnableTrace(on bool) {
	traceEnabled.Store(on)
}

// TraceEnabled reports whether native call tracing is on.
func TraceEnabled() bool {
	return traceEnabled.Load()
}

// Trace logs entry into a native call and returns a func that logs the exit
// with its duration. Dialog calls block on the user, so the duration is
// mostly time spent with the dialog open.
//
// Usage:
//
//	defer Trace("OpenDialog", "filter=%q", filter)()
//
// logs
//
//	[native] OpenDialog ENTER g=1 filter="png"
//	[native] OpenDialog EXIT  g=1 dur=3.2s
func Trace(op string, format string, args ...any) func() {
	if !traceEnabled.Load() {
		return func() {}
	}

	t0 := time.Now()
	gid := GoroutineID()
	log.Printf("[native] %s ENTER g=%d %s", op, gid, fmt.Sprintf(format, args...))
	return func() {
		log.Printf("[native] %s EXIT  g=%d dur=%v", op, gid, time.Since(t0))
	}
}

// GoroutineID returns the ID of the calling goroutine, parsed from the
// "goroutine N [...]" header of its stack trace. Only for log output.
func GoroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	id, _ := strconv.ParseUint(string(b), 10, 64)
	return id
}
