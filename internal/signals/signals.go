// Package signals handles termination signals for the command-line tools.
//
// A native dialog cannot be interrupted from Go: the goroutine that opened
// it stays inside the library until the user closes the window. Handlers
// installed here run on their own goroutine and usually exit the process.
package signals

import (
	"log"
	"os"
	"os/signal"
	"syscall"
)

// OnInterrupt calls fn with the first SIGINT or SIGTERM received.
// The returned stop func uninstalls the handler.
func OnInterrupt(fn func(sig os.Signal)) (stop func()) {
	sigChan := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			log.Printf("[signals] Received signal: %v", sig)
			if fn != nil {
				fn(sig)
			}
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigChan)
		close(done)
	}
}
