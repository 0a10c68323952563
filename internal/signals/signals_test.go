//go:build !windows

package signals

import (
	"os"
	"syscall"
	"testing"
	"time"
)

func TestOnInterruptDeliversSignal(t *testing.T) {
	got := make(chan os.Signal, 1)
	stop := OnInterrupt(func(sig os.Signal) { got <- sig })
	defer stop()

	if err := syscall.Kill(os.Getpid(), syscall.SIGTERM); err != nil {
		t.Fatalf("Failed to send SIGTERM: %v", err)
	}

	select {
	case sig := <-got:
		if sig != syscall.SIGTERM {
			t.Errorf("Expected SIGTERM, got %v", sig)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for signal handler")
	}
}
