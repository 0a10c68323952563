package native

import (
	"errors"
	"strings"
	"testing"
)

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open("does-not-exist")
	if err == nil {
		t.Fatal("Expected error for unknown backend")
	}
	if !strings.Contains(err.Error(), "does-not-exist") {
		t.Errorf("Expected backend name in error, got %v", err)
	}
}

func TestOpenBackendFailureIsWrapped(t *testing.T) {
	cause := errors.New("no display")
	register("test-broken", -100, func() (Library, error) {
		return nil, cause
	})
	defer func() {
		registryMu.Lock()
		delete(backends, "test-broken")
		registryMu.Unlock()
	}()

	_, err := Open("test-broken")
	if !errors.Is(err, cause) {
		t.Errorf("Expected wrapped cause, got %v", err)
	}
}

func TestBackendsOrderedByPriority(t *testing.T) {
	register("test-low", -200, func() (Library, error) { return nil, errors.New("unused") })
	register("test-high", 1000, func() (Library, error) {
		return newHostLibrary("test-high", &stubPicker{}), nil
	})
	defer func() {
		registryMu.Lock()
		delete(backends, "test-low")
		delete(backends, "test-high")
		registryMu.Unlock()
	}()

	names := Backends()
	if names[0] != "test-high" {
		t.Errorf("Expected test-high first, got %v", names)
	}
	if names[len(names)-1] != "test-low" {
		t.Errorf("Expected test-low last, got %v", names)
	}

	lib, err := Open("auto")
	if err != nil {
		t.Fatalf("Open(auto) failed: %v", err)
	}
	if h, ok := lib.(*hostLibrary); !ok || h.name != "test-high" {
		t.Errorf("Expected test-high backend, got %#v", lib)
	}
}
