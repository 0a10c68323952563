//go:build windows || darwin

package native

import (
	"errors"

	"github.com/sqweek/dialog"
)

func init() {
	register("sqweek", 20, func() (Library, error) {
		return newHostLibrary("sqweek", sqweekPicker{multiple: zenityPicker{}.pickFiles}), nil
	})
}

// sqweekPicker drives the OS dialogs through github.com/sqweek/dialog.
// That library has no multiple-selection mode, so multiple selection goes
// to zenity, which uses the native dialogs on Windows and macOS too.
type sqweekPicker struct {
	multiple func(filters []FilterGroup, defaultPath string) ([]string, error)
}

func (sqweekPicker) pickFile(filters []FilterGroup, defaultPath string) (string, error) {
	path, err := sqweekBuilder(filters, defaultPath).Load()
	return path, sqweekErr(err)
}

func (p sqweekPicker) pickFiles(filters []FilterGroup, defaultPath string) ([]string, error) {
	return p.multiple(filters, defaultPath)
}

func (sqweekPicker) pickSave(filters []FilterGroup, defaultPath string) (string, error) {
	path, err := sqweekBuilder(filters, defaultPath).Save()
	return path, sqweekErr(err)
}

func sqweekBuilder(filters []FilterGroup, defaultPath string) *dialog.FileBuilder {
	b := dialog.File()
	for _, g := range filters {
		b = b.Filter(g.Name, g.Extensions...)
	}
	if defaultPath != "" {
		b = b.SetStartDir(defaultPath)
	}
	return b
}

func sqweekErr(err error) error {
	if errors.Is(err, dialog.ErrCancelled) {
		return errCanceled
	}
	return err
}
