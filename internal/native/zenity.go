package native

import (
	"errors"

	"github.com/ncruces/zenity"
)

func init() {
	register("zenity", 10, func() (Library, error) {
		if !zenity.IsAvailable() {
			return nil, errors.New("zenity is not available on this system")
		}
		return newHostLibrary("zenity", zenityPicker{}), nil
	})
}

type zenityPicker struct{}

func (zenityPicker) pickFile(filters []FilterGroup, defaultPath string) (string, error) {
	path, err := zenity.SelectFile(zenityOptions(filters, defaultPath)...)
	return path, zenityErr(err)
}

func (zenityPicker) pickFiles(filters []FilterGroup, defaultPath string) ([]string, error) {
	paths, err := zenity.SelectFileMultiple(zenityOptions(filters, defaultPath)...)
	return paths, zenityErr(err)
}

func (zenityPicker) pickSave(filters []FilterGroup, defaultPath string) (string, error) {
	opts := append(zenityOptions(filters, defaultPath), zenity.ConfirmOverwrite())
	path, err := zenity.SelectFileSave(opts...)
	return path, zenityErr(err)
}

func zenityOptions(filters []FilterGroup, defaultPath string) []zenity.Option {
	var opts []zenity.Option
	if defaultPath != "" {
		opts = append(opts, zenity.Filename(defaultPath))
	}
	if len(filters) > 0 {
		ff := make(zenity.FileFilters, 0, len(filters))
		for _, g := range filters {
			ff = append(ff, zenity.FileFilter{Name: g.Name, Patterns: g.Patterns(), CaseFold: true})
		}
		opts = append(opts, ff)
	}
	return opts
}

func zenityErr(err error) error {
	if errors.Is(err, zenity.ErrCanceled) {
		return errCanceled
	}
	return err
}
