package nfd

import (
	"strings"

	"github.com/mmilitzer/nfd-go/internal/native"
)

// Request holds the optional inputs of a dialog. A nil field is omitted
// and the native library uses its own default.
type Request struct {
	Filter      *string // filter list, e.g. "png,jpg;pdf"
	DefaultPath *string // starting directory
}

// encodedRequest owns the NUL-terminated buffers handed to the native
// call. It must stay reachable until the call returns.
type encodedRequest struct {
	filter      []byte
	defaultPath []byte
}

// encode validates and converts both inputs. It either succeeds for both or
// fails without producing anything.
func encode(req Request) (*encodedRequest, error) {
	filter, err := encodeOptional("filter", req.Filter)
	if err != nil {
		return nil, err
	}
	defaultPath, err := encodeOptional("default path", req.DefaultPath)
	if err != nil {
		return nil, err
	}
	return &encodedRequest{filter: filter, defaultPath: defaultPath}, nil
}

func encodeOptional(field string, s *string) ([]byte, error) {
	if s == nil {
		return nil, nil
	}
	if i := strings.IndexByte(*s, 0); i >= 0 {
		return nil, encodingError(field, i)
	}
	return native.NulTerminated(*s), nil
}

// pointers returns the addresses passed to the native call; nil for an
// omitted input.
func (e *encodedRequest) pointers() (filter, defaultPath *byte) {
	return native.BytePtr(e.filter), native.BytePtr(e.defaultPath)
}
