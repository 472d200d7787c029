package model

import "errors"

// ErrUnsupportedRecord is returned by stores for record variants they cannot persist.
var ErrUnsupportedRecord = errors.New("unsupported record")
