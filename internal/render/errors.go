package render

import "errors"

// ErrUnknownFormat is returned for a format other than [FormatTS] or
// [FormatJSON].
var ErrUnknownFormat = errors.New("unknown render format")
