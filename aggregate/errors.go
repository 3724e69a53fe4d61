package aggregate

import "errors"

// ErrUnknownMode is returned by [ParseExtremesMode] for an unrecognised mode name.
var ErrUnknownMode = errors.New("aggregate: unknown extremes mode")
