package geometry

import "errors"

// Sentinel kinds for geometry errors.
var (
	ErrParse = errors.New("diagram parse failed")
)
