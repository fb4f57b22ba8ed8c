package translate

import "github.com/ardnew/ucfg/lang"

// Predefined errors. Like the errors of package lang they carry
// structured attributes and match with [errors.Is] when derived.
var (
	ErrUnknownFormat = lang.NewError("unknown output format")
	ErrEncode        = lang.NewError("encode output")
	ErrWriteOutput   = lang.NewError("write output file")
)
