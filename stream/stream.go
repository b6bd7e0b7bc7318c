package stream

import "github.com/zeebo/errs"

// Error is the class of all errors returned by this package.
var Error = errs.Class("microns: stream")

// zigzag maps a signed delta to an unsigned value, interleaving signs so
// that small magnitudes encode small.
func zigzag(v int32) uint32 {
	return (uint32(v) << 1) ^ uint32(v>>31)
}

// unzigzag reverses zigzag.
func unzigzag(u uint32) int32 {
	return int32(u>>1) ^ -int32(u&1)
}
