// Package stream encodes sequences of microns.Microns values as a compact
// binary stream.
//
// Toolpath coordinate streams are long runs of nearby values: successive
// points on a path differ by a handful of microns. The stream format
// therefore encodes each value as the difference from the previous one,
// zigzag mapped and written as an unsigned varint.
//
// Encoding
//
// The first value is encoded as a delta from zero. Each delta is computed
// with wrapping int32 subtraction, so decoding reconstructs every input
// sequence exactly, including ones that cross the int32 range.
//
// The zigzag mapping interleaves signed values into unsigned ones so that
// small magnitudes of either sign stay small on the wire:
//
//  |  Delta | Encoded |
//  |--------|---------|
//  |      0 |       0 |
//  |     -1 |       1 |
//  |      1 |       2 |
//  |     -2 |       3 |
//  |      2 |       4 |
//
// The encoded value is then written with the standard base-128 varint
// scheme, one to five bytes per value. A delta within ±63 microns costs a
// single byte, which covers nearly every step in a typical toolpath.
//
// There is no framing and no header: the stream is just the concatenated
// varints, and the value count is implied by the stream length. A reader
// that needs framing can wrap the stream in its own container.
package stream
