package stream

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"math"

	"github.com/calebcase/microns"
)

// Decoder reads Microns values from a delta encoded stream produced by
// Encoder.
type Decoder struct {
	r    io.ByteReader
	prev microns.Microns
	err  error
}

// NewDecoder returns a new decoder reading from r. If r is not already an
// io.ByteReader it is wrapped in a bufio.Reader, so r should not be read
// from elsewhere afterward.
func NewDecoder(r io.Reader) *Decoder {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}

	return &Decoder{
		r: br,
	}
}

// Decode reads the next value from the stream. It returns io.EOF when the
// stream ends at a value boundary. A stream that ends inside a varint
// returns an error wrapping io.ErrUnexpectedEOF.
//
// Once Decode returns an error it returns the same error for every
// subsequent call.
func (d *Decoder) Decode() (m microns.Microns, err error) {
	if d.err != nil {
		return 0, d.err
	}

	u, err := binary.ReadUvarint(d.r)
	if err != nil {
		if errors.Is(err, io.EOF) {
			d.err = io.EOF

			return 0, io.EOF
		}

		d.err = Error.Wrap(err)

		return 0, d.err
	}

	if u > math.MaxUint32 {
		d.err = Error.New("varint overflow: %d", u)

		return 0, d.err
	}

	d.prev += microns.Microns(unzigzag(uint32(u)))

	return d.prev, nil
}

// DecodeAll reads values until the end of the stream.
func (d *Decoder) DecodeAll() (ms []microns.Microns, err error) {
	for {
		m, err := d.Decode()
		if errors.Is(err, io.EOF) {
			return ms, nil
		}
		if err != nil {
			return nil, err
		}

		ms = append(ms, m)
	}
}
