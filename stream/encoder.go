package stream

import (
	"encoding/binary"
	"io"

	"github.com/calebcase/microns"
)

// Encoder writes Microns values to a stream as delta encoded zigzag
// varints.
type Encoder struct {
	w    io.Writer
	prev microns.Microns
	buf  [binary.MaxVarintLen32]byte
}

// NewEncoder returns a new encoder writing to w. The first encoded value
// is a delta from zero.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w: w,
	}
}

// Encode writes a single value to the stream.
func (e *Encoder) Encode(m microns.Microns) (err error) {
	// Wrapping int32 subtraction: the decoder's wrapping add undoes it
	// for any pair of values.
	delta := int32(m - e.prev)

	n := binary.PutUvarint(e.buf[:], uint64(zigzag(delta)))

	_, err = e.w.Write(e.buf[:n])
	if err != nil {
		return Error.Wrap(err)
	}

	e.prev = m

	return nil
}

// EncodeAll writes each value of ms to the stream in order.
func (e *Encoder) EncodeAll(ms []microns.Microns) (err error) {
	for _, m := range ms {
		err = e.Encode(m)
		if err != nil {
			return err
		}
	}

	return nil
}
