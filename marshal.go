package microns

import (
	"encoding/binary"
	"strconv"
)

// MarshalBinary implements encoding.BinaryMarshaler. The encoding is the
// raw int32 as 4 big-endian two's-complement bytes.
func (m Microns) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 4)
	binary.BigEndian.PutUint32(data, uint32(m))

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (m *Microns) UnmarshalBinary(data []byte) (err error) {
	if len(data) != 4 {
		return Error.New("invalid length: %d", len(data))
	}

	*m = Microns(binary.BigEndian.Uint32(data))

	return nil
}

// MarshalJSON implements json.Marshaler. The encoding is the bare raw
// integer, not an object.
func (m Microns) MarshalJSON() (data []byte, err error) {
	return strconv.AppendInt(nil, int64(m), 10), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Microns) UnmarshalJSON(data []byte) (err error) {
	raw, err := strconv.ParseInt(string(data), 10, 32)
	if err != nil {
		return Error.New("invalid raw value: %q", string(data))
	}

	*m = Microns(raw)

	return nil
}

// MarshalText implements encoding.TextMarshaler using the String form.
func (m Microns) MarshalText() (text []byte, err error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (m *Microns) UnmarshalText(text []byte) (err error) {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}

	*m = v

	return nil
}
