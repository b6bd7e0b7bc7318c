package microns_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/microns"
)

func TestMarshalBinary(t *testing.T) {
	data, err := microns.Microns(1).MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x01}, data)

	data, err = microns.Microns(-1).MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, data)

	var m microns.Microns

	err = m.UnmarshalBinary([]byte{0x80, 0x00, 0x00, 0x00})
	require.NoError(t, err)
	require.Equal(t, microns.Min, m)

	err = m.UnmarshalBinary([]byte{0x00})
	require.Error(t, err)

	err = m.UnmarshalBinary(nil)
	require.Error(t, err)
}

func TestMarshalJSON(t *testing.T) {
	// The serialized form is the bare raw integer.
	data, err := json.Marshal(microns.Microns(-1500))
	require.NoError(t, err)
	require.Equal(t, "-1500", string(data))

	var m microns.Microns

	err = json.Unmarshal([]byte("1500"), &m)
	require.NoError(t, err)
	require.Equal(t, microns.Microns(1500), m)

	// Out of int32 range and non-numeric forms are rejected.
	require.Error(t, json.Unmarshal([]byte("2147483648"), &m))
	require.Error(t, json.Unmarshal([]byte(`"1500"`), &m))
	require.Error(t, json.Unmarshal([]byte("1.5"), &m))
}

func TestMarshalJSONStruct(t *testing.T) {
	type Point struct {
		X microns.Microns `json:"x"`
		Y microns.Microns `json:"y"`
	}

	data, err := json.Marshal(Point{X: 1, Y: -2})
	require.NoError(t, err)
	require.JSONEq(t, `{"x": 1, "y": -2}`, string(data))

	var p Point

	err = json.Unmarshal(data, &p)
	require.NoError(t, err)
	require.Equal(t, Point{X: 1, Y: -2}, p)
}

func TestMarshalText(t *testing.T) {
	text, err := microns.Microns(1500).MarshalText()
	require.NoError(t, err)
	require.Equal(t, "1.500", string(text))

	var m microns.Microns

	err = m.UnmarshalText([]byte("-0.001"))
	require.NoError(t, err)
	require.Equal(t, microns.Microns(-1), m)

	err = m.UnmarshalText([]byte("0.0001"))
	require.Error(t, err)
}
