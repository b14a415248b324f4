package codec

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	c, ok := ByName("json")
	require.True(t, ok)
	assert.Equal(t, "json", c.Name())

	_, ok = ByName("msgpack")
	assert.False(t, ok)
}

func TestJSONRoundTrip(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	data, err := JSON{}.Marshal(payload{Name: "a", Count: 3})
	require.NoError(t, err)

	var got payload
	require.NoError(t, JSON{}.Unmarshal(data, &got))
	assert.Equal(t, payload{Name: "a", Count: 3}, got)
}

func TestCompressionRoundTrip(t *testing.T) {
	input := bytes.Repeat([]byte("mapper graph payload "), 256)

	for _, c := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
		t.Run(c.String(), func(t *testing.T) {
			var buf bytes.Buffer
			w, err := NewWriter(&buf, c)
			require.NoError(t, err)
			_, err = w.Write(input)
			require.NoError(t, err)
			require.NoError(t, w.Close())

			r, err := NewReader(&buf, c)
			require.NoError(t, err)
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			require.NoError(t, r.Close())

			assert.Equal(t, input, got)
		})
	}
}

func TestCompressionUnknown(t *testing.T) {
	assert.Equal(t, "Unknown(9)", Compression(9).String())

	_, err := NewWriter(io.Discard, Compression(9))
	require.Error(t, err)
	_, err = NewReader(bytes.NewReader(nil), Compression(9))
	require.Error(t, err)
}
