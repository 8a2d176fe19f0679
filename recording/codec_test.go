package recording

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalRoundTrip(t *testing.T) {
	rec := Record(sampleFrame(t))

	data, err := Marshal(rec)
	require.NoError(t, err)
	assert.Equal(t, Magic, string(data[:4]))
	assert.Equal(t, Version, data[4])

	got, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, rec.FrameID, got.FrameID)
	assert.Equal(t, rec.Width, got.Width)
	assert.Equal(t, rec.Height, got.Height)
	assert.Equal(t, rec.View, got.View)
	assert.Equal(t, rec.Stats, got.Stats)
	assert.Equal(t, rec.Colors, got.Colors)
	require.Len(t, got.Commands, len(rec.Commands))
	for i := range rec.Commands {
		assert.Equal(t, rec.Commands[i], got.Commands[i], "command %d", i)
	}

	spy := &spyBackend{}
	require.NoError(t, got.Playback(spy))
	assert.Len(t, spy.drawn, rec.Len())
}

func TestDecodeRejectsBadInput(t *testing.T) {
	_, err := Unmarshal([]byte("NOPE\x01\x80"))
	assert.ErrorIs(t, err, ErrBadMagic)

	_, err = Unmarshal([]byte(Magic + "\x09\x80"))
	assert.ErrorIs(t, err, ErrUnsupportedVersion)

	_, err = Unmarshal([]byte(Magic + "\x00"))
	assert.ErrorIs(t, err, ErrUnsupportedVersion)

	_, err = Unmarshal([]byte("DX"))
	assert.Error(t, err)

	_, err = Unmarshal([]byte(Magic + "\x01\xc1"))
	assert.Error(t, err)
}

func TestEncodeNil(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Encode(&buf, nil))
	assert.Zero(t, buf.Len())
}
