package audio

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
)

func TestSink_WithoutContext(t *testing.T) {
	fsys := fstest.MapFS{
		"jump.wav": {Data: []byte("RIFF")},
	}
	s := NewSink(nil, fsys, 0.5)

	assert.NotPanics(t, func() {
		s.Play("jump.wav", false)
		s.Play("missing.ogg", true)
		s.Play("", false)
		s.StopAll()
	})

	assert.True(t, s.Failed("jump.wav"))
	assert.True(t, s.Failed("missing.ogg"))
	assert.False(t, s.Failed(""))
	assert.NoError(t, s.Close())
}

func TestDecode_Unsupported(t *testing.T) {
	_, _, err := decode("theme.mp3", bytes.NewReader(nil))
	assert.ErrorIs(t, err, errUnsupported)

	_, _, err = decode("broken.wav", bytes.NewReader([]byte("nope")))
	assert.Error(t, err)
}
