package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageDataURIRoundTrip(t *testing.T) {
	raw := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10}

	uri := EncodeImageDataURI(raw, "image/jpeg")
	assert.Contains(t, uri, "data:image/jpeg;base64,")

	decoded, contentType, err := DecodeImageDataURI(uri)
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)
	assert.Equal(t, "image/jpeg", contentType)
}

func TestSplitImageDataURIBarePayload(t *testing.T) {
	contentType, payload, err := SplitImageDataURI("aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", contentType)
	assert.Equal(t, "aGVsbG8=", payload)
}

func TestDecodeImageDataURIInvalid(t *testing.T) {
	_, _, err := DecodeImageDataURI("data:image/png;base64,!!not-base64!!")
	assert.Error(t, err)
}
