package utils

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// EncodeImageDataURI converts raw image bytes into a "data:<mime>;base64,…"
// URI, the transportable form held by the capture workflow.
func EncodeImageDataURI(data []byte, mimeType string) string {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}

// SplitImageDataURI breaks a data URI into its content type and raw base64
// payload. A bare base64 string (no data: header) is accepted as-is and
// assumed to be JPEG.
func SplitImageDataURI(uri string) (contentType, payload string, err error) {
	if !strings.HasPrefix(uri, "data:") {
		return "image/jpeg", uri, nil
	}
	parts := strings.SplitN(uri, ",", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid base64 image")
	}
	meta := strings.TrimPrefix(parts[0], "data:") // "image/jpeg;base64"
	contentType = strings.SplitN(meta, ";", 2)[0]
	if contentType == "" {
		contentType = "image/jpeg"
	}
	return contentType, parts[1], nil
}

// DecodeImageDataURI returns the decoded bytes and content type of a data URI.
func DecodeImageDataURI(uri string) ([]byte, string, error) {
	contentType, payload, err := SplitImageDataURI(uri)
	if err != nil {
		return nil, "", err
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %v", err)
	}
	return data, contentType, nil
}
