package model

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// ErrInvalidDataURL indicates a string that is not a base64 image data URL.
var ErrInvalidDataURL = errors.New("model: invalid image data URL")

// ParseDataURL decodes a data:image/...;base64,... string into an
// ImageBlock, reading the natural pixel size from the image header.
func ParseDataURL(dataURL string) (*ImageBlock, error) {
	const scheme = "data:"
	if !strings.HasPrefix(dataURL, scheme) {
		return nil, ErrInvalidDataURL
	}
	meta, payload, found := strings.Cut(dataURL[len(scheme):], ",")
	if !found {
		return nil, ErrInvalidDataURL
	}
	mime, enc, _ := strings.Cut(meta, ";")
	if enc != "base64" {
		return nil, fmt.Errorf("%w: unsupported encoding %q", ErrInvalidDataURL, enc)
	}
	if !strings.HasPrefix(mime, "image/") {
		return nil, fmt.Errorf("%w: unsupported media type %q", ErrInvalidDataURL, mime)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataURL, err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image header: %w", err)
	}

	return &ImageBlock{
		Data:   data,
		MIME:   mime,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}
