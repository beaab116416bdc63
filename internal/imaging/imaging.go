/*
Copyright © 2025 changheonshin
*/
package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
	"github.com/spf13/afero"
)

// Image carries the raw bytes of an image file plus the MIME subtype
// derived from its extension ("jpeg", "png", ...), which vision
// providers need when attaching the payload to a request.
type Image struct {
	Data     []byte
	MIMEType string
}

var mimeByExt = map[string]string{
	".jpg":  "jpeg",
	".jpeg": "jpeg",
	".png":  "png",
	".gif":  "gif",
	".bmp":  "bmp",
	".webp": "webp",
}

// IsSupported reports whether path carries a recognized image extension.
// The check is case-insensitive.
func IsSupported(path string) bool {
	_, ok := mimeByExt[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Load reads an image file and tags it with its MIME subtype.
func Load(fs afero.Fs, path string) (Image, error) {
	mimeType, ok := mimeByExt[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return Image{}, fmt.Errorf("unsupported image extension: %s", filepath.Ext(path))
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Image{}, fmt.Errorf("failed to read image %s: %w", path, err)
	}

	return Image{Data: data, MIMEType: mimeType}, nil
}

// Downscale resizes the image to at most maxWidth pixels wide before it
// is uploaded, preserving aspect ratio and re-encoding as JPEG. Images
// already within bounds come back untouched. Formats the standard
// decoders cannot handle (bmp, webp) pass through unchanged as well;
// the provider receives the original bytes.
func Downscale(img Image, maxWidth uint) (Image, error) {
	if maxWidth == 0 {
		return img, nil
	}

	decoded, _, err := image.Decode(bytes.NewReader(img.Data))
	if err != nil {
		return img, nil
	}

	width := decoded.Bounds().Dx()
	height := decoded.Bounds().Dy()
	if width < 1 || height < 1 {
		return Image{}, fmt.Errorf("invalid image dimensions: %dx%d", width, height)
	}
	if uint(width) <= maxWidth {
		return img, nil
	}

	resized := resize.Resize(
		maxWidth,
		uint(float64(height)*(float64(maxWidth)/float64(width))),
		decoded,
		resize.Lanczos3,
	)

	buf := bytes.NewBuffer(nil)
	if err := jpeg.Encode(buf, resized, nil); err != nil {
		return Image{}, fmt.Errorf("failed to encode downscaled image: %w", err)
	}
	return Image{Data: buf.Bytes(), MIMEType: "jpeg"}, nil
}
