package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

const (
	// MaxUploadBytes is the threshold above which a source image is
	// resized and re-encoded before multipart upload. Smaller files
	// pass through untouched.
	MaxUploadBytes = 1 << 20 // 1 MB

	// maxEdge caps the longest edge of a compressed image
	maxEdge = 1280

	// jpegQuality is the re-encode quality for compressed images
	jpegQuality = 80
)

// Prepare returns the bytes to upload and their content type. Sources
// at or under 1 MB are returned as-is; larger ones are downscaled to
// maxEdge on the longest side and re-encoded as JPEG.
func Prepare(data []byte) ([]byte, string, error) {
	if len(data) <= MaxUploadBytes {
		return data, sniffContentType(data), nil
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}

	resized := downscale(src)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, "", fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), "image/jpeg", nil
}

// downscale scales the image so its longest edge is at most maxEdge,
// preserving aspect ratio. Images already within bounds are returned
// unchanged.
func downscale(src image.Image) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxEdge && h <= maxEdge {
		return src
	}

	var nw, nh int
	if w >= h {
		nw = maxEdge
		nh = h * maxEdge / w
	} else {
		nh = maxEdge
		nw = w * maxEdge / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}

// sniffContentType guesses from magic bytes, defaulting to JPEG
func sniffContentType(data []byte) string {
	switch {
	case len(data) >= 8 && bytes.Equal(data[:8], []byte("\x89PNG\r\n\x1a\n")):
		return "image/png"
	case len(data) >= 6 && (bytes.Equal(data[:6], []byte("GIF87a")) || bytes.Equal(data[:6], []byte("GIF89a"))):
		return "image/gif"
	default:
		return "image/jpeg"
	}
}
