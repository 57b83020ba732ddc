package icon

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	// Icon sources: DDS is the engine's native format, PNG/JPEG/TGA show
	// up in the wild. Blank imports register the decoders.
	_ "image/jpeg"

	_ "github.com/ftrvxmtrx/tga"
	_ "github.com/lukegb/dds"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"
)

// Output formats for re-encoded icons.
const (
	FormatPNG  = "png"
	FormatWebP = "webp"
)

// MediaType returns the data-URI media type for an output format.
func MediaType(format string) string {
	if format == FormatWebP {
		return "image/webp"
	}
	return "image/png"
}

// Convert decodes raw icon bytes, scales them to a size×size square and
// re-encodes them in the given output format.
func Convert(raw []byte, size int, format string) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("icon: decode: %w", err)
	}

	scaled := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)

	var buf bytes.Buffer
	switch format {
	case FormatWebP:
		if err := nativewebp.Encode(&buf, scaled, nil); err != nil {
			return nil, fmt.Errorf("icon: webp encode: %w", err)
		}
	default:
		if err := png.Encode(&buf, scaled); err != nil {
			return nil, fmt.Errorf("icon: png encode: %w", err)
		}
	}
	return buf.Bytes(), nil
}
