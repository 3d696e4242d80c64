package pdf

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"

	"codeberg.org/go-pdf/fpdf"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	// Register a broad set of image decoders so image.Decode can handle
	// any logo format the resource loader accepts.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	_ "image/gif"
	_ "image/jpeg"
)

// SVGRasterWidth is the pixel width SVG logos are rasterised at
const SVGRasterWidth = 600

// ErrEmptyLogo is returned for logo data without pixels
var ErrEmptyLogo = errors.New("logo has no area")

// Logo is a decoded logo, re-encoded as PNG for embedding
type Logo struct {
	name   string
	png    []byte
	width  int
	height int
}

// Size returns the pixel dimensions
func (l *Logo) Size() (int, int) {
	return l.width, l.height
}

// WidthFor returns the width that keeps the aspect ratio at height h
func (l *Logo) WidthFor(h float64) float64 {
	return h * float64(l.width) / float64(l.height)
}

func (l *Logo) register(pdf *fpdf.Fpdf) {
	pdf.RegisterImageOptionsReader(l.name, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(l.png))
}

// DecodeLogo decodes PNG, JPEG, GIF, BMP, TIFF, WebP or SVG data. mime may
// be empty; SVG is then detected from the content.
func DecodeLogo(data []byte, mime string) (*Logo, error) {
	var (
		img image.Image
		err error
	)
	if mime == "image/svg+xml" || (mime == "" && looksLikeSVG(data)) {
		img, err = rasterizeSVG(data, SVGRasterWidth)
	} else {
		img, _, err = image.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode logo: %w", err)
	}

	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, ErrEmptyLogo
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode logo: %w", err)
	}
	sum := sha256.Sum256(buf.Bytes())
	return &Logo{
		name:   "logo-" + hex.EncodeToString(sum[:8]),
		png:    buf.Bytes(),
		width:  b.Dx(),
		height: b.Dy(),
	}, nil
}

func looksLikeSVG(data []byte) bool {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	return strings.Contains(strings.ToLower(string(head)), "<svg")
}

// rasterizeSVG draws the icon into an RGBA image width pixels wide
func rasterizeSVG(data []byte, width int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.WarnErrorMode)
	if err != nil {
		return nil, err
	}
	vb := icon.ViewBox
	if vb.W <= 0 || vb.H <= 0 {
		return nil, ErrEmptyLogo
	}

	w := width
	h := int(float64(width) * vb.H / vb.W)
	if h < 1 {
		h = 1
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)
	return img, nil
}
