package widget

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	previewMaxWidth = 320
	previewQuality  = 80
	// MaxImageSize bounds accepted uploads.
	MaxImageSize = 10 << 20
	// MaxImagePixels bounds the decoded size of an upload (width * height).
	MaxImagePixels = 40_000_000
)

// ErrNotImage is returned when a picked file is not an image.
var ErrNotImage = errors.New("widget: file is not an image")

// ErrImageTooLarge is returned for files above MaxImageSize.
var ErrImageTooLarge = errors.New("widget: image exceeds 10MB")

// ErrImageDimensions is returned for images above MaxImagePixels.
var ErrImageDimensions = errors.New("widget: image dimensions too large")

// File is a file picked in the browser.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// ImageUpload previews a picked image before it is submitted with its form.
type ImageUpload struct {
	Name  string
	Label string
	// Current is the URL of the image already stored, shown until replaced.
	Current  string
	Preview  string
	Disabled bool

	OnChange func(File)
	OnRemove func()
}

// Shown returns the image to display: the new preview, else the stored image.
func (u *ImageUpload) Shown() string {
	if u.Preview != "" {
		return u.Preview
	}
	return u.Current
}

// Select accepts f if both its declared type and its content are an image.
// Rejected files leave the widget untouched and OnChange is not called.
func (u *ImageUpload) Select(f File) error {
	detected, err := Check(f)
	if err != nil {
		return err
	}
	preview, err := thumbnail(f.Data)
	if err != nil {
		// Formats the decoders don't know (SVG, HEIC) are previewed as-is.
		preview = dataURL(detected, f.Data)
	}
	u.Preview = preview
	if u.OnChange != nil {
		u.OnChange(f)
	}
	return nil
}

// Check validates f as an image upload and returns its sniffed content type.
func Check(f File) (string, error) {
	if len(f.Data) > MaxImageSize {
		return "", ErrImageTooLarge
	}
	if !strings.HasPrefix(f.ContentType, "image/") {
		return "", ErrNotImage
	}
	detected := mimetype.Detect(f.Data).String()
	if !strings.HasPrefix(detected, "image/") {
		return "", ErrNotImage
	}
	// Only the header is read. Formats without a registered decoder pass.
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(f.Data)); err == nil {
		if int64(cfg.Width)*int64(cfg.Height) > MaxImagePixels {
			return "", ErrImageDimensions
		}
	}
	return detected, nil
}

// Remove clears the preview and the stored image.
func (u *ImageUpload) Remove() {
	u.Preview = ""
	u.Current = ""
	if u.OnRemove != nil {
		u.OnRemove()
	}
}

// thumbnail scales data down to previewMaxWidth and returns it as a JPEG
// data URL.
func thumbnail(data []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > previewMaxWidth {
		newH := max(h*previewMaxWidth/w, 1)
		dst := image.NewRGBA(image.Rect(0, 0, previewMaxWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: previewQuality}); err != nil {
		return "", fmt.Errorf("encode jpeg: %w", err)
	}
	return dataURL("image/jpeg", buf.Bytes()), nil
}

func dataURL(contentType string, data []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
