package services

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
)

const (
	// MaxUploadDimension bounds the longer side of images sent to the model.
	MaxUploadDimension = 1024
	uploadJPEGQuality  = 85
)

// PrepareUploadImage shrinks photos larger than MaxUploadDimension and
// re-encodes them as JPEG. Images it cannot decode, and images already small
// enough, are returned untouched with mimeType, or the sniffed type when
// mimeType is empty.
func PrepareUploadImage(data []byte, mimeType string) ([]byte, string) {
	original := mimeType
	if original == "" {
		original = imageMIMEType(data)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || (cfg.Width <= MaxUploadDimension && cfg.Height <= MaxUploadDimension) {
		return data, original
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return data, original
	}
	resized := imaging.Fit(img, MaxUploadDimension, MaxUploadDimension, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(uploadJPEGQuality)); err != nil {
		return data, original
	}
	return buf.Bytes(), "image/jpeg"
}
