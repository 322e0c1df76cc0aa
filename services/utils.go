package services

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"
)

func GetEnv(key, fallback string) string {
	value := os.Getenv(key)
	if len(value) == 0 {
		return fallback
	}
	return value
}

func StrPointer(str string) *string {
	if str == "" {
		return nil
	}
	return &str
}

func Float64Pointer(f float64) *float64 {
	return &f
}

func IntPointer(i int) *int {
	return &i
}

func floatPointer(f float32) *float32 {
	return &f
}

// DecodeImageBase64 accepts raw base64 or a data URL ("data:image/png;base64,...").
func DecodeImageBase64(encoded string) ([]byte, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return nil, nil
	}
	if strings.HasPrefix(encoded, "data:") {
		comma := strings.Index(encoded, ",")
		if comma < 0 {
			return nil, fmt.Errorf("malformed data url")
		}
		encoded = encoded[comma+1:]
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("decode image: %w", err)
		}
	}
	return data, nil
}

// imageMIMEType sniffs the upload and falls back to jpeg, the format the
// mobile client sends.
func imageMIMEType(image []byte) string {
	mimeType := http.DetectContentType(image)
	if strings.HasPrefix(mimeType, "image/") {
		return mimeType
	}
	return "image/jpeg"
}
