package qrcode

import (
	"encoding/base64"
	"errors"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

var (
	ErrEmptyContent  = errors.New("qrcode: content cannot be empty")
	ErrInvalidNumber = errors.New("qrcode: number must be in E.164 format")
	ErrGenerate      = errors.New("qrcode: failed to generate image")
)

const (
	defaultSize = 256
	dataURIPNG  = "data:image/png;base64,"
)

// Generate encodes content into a square PNG of size pixels.
// Non-positive sizes fall back to 256.
func Generate(content string, size int) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		size = defaultSize
	}
	png, err := skipqrcode.Encode(content, skipqrcode.Medium, size)
	if err != nil {
		return nil, errors.Join(ErrGenerate, err)
	}
	return png, nil
}

// DataURI encodes content and returns it as a base64 PNG data URI.
func DataURI(content string, size int) (string, error) {
	png, err := Generate(content, size)
	if err != nil {
		return "", err
	}
	return dataURIPNG + base64.StdEncoding.EncodeToString(png), nil
}

// TelURI returns the "tel:" URI of an E.164 number.
func TelURI(e164 string) (string, error) {
	if !isE164(e164) {
		return "", ErrInvalidNumber
	}
	return "tel:" + e164, nil
}

// TelImage returns a data URI of a QR code that dials e164 when scanned.
func TelImage(e164 string, size int) (string, error) {
	uri, err := TelURI(e164)
	if err != nil {
		return "", err
	}
	return DataURI(uri, size)
}

// isE164 checks the shape "+" followed by 2 to 15 digits.
func isE164(s string) bool {
	if len(s) < 3 || len(s) > 16 || s[0] != '+' {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
