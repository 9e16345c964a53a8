// Package qrcode renders QR codes as PNG data URIs that can be placed
// directly in an <img> tag.
//
// It wraps github.com/skip2/go-qrcode. TelImage is the entry point used by
// the result panel: it turns an E.164 number into a "tel:" URI and encodes
// it, so a phone camera pointed at the screen offers to dial the number.
//
// # Usage
//
//	src, err := qrcode.TelImage("+447400123456", 192)
//	if err != nil {
//		return err
//	}
//	// <img src={ src } alt="Scan to call">
//
// Errors are sentinels and can be compared with errors.Is.
package qrcode
