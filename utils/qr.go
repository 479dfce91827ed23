package utils

import (
	qrcode "github.com/skip2/go-qrcode"
)

// EnrollmentQR renders the check-in code handed out with an accepted
// enrollment as a PNG.
func EnrollmentQR(code string) ([]byte, error) {
	return qrcode.Encode(code, qrcode.Medium, 256)
}
