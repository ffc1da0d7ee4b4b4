package render

import (
	"fmt"
	"image"

	"github.com/skip2/go-qrcode"
)

const defaultQRCodeSizePx = 256

// GenerateQRCodeImage returns a QR code image for the given payload.
// If payload is empty, it returns (nil, nil).
func GenerateQRCodeImage(payload string, sizePx int) (image.Image, error) {
	if payload == "" {
		return nil, nil
	}
	if sizePx <= 0 {
		sizePx = defaultQRCodeSizePx
	}

	qrCode, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, err
	}

	return qrCode.Image(sizePx), nil
}

// StampQRCode draws a sizePx square QR code for payload with its top-left at x,y.
func StampQRCode(d Drawer, payload string, x, y, sizePx int) error {
	img, err := GenerateQRCodeImage(payload, sizePx)
	if err != nil {
		return fmt.Errorf("qr code for %q: %w", payload, err)
	}
	d.DrawImage(img, x, y)
	return nil
}
