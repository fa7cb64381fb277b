package report

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QRSize сторона PNG с QR-кодом в пикселях
const QRSize = 256

// ARDeepLink ссылка, открывающая AR-экран объекта в боте.
// Без имени бота возвращает payload команды /start.
func ARDeepLink(botUsername string, siteID int) string {
	payload := fmt.Sprintf("ar_%d", siteID)
	if botUsername == "" {
		return "/start " + payload
	}
	return fmt.Sprintf("https://t.me/%s?start=%s", botUsername, payload)
}

// SiteQR PNG с QR-кодом для ссылки
func SiteQR(link string) ([]byte, error) {
	png, err := qrcode.Encode(link, qrcode.Medium, QRSize)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr code: %w", err)
	}
	return png, nil
}
