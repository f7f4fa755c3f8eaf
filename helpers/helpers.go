package helpers

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mdp/qrterminal/v3"
	"github.com/muesli/gamut"
	"github.com/skip2/go-qrcode"
)

// ShortenID keeps the first n runes of an opaque id, marking the cut with an ellipsis
func ShortenID(id string, n int) string {
	r := []rune(id)
	if n < 0 || len(r) <= n {
		return id
	}
	return string(r[:n]) + "…"
}

// ShortenKey shortens a long hex key or address for display
func ShortenKey(key string) string {
	if len(key) < 14 {
		return key
	}
	return key[:8] + "…" + key[len(key)-4:]
}

// FadeString creates a gradient colored string
func FadeString(s string, firstColor string, lastColor string) string {
	n := len([]rune(s))
	if n == 0 {
		return s
	}
	blends := gamut.Blends(lipgloss.Color(firstColor), lipgloss.Color(lastColor), n)
	return rainbow(lipgloss.NewStyle(), s, blends)
}

func rainbow(baseStyle lipgloss.Style, str string, colors []color.Color) string {
	var b strings.Builder
	i := 0
	for _, c := range str {
		col, _ := colorful.MakeColor(colors[i%len(colors)])
		b.WriteString(baseStyle.Foreground(lipgloss.Color(col.Hex())).Render(string(c)))
		i++
	}
	return b.String()
}

// GenerateQRCode renders text as a half-block terminal QR code
func GenerateQRCode(text string) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	qrterminal.GenerateWithConfig(text, qrterminal.Config{
		Level:          qrterminal.L,
		Writer:         &b,
		HalfBlocks:     true,
		BlackChar:      qrterminal.BLACK_BLACK,
		WhiteBlackChar: qrterminal.WHITE_BLACK,
		WhiteChar:      qrterminal.WHITE_WHITE,
		BlackWhiteChar: qrterminal.BLACK_WHITE,
		QuietZone:      1,
	})
	return b.String()
}

// WriteQRPNG saves text as a PNG QR code at path
func WriteQRPNG(path, text string) error {
	return qrcode.WriteFile(text, qrcode.Medium, 256, path)
}

// Max returns the maximum of two integers
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the minimum of two integers
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
