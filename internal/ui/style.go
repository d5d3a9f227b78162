package ui

import (
	"strconv"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Rule is a single stylesheet rule: one selector and raw property values.
type Rule struct {
	Selector string            // ".panel" or "#play"
	Props    map[string]string // "background" -> "#333"
}

// Stylesheet is an ordered list of rules; later rules override earlier ones.
type Stylesheet struct {
	Rules []Rule
}

// ComputedStyle holds resolved values used for drawing.
// LeftPct/TopPct position the node as a percentage of the free screen space;
// -1 means use Left/Top as pixels. Opacity (0–1) multiplies every color's alpha.
// FadeDuration is how long the fade-out runs once the panel is triggered.
type ComputedStyle struct {
	Background   rl.Color
	Color        rl.Color
	Border       rl.Color
	HasBorder    bool
	Width        int32
	Height       int32
	Left         int32
	Top          int32
	LeftPct      int32
	TopPct       int32
	Padding      int32
	FontSize     int32
	Opacity      float32
	FadeDuration time.Duration
}

// DefaultComputedStyle is transparent background, white text, no border, full
// opacity, and the standard 1s fade.
func DefaultComputedStyle() ComputedStyle {
	return ComputedStyle{
		Background:   rl.NewColor(0, 0, 0, 0),
		Color:        rl.White,
		Border:       rl.Black,
		LeftPct:      -1,
		TopPct:       -1,
		Padding:      4,
		FontSize:     20,
		Opacity:      1,
		FadeDuration: time.Second,
	}
}

// ParseHexColor parses #RGB or #RRGGBB into a color with alpha 255.
func ParseHexColor(s string) (rl.Color, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 4 || s[0] != '#' {
		return rl.Black, false
	}
	hex := s[1:]
	var r, g, b uint8
	switch len(hex) {
	case 3:
		r = hexByte(hex[0]) * 17
		g = hexByte(hex[1]) * 17
		b = hexByte(hex[2]) * 17
	case 6:
		r = hexByte(hex[0])<<4 + hexByte(hex[1])
		g = hexByte(hex[2])<<4 + hexByte(hex[3])
		b = hexByte(hex[4])<<4 + hexByte(hex[5])
	default:
		return rl.Black, false
	}
	return rl.NewColor(r, g, b, 255), true
}

func hexByte(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// ParsePx parses a number with optional "px" suffix. Unitless is pixels.
func ParsePx(s string) (int32, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// ParsePct parses "N%" with N in 0–100.
func ParsePct(s string) (int32, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[len(s)-1] != '%' {
		return 0, false
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return int32(n), true
}

// ParseOpacity parses a 0–1 decimal.
func ParseOpacity(s string) (float32, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil || f < 0 || f > 1 {
		return 0, false
	}
	return float32(f), true
}

// ParseDuration parses "Nms"/"Ns" via time.ParseDuration, or a unitless
// millisecond count.
func ParseDuration(s string) (time.Duration, bool) {
	s = strings.TrimSpace(s)
	if d, err := time.ParseDuration(s); err == nil && d >= 0 {
		return d, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return time.Duration(n) * time.Millisecond, true
}

// ResolveProps builds a ComputedStyle from a merged property map.
func ResolveProps(props map[string]string) ComputedStyle {
	out := DefaultComputedStyle()
	for k, v := range props {
		v = strings.TrimSpace(v)
		switch k {
		case "background":
			if c, ok := ParseHexColor(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := ParseHexColor(v); ok {
				out.Color = c
			}
		case "border":
			if c, ok := ParseHexColor(v); ok {
				out.Border = c
				out.HasBorder = true
			}
		case "width":
			if n, ok := ParsePx(v); ok {
				out.Width = n
			}
		case "height":
			if n, ok := ParsePx(v); ok {
				out.Height = n
			}
		case "left", "x":
			if pct, ok := ParsePct(v); ok {
				out.LeftPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Left = n
			}
		case "top", "y":
			if pct, ok := ParsePct(v); ok {
				out.TopPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Top = n
			}
		case "padding":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Padding = n
			}
		case "font-size":
			if n, ok := ParsePx(v); ok && n > 0 {
				out.FontSize = n
			}
		case "opacity":
			if f, ok := ParseOpacity(v); ok {
				out.Opacity = f
			}
		case "fade-duration":
			if d, ok := ParseDuration(v); ok {
				out.FadeDuration = d
			}
		}
	}
	return out
}

// scaleAlpha multiplies a color's alpha by a 0–1 factor.
func scaleAlpha(c rl.Color, factor float32) rl.Color {
	if factor >= 1 {
		return c
	}
	if factor < 0 {
		factor = 0
	}
	c.A = uint8(float32(c.A) * factor)
	return c
}
