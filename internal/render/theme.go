package render

import (
	"analogue-clock/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// theme is a config color set resolved to renderer colors once, not per
// draw call.
type theme struct {
	background rl.Color
	face       rl.Color
	markers    rl.Color
	hourHand   rl.Color
	minuteHand rl.Color
	secondHand rl.Color
	hub        rl.Color
}

func themeFrom(c config.Colors) theme {
	return theme{
		background: toColor(c.Background),
		face:       toColor(c.Face),
		markers:    toColor(c.Markers),
		hourHand:   toColor(c.HourHand),
		minuteHand: toColor(c.MinuteHand),
		secondHand: toColor(c.SecondHand),
		hub:        toColor(c.Hub),
	}
}

func toColor(colorStr string) rl.Color {
	red, green, blue := config.ParseColor(colorStr)
	return rl.NewColor(uint8(red*255), uint8(green*255), uint8(blue*255), 255)
}
