package ui

import "pixloop/pkg/pixel"

type Theme struct {
	Background pixel.Color
	Toolbar    pixel.Color
	Canvas     pixel.Color
	Border     pixel.Color
	StatusBar  pixel.Color
	StatusText pixel.Color
	Accent     pixel.Color
	Cursor     pixel.Color
	ToolbarH   int
	StatusH    int
	SwatchW    int
}

func DefaultTheme() Theme {
	return Theme{
		Background: pixel.RGBA(0x1E, 0x22, 0x2A, 0xFF),
		Toolbar:    pixel.RGBA(0x2B, 0x30, 0x3B, 0xFF),
		Canvas:     pixel.RGBA(0xF7, 0xF9, 0xFC, 0xFF),
		Border:     pixel.RGBA(0x4C, 0x56, 0x6A, 0xFF),
		StatusBar:  pixel.RGBA(0x2B, 0x30, 0x3B, 0xFF),
		StatusText: pixel.RGBA(0xE5, 0xE9, 0xF0, 0xFF),
		Accent:     pixel.RGBA(0xEB, 0xCB, 0x8B, 0xFF),
		Cursor:     pixel.RGBA(0xBF, 0x61, 0x6A, 0xFF),
		ToolbarH:   9,
		StatusH:    15,
		SwatchW:    8,
	}
}
