// Package text holds styled, translatable labels in the shape Minecraft chat
// components use: a translation key plus a colour.
package text

import "fmt"

// Formatting is a Minecraft chat colour.
type Formatting int

const (
	Black Formatting = iota
	DarkBlue
	DarkGreen
	DarkAqua
	DarkRed
	DarkPurple
	Gold
	Gray
	DarkGray
	Blue
	Green
	Aqua
	Red
	LightPurple
	Yellow
	White
)

type formattingInfo struct {
	name string
	code byte
	rgb  uint32
}

var formattings = [...]formattingInfo{
	Black:       {"black", '0', 0x000000},
	DarkBlue:    {"dark_blue", '1', 0x0000AA},
	DarkGreen:   {"dark_green", '2', 0x00AA00},
	DarkAqua:    {"dark_aqua", '3', 0x00AAAA},
	DarkRed:     {"dark_red", '4', 0xAA0000},
	DarkPurple:  {"dark_purple", '5', 0xAA00AA},
	Gold:        {"gold", '6', 0xFFAA00},
	Gray:        {"gray", '7', 0xAAAAAA},
	DarkGray:    {"dark_gray", '8', 0x555555},
	Blue:        {"blue", '9', 0x5555FF},
	Green:       {"green", 'a', 0x55FF55},
	Aqua:        {"aqua", 'b', 0x55FFFF},
	Red:         {"red", 'c', 0xFF5555},
	LightPurple: {"light_purple", 'd', 0xFF55FF},
	Yellow:      {"yellow", 'e', 0xFFFF55},
	White:       {"white", 'f', 0xFFFFFF},
}

func (f Formatting) valid() bool {
	return f >= 0 && int(f) < len(formattings)
}

// Name returns the JSON chat colour name, e.g. "gold".
func (f Formatting) Name() string {
	if !f.valid() {
		return "reset"
	}
	return formattings[f].name
}

func (f Formatting) String() string {
	return f.Name()
}

// Code returns the legacy "§x" colour code.
func (f Formatting) Code() string {
	if !f.valid() {
		return "§r"
	}
	return "§" + string(formattings[f].code)
}

// RGB returns the 24-bit foreground colour.
func (f Formatting) RGB() uint32 {
	if !f.valid() {
		return formattings[White].rgb
	}
	return formattings[f].rgb
}

// Hex returns the foreground colour as "#rrggbb".
func (f Formatting) Hex() string {
	return fmt.Sprintf("#%06x", f.RGB())
}
