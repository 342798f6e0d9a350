package core

// Color represents a fill color for a surface rectangle or screen cell.
// Terminal backends map it to an ANSI 256-color code, raster backends to RGB.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBlack
	ColorBrown
	ColorDarkBrown
	ColorGold
	ColorPink
	ColorSky
	ColorGrass
	ColorSkin
	ColorDarkGreen
	colorCount
)

// RGB holds 8-bit color channels.
type RGB struct {
	R, G, B uint8
}

var palette = [colorCount]RGB{
	ColorDefault:       {0xDD, 0xDD, 0xDD},
	ColorRed:           {0xFF, 0x00, 0x00},
	ColorGreen:         {0x00, 0xFF, 0x41},
	ColorYellow:        {0xFF, 0xA5, 0x00},
	ColorBlue:          {0x00, 0x00, 0xFF},
	ColorMagenta:       {0xFF, 0x00, 0xFF},
	ColorCyan:          {0x00, 0xFF, 0xFF},
	ColorWhite:         {0xFF, 0xFF, 0xFF},
	ColorBrightRed:     {0xFF, 0x00, 0x33},
	ColorBrightGreen:   {0x88, 0xFF, 0xAA},
	ColorBrightYellow:  {0xFF, 0xFF, 0x66},
	ColorBrightBlue:    {0x66, 0x99, 0xFF},
	ColorBrightMagenta: {0xFF, 0x66, 0xFF},
	ColorBrightCyan:    {0x99, 0xFF, 0xFF},
	ColorBrightWhite:   {0xFF, 0xFF, 0xFF},
	ColorOrange:        {0xFF, 0x6B, 0x35},
	ColorGray:          {0x80, 0x80, 0x80},
	ColorBlack:         {0x00, 0x00, 0x00},
	ColorBrown:         {0x8B, 0x45, 0x13},
	ColorDarkBrown:     {0x65, 0x43, 0x21},
	ColorGold:          {0xFF, 0xD7, 0x00},
	ColorPink:          {0xFF, 0x69, 0xB4},
	ColorSky:           {0x87, 0xCE, 0xEB},
	ColorGrass:         {0x90, 0xEE, 0x90},
	ColorSkin:          {0xFF, 0xE4, 0xC4},
	ColorDarkGreen:     {0x00, 0x33, 0x00},
}

// RGB returns the raster color for c. Unknown colors map to the default.
func (c Color) RGB() RGB {
	if c >= colorCount {
		return palette[ColorDefault]
	}
	return palette[c]
}
