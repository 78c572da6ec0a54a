// Package draw renders the game into a terminal through ANSI escape sequences.
package draw

// Style selects the SGR attributes a cell is drawn with.
type Style uint8

const (
	StyleDefault Style = iota
	StyleWall
	StyleFloor
	StylePlayer
	StylePositive
	StyleNegative
	StyleDipole
	StylePowerUp
	StyleDormant
	StyleField
	StyleTitle
	StyleDim
	StyleAlert
)

// styleCodes are the SGR sequences per style. Each starts with a reset so
// styles never bleed into each other.
var styleCodes = [...]string{
	StyleDefault:  "\033[0m",
	StyleWall:     "\033[0;90m",
	StyleFloor:    "\033[0;2m",
	StylePlayer:   "\033[0;1;97m",
	StylePositive: "\033[0;1;31m",
	StyleNegative: "\033[0;1;34m",
	StyleDipole:   "\033[0;1;35m",
	StylePowerUp:  "\033[0;1;33m",
	StyleDormant:  "\033[0;2;37m",
	StyleField:    "\033[0;36m",
	StyleTitle:    "\033[0;1;96m",
	StyleDim:      "\033[0;2m",
	StyleAlert:    "\033[0;1;91m",
}

// Code returns the SGR escape sequence of the style.
func (s Style) Code() string {
	if int(s) >= len(styleCodes) {
		return styleCodes[StyleDefault]
	}
	return styleCodes[s]
}

// Block characters for drawing.
const (
	BlockFull   = '█'
	BlockLight  = '░'
	BlockMedium = '▒'
	BlockDark   = '▓'
	BlockEmpty  = ' '
	Dot         = '·'
)
