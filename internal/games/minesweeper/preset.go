package minesweeper

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/board"
)

// Size is the board size menu value.
type Size uint8

const (
	SizeSmall Size = iota
	SizeMedium
	SizeBig
	SizeHuge
	sizeCount
)

var sizeTable = [sizeCount]struct {
	name  string
	w, h  int
	color core.Color
}{
	SizeSmall:  {"Small", 16, 9, core.ColorGreen},
	SizeMedium: {"Medium", 32, 18, core.ColorYellow},
	SizeBig:    {"Big", 48, 27, core.ColorOrange},
	SizeHuge:   {"Huge", 64, 36, core.ColorRed},
}

// Sizes lists every board size in menu order.
func Sizes() []Size {
	return []Size{SizeSmall, SizeMedium, SizeBig, SizeHuge}
}

// Next returns the following size, wrapping around.
func (s Size) Next() Size { return (s + 1) % sizeCount }

// Color returns the menu colour of the size.
func (s Size) Color() core.Color { return sizeTable[s%sizeCount].color }

// Label returns the menu caption.
func (Size) Label() string { return "Size:" }

func (s Size) String() string { return sizeTable[s%sizeCount].name }

// Dimensions returns the board width and height in cells.
func (s Size) Dimensions() (int, int) {
	e := sizeTable[s%sizeCount]
	return e.w, e.h
}

// ParseSize resolves a size name, ignoring case.
func ParseSize(name string) (Size, error) {
	for _, s := range Sizes() {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return SizeSmall, fmt.Errorf("unknown size %q (want small, medium, big or huge)", name)
}

// Difficulty is the mine density menu value.
type Difficulty uint8

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
	DifficultyExtreme
	DifficultyDebug
	difficultyCount
)

var difficultyTable = [difficultyCount]struct {
	name  string
	mines func(cells int) int
	color core.Color
}{
	DifficultyEasy:    {"Easy", func(c int) int { return c / 10 }, core.ColorGreen},
	DifficultyMedium:  {"Medium", func(c int) int { return c * 3 / 20 }, core.ColorYellow},
	DifficultyHard:    {"Hard", func(c int) int { return c / 5 }, core.ColorOrange},
	DifficultyExtreme: {"Extreme", func(c int) int { return c / 4 }, core.ColorRed},
	DifficultyDebug:   {"Debug", func(int) int { return board.DebugMines }, core.ColorMagenta},
}

// Difficulties lists every difficulty in menu order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExtreme, DifficultyDebug}
}

// Next returns the following difficulty, wrapping around.
func (d Difficulty) Next() Difficulty { return (d + 1) % difficultyCount }

// Color returns the menu colour of the difficulty.
func (d Difficulty) Color() core.Color { return difficultyTable[d%difficultyCount].color }

// Label returns the menu caption.
func (Difficulty) Label() string { return "Difficulty:" }

func (d Difficulty) String() string { return difficultyTable[d%difficultyCount].name }

// MineCount returns the number of mines for a board of the given cell count.
func (d Difficulty) MineCount(cells int) int { return difficultyTable[d%difficultyCount].mines(cells) }

// IsDebug reports whether the difficulty uses the fixed debug layout.
func (d Difficulty) IsDebug() bool { return d == DifficultyDebug }

// ParseDifficulty resolves a difficulty name, ignoring case.
func ParseDifficulty(name string) (Difficulty, error) {
	for _, d := range Difficulties() {
		if strings.EqualFold(name, d.String()) {
			return d, nil
		}
	}
	return DifficultyEasy, fmt.Errorf("unknown difficulty %q (want easy, medium, hard, extreme or debug)", name)
}

// Preset is a size and difficulty pair chosen in the menu.
type Preset struct {
	Size       Size
	Difficulty Difficulty
}

// ParsePreset resolves size and difficulty names.
func ParsePreset(size, difficulty string) (Preset, error) {
	s, err := ParseSize(size)
	if err != nil {
		return Preset{}, err
	}
	d, err := ParseDifficulty(difficulty)
	if err != nil {
		return Preset{}, err
	}
	return Preset{Size: s, Difficulty: d}, nil
}

// ParseVariant resolves a storage key such as "small/easy".
func ParseVariant(variant string) (Preset, error) {
	size, difficulty, ok := strings.Cut(variant, "/")
	if !ok {
		return Preset{}, fmt.Errorf("malformed variant %q (want size/difficulty)", variant)
	}
	return ParsePreset(size, difficulty)
}

// Presets lists every size and difficulty pair in menu order.
func Presets() []Preset {
	out := make([]Preset, 0, int(sizeCount)*int(difficultyCount))
	for _, s := range Sizes() {
		for _, d := range Difficulties() {
			out = append(out, Preset{Size: s, Difficulty: d})
		}
	}
	return out
}

// Configuration returns the board configuration of the preset.
func (p Preset) Configuration() board.Config {
	w, h := p.Size.Dimensions()
	return board.Config{Width: w, Height: h, Mines: p.Difficulty.MineCount(w * h)}
}

// Pattern returns the fixed mine layout of the preset, or nil for random boards.
func (p Preset) Pattern() board.Pattern {
	if p.Difficulty.IsDebug() {
		return board.DebugPattern()
	}
	return nil
}

// Variant is the storage key of the preset, e.g. "small/easy".
func (p Preset) Variant() string {
	return strings.ToLower(p.Size.String()) + "/" + strings.ToLower(p.Difficulty.String())
}

func (p Preset) String() string {
	return p.Size.String() + " " + p.Difficulty.String()
}
