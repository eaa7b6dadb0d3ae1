package term

import (
	"fmt"
	"strings"

	"github.com/plus3/termtris/tetris"
)

// MenuItem is an entry of the title menu.
type MenuItem int

const (
	Start MenuItem = iota
	Controls
	Exit
)

var menuItems = [...]string{Start: "Start", Controls: "Controls", Exit: "Exit"}

func (m MenuItem) String() string {
	if m < 0 || int(m) >= len(menuItems) {
		return fmt.Sprintf("MenuItem(%d)", int(m))
	}
	return menuItems[m]
}

// Menu is the title menu selection. Moving past either end wraps around.
type Menu struct {
	selected MenuItem
}

func (m *Menu) Selected() MenuItem {
	return m.selected
}

func (m *Menu) Left() {
	m.selected = (m.selected + Exit) % (Exit + 1)
}

func (m *Menu) Right() {
	m.selected = (m.selected + 1) % (Exit + 1)
}

// Line renders the menu with the selected entry in brackets.
func (m *Menu) Line() string {
	parts := make([]string, len(menuItems))
	for i, name := range menuItems {
		if MenuItem(i) == m.selected {
			name = "[" + name + "]"
		}
		parts[i] = name
	}
	return strings.Join(parts, " ")
}

var titleArt = []string{
	" ______       __",
	"/_  __/ ___  / /_     ____  ___",
	" / /   / -_)/ __/ _  / __/ (_-<",
	"/_/    \\__/ \\__/ (_)/_/   /___/",
}

var controlsArt = []string{
	"  _____          __           __",
	" / ___/__  ___  / /________  / /__",
	"/ /__/ _ \\/ _ \\/ __/ __/ _ \\/ (_-<",
	"\\___/\\___/_//_/\\__/_/  \\___/_/___/",
}

var actionLabels = map[tetris.Action]string{
	tetris.MoveLeft:     "soft move left",
	tetris.MoveRight:    "soft move right",
	tetris.HardLeft:     "hard left",
	tetris.HardRight:    "hard right",
	tetris.SoftDrop:     "soft drop",
	tetris.HardDrop:     "hard drop",
	tetris.RotateLeft:   "rotate left",
	tetris.RotateRight:  "rotate right",
	tetris.RotateDouble: "rotate twice",
	tetris.Hold:         "hold piece",
	tetris.Quit:         "end the game",
}

// TitleLines renders the title screen.
func TitleLines(menu *Menu) []string {
	lines := append([]string(nil), titleArt...)
	return append(lines,
		"",
		"Tetris in the command line.",
		"Use A/D/ENTER to navigate menus.",
		"",
		menu.Line(),
	)
}

// ControlsLines renders the controls screen from the active keymap.
func ControlsLines(km *Keymap) []string {
	lines := append([]string(nil), controlsArt...)
	lines = append(lines, "(press any key to leave)", "")
	for _, action := range tetris.Actions {
		names := km.Names(action)
		if len(names) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%-10s %s", strings.Join(names, ", ")+":", actionLabels[action]))
	}
	return lines
}
