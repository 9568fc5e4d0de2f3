package input

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast
	ActionMoveNorthWest
	ActionMoveNorthEast
	ActionMoveSouthWest
	ActionMoveSouthEast

	// Count prefix digit, see Intent.Digit
	ActionDigit

	// Meta / UI
	ActionQuit
	ActionMenuPrev
	ActionMenuNext
	ActionSelect
	ActionEnterText
	ActionExport
	ActionScreenshot
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
	Digit  int
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "k", "arrow_up", "escape").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Each RawInput is treated as already debounced by the terminal reader or by
// Ebiten's just-pressed key tracking.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, Vim)
	"arrow_up":    ActionMoveNorth,
	"k":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"j":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"h":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"l":           ActionMoveEast,
	"u":           ActionMoveNorthWest,
	"i":           ActionMoveNorthEast,
	"n":           ActionMoveSouthWest,
	"m":           ActionMoveSouthEast,

	// Quit
	"quit": ActionQuit,
	"q":    ActionQuit,

	// Tile menu
	";": ActionMenuPrev,
	"'": ActionMenuNext,
	"s": ActionSelect,

	// Room name and export
	"t": ActionEnterText,
	"x": ActionExport,

	// Developer tools
	"p": ActionScreenshot,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if len(ev.Code) == 1 && ev.Code[0] >= '0' && ev.Code[0] <= '9' {
		return Intent{Action: ActionDigit, Digit: int(ev.Code[0] - '0')}
	}
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// TextKind classifies an input while a text field has focus
type TextKind int

const (
	TextNone TextKind = iota
	TextChar
	TextBackspace
	TextExit
)

// TextEdit is an input event interpreted for a text field
type TextEdit struct {
	Kind TextKind
	Char rune
}

// MapToText interprets a debounced input for text entry. Escape and Enter
// leave the field; any single printable character is typed.
func MapToText(ev DebouncedInput) TextEdit {
	switch ev.Code {
	case "escape", "enter", "quit":
		return TextEdit{Kind: TextExit}
	case "backspace":
		return TextEdit{Kind: TextBackspace}
	}
	r, size := utf8.DecodeRuneInString(ev.Code)
	if size == len(ev.Code) && r != utf8.RuneError && r >= ' ' && r != 0x7f {
		return TextEdit{Kind: TextChar, Char: r}
	}
	return TextEdit{}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionMoveNorthWest:
		return "Move North West"
	case ActionMoveNorthEast:
		return "Move North East"
	case ActionMoveSouthWest:
		return "Move South West"
	case ActionMoveSouthEast:
		return "Move South East"
	case ActionDigit:
		return "Count"
	case ActionQuit:
		return "Quit"
	case ActionMenuPrev:
		return "Menu Previous"
	case ActionMenuNext:
		return "Menu Next"
	case ActionSelect:
		return "Paint Tile"
	case ActionEnterText:
		return "Edit Name"
	case ActionExport:
		return "Export Room"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "None"
	}
}

// ActionByName finds an action by its ActionName, ignoring case and reading
// underscores as spaces, so "export_room" names ActionExport
func ActionByName(name string) (Action, bool) {
	want := strings.ReplaceAll(name, "_", " ")
	for a := ActionNone + 1; a <= ActionScreenshot; a++ {
		if strings.EqualFold(ActionName(a), want) {
			return a, true
		}
	}
	return ActionNone, false
}

// FormatBindings lists every bound action with its codes, one per line
func FormatBindings() string {
	byAction := GetBindingsByAction()
	var b strings.Builder
	for a := ActionNone + 1; a <= ActionScreenshot; a++ {
		codes := byAction[a]
		if a == ActionDigit {
			codes = []string{"0-9"}
		}
		if len(codes) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%-16s %s\n", ActionName(a), strings.Join(codes, " "))
	}
	return b.String()
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering of codes within each action
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single code.
// Arrow keys and digits stay reserved.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if isReserved(c) {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !isReserved(code) {
		bindings[code] = action
	}
}

func isReserved(code string) bool {
	switch code {
	case "arrow_up", "arrow_down", "arrow_left", "arrow_right", "quit":
		return true
	}
	return len(code) == 1 && code[0] >= '0' && code[0] <= '9'
}
