package main

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// getKeyMapping returns a mapping from string keys to Ebiten keys
func getKeyMapping() map[string]ebiten.Key {
	return map[string]ebiten.Key{
		// Letters
		"KeyA": ebiten.KeyA, "KeyB": ebiten.KeyB, "KeyC": ebiten.KeyC, "KeyD": ebiten.KeyD,
		"KeyE": ebiten.KeyE, "KeyF": ebiten.KeyF, "KeyG": ebiten.KeyG, "KeyH": ebiten.KeyH,
		"KeyI": ebiten.KeyI, "KeyJ": ebiten.KeyJ, "KeyK": ebiten.KeyK, "KeyL": ebiten.KeyL,
		"KeyM": ebiten.KeyM, "KeyN": ebiten.KeyN, "KeyO": ebiten.KeyO, "KeyP": ebiten.KeyP,
		"KeyQ": ebiten.KeyQ, "KeyR": ebiten.KeyR, "KeyS": ebiten.KeyS, "KeyT": ebiten.KeyT,
		"KeyU": ebiten.KeyU, "KeyV": ebiten.KeyV, "KeyW": ebiten.KeyW, "KeyX": ebiten.KeyX,
		"KeyY": ebiten.KeyY, "KeyZ": ebiten.KeyZ,

		// Numbers
		"Key0": ebiten.Key0, "Key1": ebiten.Key1, "Key2": ebiten.Key2, "Key3": ebiten.Key3,
		"Key4": ebiten.Key4, "Key5": ebiten.Key5, "Key6": ebiten.Key6, "Key7": ebiten.Key7,
		"Key8": ebiten.Key8, "Key9": ebiten.Key9,

		// Special keys
		"Space":      ebiten.KeySpace,
		"Backspace":  ebiten.KeyBackspace,
		"Delete":     ebiten.KeyDelete,
		"Insert":     ebiten.KeyInsert,
		"Enter":      ebiten.KeyEnter,
		"Escape":     ebiten.KeyEscape,
		"Tab":        ebiten.KeyTab,
		"Home":       ebiten.KeyHome,
		"End":        ebiten.KeyEnd,
		"PageUp":     ebiten.KeyPageUp,
		"PageDown":   ebiten.KeyPageDown,
		"ArrowUp":    ebiten.KeyArrowUp,
		"ArrowDown":  ebiten.KeyArrowDown,
		"ArrowLeft":  ebiten.KeyArrowLeft,
		"ArrowRight": ebiten.KeyArrowRight,

		// Punctuation
		"Comma":     ebiten.KeyComma,
		"Period":    ebiten.KeyPeriod,
		"Slash":     ebiten.KeySlash,
		"Semicolon": ebiten.KeySemicolon,
		"Quote":     ebiten.KeyQuote,
		"Minus":     ebiten.KeyMinus,
		"Equal":     ebiten.KeyEqual,
	}
}

// modifiers is the set of modifier keys a binding requires
type modifiers struct {
	Shift bool
	Ctrl  bool
	Alt   bool
}

// parseModifiers reads the "Shift+Ctrl+" prefix of a binding string
func parseModifiers(parts []string) modifiers {
	var m modifiers
	for _, part := range parts {
		switch strings.ToLower(part) {
		case "shift":
			m.Shift = true
		case "ctrl":
			m.Ctrl = true
		case "alt":
			m.Alt = true
		}
	}
	return m
}

// held reports whether exactly the required modifiers are pressed
func (m modifiers) held() bool {
	return m.Shift == ebiten.IsKeyPressed(ebiten.KeyShift) &&
		m.Ctrl == ebiten.IsKeyPressed(ebiten.KeyControl) &&
		m.Alt == ebiten.IsKeyPressed(ebiten.KeyAlt)
}

// KeyCombination represents a key with optional modifiers
type KeyCombination struct {
	Key ebiten.Key
	modifiers
}

// parseKeyString parses a key string like "Shift+KeyB" into a KeyCombination
func parseKeyString(keyStr string, keyMapping map[string]ebiten.Key) (KeyCombination, bool) {
	parts := strings.Split(keyStr, "+")
	key, exists := keyMapping[parts[len(parts)-1]]
	if !exists {
		return KeyCombination{}, false
	}
	return KeyCombination{Key: key, modifiers: parseModifiers(parts[:len(parts)-1])}, true
}

// KeybindingManager resolves key presses into actions
type KeybindingManager struct {
	combinations map[string][]KeyCombination
}

// NewKeybindingManager parses the bindings once. Unknown keys are ignored.
func NewKeybindingManager(keybindings map[string][]string) *KeybindingManager {
	keyMapping := getKeyMapping()
	combinations := make(map[string][]KeyCombination, len(keybindings))
	for action, keys := range keybindings {
		for _, keyStr := range keys {
			if c, ok := parseKeyString(keyStr, keyMapping); ok {
				combinations[action] = append(combinations[action], c)
			}
		}
	}
	return &KeybindingManager{combinations: combinations}
}

// CheckAction checks if any keybinding for the given action was just pressed
func (km *KeybindingManager) CheckAction(action string) bool {
	for _, c := range km.combinations[action] {
		if inpututil.IsKeyJustPressed(c.Key) && c.held() {
			return true
		}
	}
	return false
}

// ExecuteAction executes the action if one of its keys was just pressed
func (km *KeybindingManager) ExecuteAction(action string, inputActions InputActions) bool {
	if !km.CheckAction(action) {
		return false
	}
	return globalActionExecutor.ExecuteAction(action, inputActions)
}
