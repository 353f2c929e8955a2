package main

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MouseSettings contains mouse-specific configuration
type MouseSettings struct {
	EnableMouse      bool    `json:"enable_mouse"`
	WheelSensitivity float64 `json:"wheel_sensitivity"`
	WheelInverted    bool    `json:"wheel_inverted"`
}

// GetDefaultMouseSettings returns the default mouse settings
func GetDefaultMouseSettings() MouseSettings {
	return MouseSettings{
		EnableMouse:      true,
		WheelSensitivity: 1.0,
		WheelInverted:    false,
	}
}

// MouseCombination represents a mouse action with optional modifiers
type MouseCombination struct {
	Button      ebiten.MouseButton
	IsWheel     bool
	WheelDeltaY float64
	modifiers
}

// getMouseMapping returns a mapping from string mouse actions to Ebiten mouse buttons
func getMouseMapping() map[string]ebiten.MouseButton {
	return map[string]ebiten.MouseButton{
		"LeftClick":   ebiten.MouseButtonLeft,
		"RightClick":  ebiten.MouseButtonRight,
		"MiddleClick": ebiten.MouseButtonMiddle,
		"Back":        ebiten.MouseButton3,
		"Forward":     ebiten.MouseButton4,
	}
}

// parseMouseString parses a mouse string like "Shift+LeftClick" or "WheelUp"
func parseMouseString(mouseStr string, mouseMapping map[string]ebiten.MouseButton) (MouseCombination, bool) {
	parts := strings.Split(mouseStr, "+")
	actionName := parts[len(parts)-1]
	combination := MouseCombination{modifiers: parseModifiers(parts[:len(parts)-1])}

	switch actionName {
	case "WheelUp":
		combination.IsWheel = true
		combination.WheelDeltaY = 1.0
	case "WheelDown":
		combination.IsWheel = true
		combination.WheelDeltaY = -1.0
	default:
		button, exists := mouseMapping[actionName]
		if !exists {
			return MouseCombination{}, false
		}
		combination.Button = button
	}
	return combination, true
}

// MousebindingManager resolves mouse input into actions
type MousebindingManager struct {
	combinations map[string][]MouseCombination
	settings     MouseSettings
}

// NewMousebindingManager parses the bindings once
func NewMousebindingManager(mousebindings map[string][]string, settings MouseSettings) *MousebindingManager {
	mouseMapping := getMouseMapping()
	combinations := make(map[string][]MouseCombination, len(mousebindings))
	for action, mouseStrings := range mousebindings {
		for _, mouseStr := range mouseStrings {
			if c, ok := parseMouseString(mouseStr, mouseMapping); ok {
				combinations[action] = append(combinations[action], c)
			}
		}
	}
	return &MousebindingManager{
		combinations: combinations,
		settings:     settings,
	}
}

// wheelMatches reports whether a wheel movement goes in the bound direction
func (mm *MousebindingManager) wheelMatches(combination MouseCombination, wheelY float64) bool {
	if mm.settings.WheelInverted {
		wheelY = -wheelY
	}
	wheelY *= mm.settings.WheelSensitivity
	return (combination.WheelDeltaY > 0 && wheelY > 0) || (combination.WheelDeltaY < 0 && wheelY < 0)
}

func (mm *MousebindingManager) isMouseActionTriggered(combination MouseCombination) bool {
	if !combination.held() {
		return false
	}
	if combination.IsWheel {
		_, wheelY := ebiten.Wheel()
		return mm.wheelMatches(combination, wheelY)
	}
	return inpututil.IsMouseButtonJustPressed(combination.Button)
}

// CheckAction checks if any mouse binding for the given action is triggered
func (mm *MousebindingManager) CheckAction(action string) bool {
	if !mm.settings.EnableMouse {
		return false
	}
	for _, c := range mm.combinations[action] {
		if mm.isMouseActionTriggered(c) {
			return true
		}
	}
	return false
}

// ExecuteAction executes the action if its mouse binding was triggered
func (mm *MousebindingManager) ExecuteAction(action string, inputActions InputActions) bool {
	if !mm.CheckAction(action) {
		return false
	}
	return globalActionExecutor.ExecuteAction(action, inputActions)
}
