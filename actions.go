package main

// ActionDefinition defines an action with its default keybindings, mouse bindings, and description
type ActionDefinition struct {
	Name         string
	Keys         []string
	MouseActions []string
	Description  string
}

// actionDefinitions contains all action definitions with default keybindings, mouse bindings, and descriptions
var actionDefinitions = []ActionDefinition{
	{"exit", []string{"Escape"}, []string{}, "Quit slideshow"},
	{"rotate", []string{"ArrowUp"}, []string{}, "Rotate 90 degrees clockwise"},
	{"next", []string{"ArrowRight"}, []string{"LeftClick", "WheelDown"}, "Next image"},
	{"previous", []string{"ArrowLeft"}, []string{"RightClick", "WheelUp"}, "Previous image"},
	{"hide", []string{"Delete"}, []string{}, "Move image into the hidden folder"},
	{"star", []string{"KeyF"}, []string{}, "Copy image into the favorites folder"},
	{"open_folder", []string{"KeyO"}, []string{}, "Open the image's folder and quit"},
	{"info", []string{"KeyI"}, []string{}, "Show/hide info display"},
	{"toggle_pause", []string{"KeyP", "Space"}, []string{"MiddleClick"}, "Pause/resume auto-advance"},
}

// actionDescriptions returns a map of action names to their descriptions
func actionDescriptions() map[string]string {
	descriptions := make(map[string]string, len(actionDefinitions))
	for _, action := range actionDefinitions {
		descriptions[action.Name] = action.Description
	}
	return descriptions
}

// GetDefaultKeybindings returns a map of action names to their default keybindings
func GetDefaultKeybindings() map[string][]string {
	keybindings := make(map[string][]string)
	for _, action := range actionDefinitions {
		keybindings[action.Name] = action.Keys
	}
	return keybindings
}

// GetDefaultMousebindings returns a map of action names to their default mouse bindings
func GetDefaultMousebindings() map[string][]string {
	mousebindings := make(map[string][]string)
	for _, action := range actionDefinitions {
		mousebindings[action.Name] = action.MouseActions
	}
	return mousebindings
}
