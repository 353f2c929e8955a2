package main

// ActionExecutor maps action names onto InputActions. Keyboard and mouse
// bindings both go through it.
type ActionExecutor struct{}

// NewActionExecutor creates a new ActionExecutor instance
func NewActionExecutor() *ActionExecutor {
	return &ActionExecutor{}
}

// ExecuteAction runs the named action. It returns false for unknown names.
func (ae *ActionExecutor) ExecuteAction(action string, inputActions InputActions) bool {
	switch action {
	case "exit":
		inputActions.Exit()
	case "rotate":
		inputActions.RotateCurrent()
	case "next":
		inputActions.NavigateNext()
	case "previous":
		inputActions.NavigatePrevious()
	case "hide":
		inputActions.HideCurrent()
	case "star":
		inputActions.StarCurrent()
	case "open_folder":
		inputActions.OpenContainingFolder()
	case "info":
		inputActions.ToggleInfo()
	case "toggle_pause":
		inputActions.TogglePause()
	default:
		return false
	}

	return true
}

// globalActionExecutor is the global instance of ActionExecutor used throughout the application
var globalActionExecutor = NewActionExecutor()
