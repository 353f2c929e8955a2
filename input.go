package main

// inputOrder is the order in which actions are checked every frame. Ending
// the session comes first so nothing runs after it in the same frame.
var inputOrder = []string{
	"exit",
	"open_folder",
	"hide",
	"star",
	"rotate",
	"next",
	"previous",
	"info",
	"toggle_pause",
}

// InputHandler handles all keyboard and mouse input processing
type InputHandler struct {
	inputActions        InputActions
	inputState          InputState
	keybindingManager   *KeybindingManager
	mousebindingManager *MousebindingManager
}

// NewInputHandler creates a new InputHandler
func NewInputHandler(inputActions InputActions, inputState InputState, keybindingManager *KeybindingManager, mousebindingManager *MousebindingManager) *InputHandler {
	return &InputHandler{
		inputActions:        inputActions,
		inputState:          inputState,
		keybindingManager:   keybindingManager,
		mousebindingManager: mousebindingManager,
	}
}

// HandleInput processes all input for the current frame
// Returns true if any input was processed, false otherwise
func (h *InputHandler) HandleInput() bool {
	inputProcessed := false

	for _, action := range inputOrder {
		if h.inputState.IsTerminated() {
			break
		}
		if h.keybindingManager.ExecuteAction(action, h.inputActions) {
			inputProcessed = true
			continue
		}
		if h.mousebindingManager != nil && h.mousebindingManager.ExecuteAction(action, h.inputActions) {
			inputProcessed = true
		}
	}

	return inputProcessed
}
