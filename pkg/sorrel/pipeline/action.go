package pipeline

import (
	"github.com/sambeau/sorrel/pkg/sorrel/errors"
	"github.com/sambeau/sorrel/pkg/sorrel/value"
)

// ActionKind identifies a control directive. The set is closed: it is the
// only legal way an internal command communicates shell-level side effects
// to the driver.
type ActionKind int

const (
	// ActionChangePath sets the current shell's working path.
	ActionChangePath ActionKind = iota
	// ActionExit terminates the process immediately, with no graceful drain.
	ActionExit
	// ActionError records an error on the context and stops the stage.
	ActionError
	// ActionEnterHelpShell pushes a help shell, scoped to a command topic
	// when the payload is a string, else indexing all commands.
	ActionEnterHelpShell
	// ActionEnterValueShell pushes a shell browsing a value as a navigable
	// structure.
	ActionEnterValueShell
	// ActionEnterShell pushes a filesystem shell rooted at a location.
	ActionEnterShell
	// ActionPreviousShell moves the active cursor back within the stack.
	ActionPreviousShell
	// ActionNextShell moves the active cursor forward within the stack.
	ActionNextShell
	// ActionLeaveShell pops the current shell; an empty stack terminates the
	// process.
	ActionLeaveShell
)

// CommandAction is one control directive handed back to the driver.
type CommandAction struct {
	Kind     ActionKind
	Path     string             // ActionChangePath
	Location string             // ActionEnterShell
	Value    value.Value        // ActionEnterHelpShell, ActionEnterValueShell
	Err      *errors.ShellError // ActionError
}

// ChangePath directs the current shell to the given working path.
func ChangePath(path string) *CommandAction {
	return &CommandAction{Kind: ActionChangePath, Path: path}
}

// Exit directs immediate process termination.
func Exit() *CommandAction {
	return &CommandAction{Kind: ActionExit}
}

// ErrorAction records an error and stops the stage.
func ErrorAction(err *errors.ShellError) *CommandAction {
	return &CommandAction{Kind: ActionError, Err: err}
}

// EnterHelpShell pushes a help shell for the given topic value.
func EnterHelpShell(v value.Value) *CommandAction {
	return &CommandAction{Kind: ActionEnterHelpShell, Value: v}
}

// EnterValueShell pushes a shell browsing the given value.
func EnterValueShell(v value.Value) *CommandAction {
	return &CommandAction{Kind: ActionEnterValueShell, Value: v}
}

// EnterShell pushes a filesystem shell rooted at the location.
func EnterShell(location string) *CommandAction {
	return &CommandAction{Kind: ActionEnterShell, Location: location}
}

// PreviousShell moves the active shell cursor back.
func PreviousShell() *CommandAction {
	return &CommandAction{Kind: ActionPreviousShell}
}

// NextShell moves the active shell cursor forward.
func NextShell() *CommandAction {
	return &CommandAction{Kind: ActionNextShell}
}

// LeaveShell pops the current shell.
func LeaveShell() *CommandAction {
	return &CommandAction{Kind: ActionLeaveShell}
}
