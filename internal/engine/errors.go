package engine

import "errors"

// Failure kinds. A failed command never ends the turn loop; it reports one
// of these and leaves the world as it was, apart from decay where the
// command still counts as an action.
var (
	ErrMissingArgument   = errors.New("missing argument")
	ErrUnknownCommand    = errors.New("unknown command")
	ErrTargetNotFound    = errors.New("target not found")
	ErrPreconditionUnmet = errors.New("precondition unmet")
	ErrGameOver          = errors.New("game over")
)

// CommandError carries the message shown to the player for a failed
// command. errors.Is matches it against its Kind.
type CommandError struct {
	Kind    error
	Message string
}

func (e *CommandError) Error() string { return e.Message }
func (e *CommandError) Unwrap() error { return e.Kind }

func fail(kind error, msg string) error {
	return &CommandError{Kind: kind, Message: msg}
}
