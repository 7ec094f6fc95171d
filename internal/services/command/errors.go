package command

// CommandError is a custom error type for command errors
type CommandError string

// Error implements the error interface
func (e CommandError) Error() string {
	return string(e)
}

const (
	ErrEmptyCommand   CommandError = "command is empty"
	ErrUnknownCommand CommandError = "unknown command"
	ErrMissingArgs    CommandError = "missing command arguments"
)
