package command

//go:generate mockgen -package=mocks -destination=mocks/mock_executor.go github.com/KirkDiggler/kits/internal/services/command Executor

import "context"

// Source identifies who a command runs as
type Source struct {
	// Name is shown in logs and messages
	Name string

	// Console sources bypass permission checks
	Console bool
}

// ConsoleSource is the source kit commands run as
var ConsoleSource = Source{Name: "console", Console: true}

// Executor runs a single command line
type Executor interface {
	Execute(ctx context.Context, source Source, line string) error
}

// Handler runs a command once its verb has been matched
type Handler func(ctx context.Context, source Source, args []string) error
