package ports

import "context"

// Prompter asks the operator for confirmation.
//
//go:generate go run go.uber.org/mock/mockgen -source=prompter.go -destination=mocks/mock_prompter.go -package=mocks
type Prompter interface {
	// Confirm returns true only on an explicit yes. The default answer is no.
	Confirm(ctx context.Context, question string) (bool, error)
}
