package insights

import "context"

// TextGenerator is the outbound capability for AI-generated advisory text.
// The call is fire-and-forget relative to the core: failures degrade to a
// canned message and never affect store or scheduler state.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
