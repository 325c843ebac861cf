package auth

import "context"

// outcomeKey is a private type for the outcome context key.
type outcomeKey struct{}

// SetOutcome stores the authentication outcome in the context.
func SetOutcome(ctx context.Context, o Outcome) context.Context {
	return context.WithValue(ctx, outcomeKey{}, o)
}

// OutcomeFromContext retrieves the authentication outcome. Returns a
// rejected outcome if none is set.
func OutcomeFromContext(ctx context.Context) Outcome {
	if o, ok := ctx.Value(outcomeKey{}).(Outcome); ok {
		return o
	}
	return Rejected()
}
