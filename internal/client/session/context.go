package session

import "context"

type ctxKey struct{}

// WithSession returns a context carrying the session.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext extracts the session placed by WithSession. It panics when the
// context carries none: reaching for the session outside the wired call tree
// is a programming error, not a runtime condition.
func FromContext(ctx context.Context) *Session {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	if !ok {
		panic("session: FromContext called without WithSession")
	}
	return s
}
