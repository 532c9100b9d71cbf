package export

import "signalhtml/internal/domain"

// Registry collects every recipient resolved during a run, keyed by the
// normalized string form of their id. The mms table stores quote authors as
// text, so quote resolution looks recipients up by that string rather than
// by foreign key.
type Registry struct {
	byKey map[string]domain.Recipient
}

func NewRegistry() *Registry {
	return &Registry{byKey: make(map[string]domain.Recipient)}
}

// Add records a recipient under its id key. Adding the same recipient twice
// is harmless.
func (r *Registry) Add(rec domain.Recipient) {
	r.byKey[rec.ID.String()] = rec
}

// Find returns the recipient registered under the given raw key, normalizing
// it the same way Add normalized the id.
func (r *Registry) Find(key string) (domain.Recipient, bool) {
	rec, ok := r.byKey[domain.NormalizeKey(key)]
	return rec, ok
}

// Len reports how many distinct recipients have been registered.
func (r *Registry) Len() int {
	return len(r.byKey)
}
