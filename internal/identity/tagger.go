// Package identity extracts the candidate's name, email, and phone number
// from raw resume text using layered heuristics.
package identity

import "context"

// Entity is a labeled text span returned by an entity tagger.
type Entity struct {
	Text  string
	Label string
}

// LabelPerson marks spans the name fallback consumes.
const LabelPerson = "PERSON"

// EntityTagger is the narrow interface to an external named-entity-recognition
// service, used only as a fallback when the rule-based name heuristic finds
// nothing. Implementations should honor the context deadline; a failure
// degrades to an empty name rather than aborting the parse.
type EntityTagger interface {
	Tag(ctx context.Context, snippet string) ([]Entity, error)
}
