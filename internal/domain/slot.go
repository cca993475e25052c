package domain

// Slot is one named value the intent service extracted from free text.
// A slot carries up to three value categories; keyword extraction picks one
// category by fixed precedence: resolved, then interpreted, then original.
type Slot struct {
	Name             string
	ResolvedValues   []string
	InterpretedValue string
	OriginalValue    string
}
