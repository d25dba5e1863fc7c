package core

// RowErrors accumulates validation messages per row, keyed by the row's
// original index. Writes are pure appends: every check concatenates its
// message after whatever earlier checks wrote, so the postal and weight
// passes coexist in one row's text in the order they ran.
//
// A fresh accumulator is created for every validation run, which keeps
// repeated runs over the same table from duplicating messages.
type RowErrors struct {
	messages map[int]string
}

// NewRowErrors returns an empty accumulator.
func NewRowErrors() *RowErrors {
	return &RowErrors{messages: make(map[int]string)}
}

// Append concatenates msg to the row's accumulated text. The entry is lazily
// created as empty on first write.
func (e *RowErrors) Append(index int, msg string) {
	e.messages[index] += msg
}

// Get returns the accumulated text for a row, or "" if nothing was recorded.
func (e *RowErrors) Get(index int) string {
	return e.messages[index]
}

// HasErrors reports whether any message was recorded for the row.
func (e *RowErrors) HasErrors(index int) bool {
	return e.messages[index] != ""
}

// Len returns the number of rows with at least one message.
func (e *RowErrors) Len() int {
	n := 0
	for _, msg := range e.messages {
		if msg != "" {
			n++
		}
	}
	return n
}
