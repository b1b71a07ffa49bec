package crafting

// SlotBuffer is the ordered list of ingredient tokens staged for a craft.
// It has no capacity of its own; a slot limit is a presentation concern.
// SlotBuffer is not safe for concurrent use; Session serialises access.
type SlotBuffer struct {
	tokens []string
}

// NewSlotBuffer returns an empty buffer
func NewSlotBuffer() *SlotBuffer {
	return &SlotBuffer{}
}

// Add appends a token. Unknown ingredient ids are accepted; they simply never match.
func (b *SlotBuffer) Add(ingredientID string) {
	b.tokens = append(b.tokens, ingredientID)
}

// RemoveAt removes the token at pos and reports whether anything was removed
func (b *SlotBuffer) RemoveAt(pos int) bool {
	if pos < 0 || pos >= len(b.tokens) {
		return false
	}
	b.tokens = append(b.tokens[:pos], b.tokens[pos+1:]...)
	return true
}

// Clear empties the buffer and reports whether it held anything
func (b *SlotBuffer) Clear() bool {
	had := len(b.tokens) > 0
	b.tokens = b.tokens[:0]
	return had
}

// Len returns the number of staged tokens
func (b *SlotBuffer) Len() int {
	return len(b.tokens)
}

// Tokens returns a copy of the staged tokens in insertion order
func (b *SlotBuffer) Tokens() []string {
	return append([]string(nil), b.tokens...)
}
