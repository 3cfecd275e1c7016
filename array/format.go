package array

import "fmt"

// Format implements fmt.Formatter. Only the occupied slots are rendered, the
// same way fmt renders a slice of T.
func (a Array[T, S]) Format(state fmt.State, verb rune) {
	fmt.Fprintf(state, fmt.FormatString(state, verb), a.Slice())
}
