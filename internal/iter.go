package internal

import (
	"bufio"
	"io"
	"iter"
)

// IterLines iterates the lines of an input stream, keyed by 0-based line
// index. A scan failure, such as a line over the buffer limit, ends the
// sequence early and is stored through errp; a clean end of input stores
// nil.
func IterLines(input io.Reader, errp *error) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		scanner := bufio.NewScanner(input)
		for n := 0; scanner.Scan(); n++ {
			if !yield(n, scanner.Text()) {
				return // Stop if the consumer stops
			}
		}
		if errp != nil {
			*errp = scanner.Err()
		}
	}
}
