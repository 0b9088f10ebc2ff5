package checker

import (
	"fmt"
	"io"
)

// WriteReport prints the misspelled word followed by its suggestions, one
// per line in sorted order, or a "(no suggestions)" marker when there are
// none.
func WriteReport(w io.Writer, rep Report) error {
	if _, err := fmt.Fprintf(w, "%s:\n", rep.Word); err != nil {
		return err
	}
	if len(rep.Suggestions) == 0 {
		_, err := fmt.Fprintln(w, "(no suggestions)")
		return err
	}
	for _, s := range rep.Suggestions {
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}
