package output

import (
	"fmt"
	"io"
)

// Success prints the final confirmation line for a reconciled record.
func Success(w io.Writer, name, content string) {
	fmt.Fprintf(w, "%s Your address %s has been changed to the IP %s\n",
		SuccessText.Render("Success:"), name, content)
}

// Error prints a single error line.
func Error(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", ErrorText.Render("Error:"), err)
}

// Field prints an aligned "label: value" line.
func Field(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %s %s\n", Label.Render(fmt.Sprintf("%-8s", label+":")), Value.Render(value))
}

// Hint prints a dimmed line of guidance.
func Hint(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, MutedText.Render(fmt.Sprintf(format, args...)))
}
