// Package console renders the interactive prompt and the final report.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// URLPrompt is shown before reading the video link.
const URLPrompt = "Enter YouTube video URL: "

const ruleWidth = 50

// Prompt writes prompt to w and reads one line from r.
// A final line without a newline is accepted.
func Prompt(r io.Reader, w io.Writer, prompt string) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// PrintSummary writes the summary under a header and a dashed rule.
func PrintSummary(w io.Writer, summary string) {
	fmt.Fprintln(w, "\nVideo Summary:")
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
	fmt.Fprintln(w, summary)
}

// PrintError writes the full error chain.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
