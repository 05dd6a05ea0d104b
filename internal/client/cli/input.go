package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/Gabrielparizet/book-my-gigs-cli/internal/client/picker"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// pickOneFn and pickManyFn are indirections over the picker prompts so
// tests can feed selections without a terminal round-trip.
var pickOneFn = pickOne
var pickManyFn = pickMany

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// GetSimpleText prints a prompt to w and reads a single line of input
// from reader, trailing newline trimmed. If EOF occurs after some input
// was read, the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetTextWithDefault reads a line like GetSimpleText but shows the
// current value and keeps it when the user just presses Enter. The
// modify-profile view pre-fills every field this way.
func GetTextWithDefault(reader *bufio.Reader, prompt, current string, w io.Writer) (string, error) {
	text, err := GetSimpleText(reader, fmt.Sprintf("%s [%s]", prompt, current), w)
	if err != nil {
		return "", err
	}
	if text == "" {
		return current, nil
	}
	return text, nil
}

// GetPassword prints prompt to w and reads a password from the terminal
// without echo. A newline is printed after the read to keep the UI tidy.
func GetPassword(prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// maxSuggestions caps the suggestion listing per round-trip; refining
// the query narrows the rest.
const maxSuggestions = 10

// promptPick drives a picker over the terminal: each round prints the
// current suggestions numbered, then reads a line. A number picks that
// suggestion, any other text refines the query, and an empty line
// finishes. Free text never commits; only listed candidates can be
// picked. In single mode the first pick finishes the prompt.
func promptPick(reader *bufio.Reader, w io.Writer, label string, mode picker.Mode, candidates []string) (*picker.Picker, error) {
	p := picker.New(mode, candidates)
	p.Focus()

	for {
		if mode == picker.MultiSelect && len(p.Selected()) > 0 {
			fmt.Fprintf(w, "%s selected: %s\n", label, strings.Join(p.Selected(), ", "))
		}
		suggestions := p.Suggestions()
		if len(suggestions) == 0 {
			fmt.Fprintf(w, "%s: no matches for %q\n", label, p.Query())
		}
		for i, s := range suggestions {
			if i == maxSuggestions {
				fmt.Fprintf(w, "  ... and %d more, type to refine\n", len(suggestions)-maxSuggestions)
				break
			}
			fmt.Fprintf(w, "  %d. %s\n", i+1, s)
		}

		line, err := GetSimpleText(reader, fmt.Sprintf("%s (number to pick, text to refine, empty to finish)", label), w)
		if err != nil {
			return nil, err
		}
		if line == "" {
			p.Dismiss()
			return p, nil
		}

		if n, convErr := strconv.Atoi(line); convErr == nil {
			if n < 1 || n > len(suggestions) {
				fmt.Fprintf(w, "No suggestion %d\n", n)
				continue
			}
			p.Select(suggestions[n-1])
			if mode == picker.SingleSelect {
				return p, nil
			}
			continue
		}

		p.Input(line)
	}
}

// pickOne runs a single-select prompt and returns the committed value,
// empty when the user finished without picking.
func pickOne(reader *bufio.Reader, w io.Writer, label string, candidates []string) (string, error) {
	p, err := promptPick(reader, w, label, picker.SingleSelect, candidates)
	if err != nil {
		return "", err
	}
	return p.Value(), nil
}

// pickMany runs a multi-select prompt and returns the selections in
// insertion order.
func pickMany(reader *bufio.Reader, w io.Writer, label string, candidates []string) ([]string, error) {
	p, err := promptPick(reader, w, label, picker.MultiSelect, candidates)
	if err != nil {
		return nil, err
	}
	return p.Selected(), nil
}
