// Package picker implements the autocomplete filter widget shared by the
// location, genre and event-type fields: a text-input-driven suggestion
// list with single-select or multi-select semantics. It is a pure state
// machine; terminal interaction lives in the cli package.
//
// The committed value (single mode) and every selected entry (multi mode)
// are always members of the candidate set observed at selection time.
// Free text that was typed but never picked from the list never commits.
package picker

import "strings"

// Mode selects the commit semantics.
type Mode int

const (
	// SingleSelect commits one value, mirroring it into the query
	// (location and event-type fields).
	SingleSelect Mode = iota
	// MultiSelect accumulates values in insertion order with no
	// duplicates (genre fields).
	MultiSelect
)

// Picker filters a reference set of candidate strings as the user types.
type Picker struct {
	mode       Mode
	candidates []string

	query    string
	filtered []string
	open     bool

	value    string   // single-select commit
	selected []string // multi-select commits, insertion order
}

func New(mode Mode, candidates []string) *Picker {
	return &Picker{mode: mode, candidates: candidates}
}

// Input records typed text: the query is replaced, suggestions are
// recomputed and the panel opens. Matching no candidate is not an
// error; the suggestion list is simply empty.
func (p *Picker) Input(text string) {
	p.query = text
	p.recompute()
	p.open = true
}

// Focus opens the panel over the current suggestions, or over the full
// candidate set when nothing has been typed yet.
func (p *Picker) Focus() {
	p.recompute()
	p.open = true
}

// Select commits candidate. In single mode it becomes the value and is
// mirrored into the query; in multi mode it is appended unless already
// selected (a no-op then, not an error) and the query clears. Either way
// the panel closes. Strings outside the candidate set are ignored: the
// widget never commits unmatched free text.
func (p *Picker) Select(candidate string) {
	if !contains(p.candidates, candidate) {
		return
	}

	switch p.mode {
	case SingleSelect:
		p.value = candidate
		p.query = candidate
	case MultiSelect:
		if !contains(p.selected, candidate) {
			p.selected = append(p.selected, candidate)
		}
		p.query = ""
	}
	p.recompute()
	p.open = false
}

// Remove drops the first occurrence of candidate from the multi-select
// list; absent candidates are a no-op. Single mode ignores it.
func (p *Picker) Remove(candidate string) {
	if p.mode != MultiSelect {
		return
	}
	for i, s := range p.selected {
		if s == candidate {
			p.selected = append(p.selected[:i], p.selected[i+1:]...)
			break
		}
	}
	p.recompute()
}

// Dismiss closes the suggestion panel without committing anything.
func (p *Picker) Dismiss() {
	p.open = false
}

// Suggestions returns the current filtered subsequence of candidates.
// The returned slice is the caller's; later Input/Select calls do not
// mutate it.
func (p *Picker) Suggestions() []string {
	out := make([]string, len(p.filtered))
	copy(out, p.filtered)
	return out
}

func (p *Picker) Open() bool    { return p.open }
func (p *Picker) Query() string { return p.query }

// Value is the committed single-select value; empty until a selection
// was made.
func (p *Picker) Value() string { return p.value }

// Selected is the multi-select commits in insertion order.
func (p *Picker) Selected() []string { return p.selected }

// recompute rebuilds filtered: candidates whose lowercase form contains
// the lowercase query, minus already-selected entries in multi mode.
// Candidate order is preserved.
func (p *Picker) recompute() {
	needle := strings.ToLower(p.query)
	p.filtered = p.filtered[:0]
	for _, c := range p.candidates {
		if !strings.Contains(strings.ToLower(c), needle) {
			continue
		}
		if p.mode == MultiSelect && contains(p.selected, c) {
			continue
		}
		p.filtered = append(p.filtered, c)
	}
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
