package router

import "github.com/google/uuid"

// Entry represents a single resolved route on the history stack.
// It stores the route identifier, the concrete path that was built for it,
// the parameter values used, and any resume state recorded by the screen.
type Entry struct {
	Key    string // unique per entry, stable for the entry's lifetime
	Route  string // registry identifier, the static prefix of Path
	Path   string // concrete route string, e.g. "exercise_detail/7"
	Params Params
	Resume any
}

// Stack manages navigation history.
// The Router is its only writer.
type Stack struct {
	entries []Entry
}

// NewStack creates a new empty navigation stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]Entry, 0),
	}
}

// Push adds a new entry to the stack and returns it.
func (s *Stack) Push(route, path string, params Params, resume any) Entry {
	entry := Entry{
		Key:    uuid.NewString(),
		Route:  route,
		Path:   path,
		Params: params,
		Resume: resume,
	}
	s.entries = append(s.entries, entry)
	return entry
}

// Pop removes and returns the top entry from the stack.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *Entry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the top entry without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *Entry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// IndexFromTop returns the index of the topmost entry whose route identifier
// or concrete path equals target, or -1.
func (s *Stack) IndexFromTop(target string) int {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].Route == target || s.entries[i].Path == target {
			return i
		}
	}
	return -1
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the entries, bottom first.
func (s *Stack) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Clear removes all entries from the stack.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}
