package nav

import "sync"

// History abstracts the ambient navigation primitives. The Synchronizer is
// the only component allowed to call these.
type History interface {
	// Push appends a new entry and makes it current.
	Push(path string)
	// Replace swaps the current entry in place, without growing the stack.
	Replace(path string)
	// Path returns the current entry.
	Path() string
}

// MemoryHistory is an in-process History with a back/forward stack, used by
// the dashboard shell and by tests. Stepping back or forward yields the new
// current path; feed it to Synchronizer.HandleLocationChange the way a
// browser delivers popstate.
type MemoryHistory struct {
	mu      sync.Mutex
	entries []string
	pos     int
}

// NewMemoryHistory creates a history whose single entry is initial.
func NewMemoryHistory(initial string) *MemoryHistory {
	return &MemoryHistory{entries: []string{initial}}
}

// Push drops any forward entries and appends path.
func (h *MemoryHistory) Push(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries[:h.pos+1], path)
	h.pos++
}

// Replace swaps the current entry.
func (h *MemoryHistory) Replace(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries[h.pos] = path
}

// Path returns the current entry.
func (h *MemoryHistory) Path() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.pos]
}

// Back steps to the previous entry, reporting whether a step was possible.
func (h *MemoryHistory) Back() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.pos == 0 {
		return h.entries[h.pos], false
	}
	h.pos--
	return h.entries[h.pos], true
}

// Forward steps to the next entry, reporting whether a step was possible.
func (h *MemoryHistory) Forward() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.pos == len(h.entries)-1 {
		return h.entries[h.pos], false
	}
	h.pos++
	return h.entries[h.pos], true
}

// Len returns the number of entries on the stack.
func (h *MemoryHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}
