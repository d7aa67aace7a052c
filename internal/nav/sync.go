package nav

import (
	"sync"

	"github.com/socceo/socceo/internal/models"
)

// Options carries deep-link context supplied by the outer application
// shell: a pre-set category filter and/or a named section to scroll to on
// entry instead of the top.
type Options struct {
	Category string
	Section  string
}

// ScrollFunc positions the library's content region. The empty section
// means the top.
type ScrollFunc func(section string)

// ExitFunc hands control back to the outer application shell.
type ExitFunc func()

// Synchronizer reconciles the library view with the address path. The path
// and the view are always updated together under one lock, so no observer
// sees a path inconsistent with the displayed view.
type Synchronizer struct {
	mu      sync.Mutex
	resolve Resolver
	history History
	scroll  ScrollFunc
	onExit  ExitFunc

	view     View
	active   *models.Post
	category string
}

// NewSynchronizer creates a synchronizer over the given slug resolver and
// history. scroll and onExit may be nil.
func NewSynchronizer(resolve Resolver, history History, scroll ScrollFunc, onExit ExitFunc) *Synchronizer {
	if scroll == nil {
		scroll = func(string) {}
	}
	if onExit == nil {
		onExit = func() {}
	}
	return &Synchronizer{
		resolve: resolve,
		history: history,
		scroll:  scroll,
		onExit:  onExit,
		view:    ViewHome,
	}
}

// Mount derives the initial state. Priority: an explicit initial post from
// the outer shell wins; otherwise the current path is parsed; otherwise
// HOME. Path normalization on mount never creates a history entry.
func (s *Synchronizer) Mount(initial *models.Post, opts Options) {
	s.mu.Lock()
	s.category = opts.Category

	if initial != nil {
		s.view = ViewForType(initial.Type)
		s.active = initial
		if canonical := PostPath(initial); s.history.Path() != canonical {
			s.history.Replace(canonical)
		}
	} else {
		st := Resolve(s.history.Path(), s.resolve)
		if st.NeedsRewrite {
			s.history.Replace(st.CanonicalPath)
		}
		s.view = st.View
		s.active = st.Post
	}
	s.mu.Unlock()

	s.scroll(opts.Section)
}

// OpenInsight shows an insight, pushing its canonical path. A nil or
// non-insight post is a silent no-op.
func (s *Synchronizer) OpenInsight(p *models.Post) {
	if p == nil || p.Type != models.TypeInsight {
		return
	}
	s.open(p)
}

// OpenFramework shows a framework, pushing its canonical path. A nil or
// non-framework post is a silent no-op.
func (s *Synchronizer) OpenFramework(p *models.Post) {
	if p == nil || p.Type != models.TypeFramework {
		return
	}
	s.open(p)
}

// OpenSlug resolves a slug and opens the matching post. An unresolvable
// slug leaves the state machine in place.
func (s *Synchronizer) OpenSlug(sl string) {
	p, ok := s.resolve(sl)
	if !ok {
		return
	}
	s.open(p)
}

func (s *Synchronizer) open(p *models.Post) {
	s.mu.Lock()
	s.view = ViewForType(p.Type)
	s.active = p
	s.history.Push(PostPath(p))
	s.mu.Unlock()

	s.scroll("")
}

// ShowAllPosts switches HOME to the full list. The list shares the base
// path, so the address bar does not change.
func (s *Synchronizer) ShowAllPosts() {
	s.mu.Lock()
	if s.view != ViewHome {
		s.mu.Unlock()
		return
	}
	s.view = ViewAllPosts
	s.mu.Unlock()

	s.scroll("")
}

// Back returns to HOME from any open post or the full list, pushing the
// base path. From HOME it pushes the site root and hands control to the
// outer shell.
func (s *Synchronizer) Back() {
	s.mu.Lock()
	if s.view == ViewHome {
		s.history.Push("/")
		s.mu.Unlock()
		s.onExit()
		return
	}
	s.view = ViewHome
	s.active = nil
	s.history.Push(BasePath)
	s.mu.Unlock()

	s.scroll("")
}

// HandleLocationChange reacts to a native back/forward event: state is
// derived fresh from the resulting path with the same rules as mount-time
// parsing. The synchronizer never assumes its own pushes are the only way
// the path changes.
func (s *Synchronizer) HandleLocationChange(path string) {
	s.mu.Lock()
	st := Resolve(path, s.resolve)
	if st.NeedsRewrite {
		s.history.Replace(st.CanonicalPath)
	}
	s.view = st.View
	s.active = st.Post
	s.mu.Unlock()

	s.scroll("")
}

// View returns the current view.
func (s *Synchronizer) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// ActivePost returns the currently open post, or nil.
func (s *Synchronizer) ActivePost() *models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Category returns the category filter supplied at mount, if any.
func (s *Synchronizer) Category() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.category
}
