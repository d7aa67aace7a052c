package nav

import (
	"strings"

	"github.com/socceo/socceo/internal/models"
	"github.com/socceo/socceo/internal/slug"
)

// BasePath is the library home path.
const BasePath = "/blog"

const (
	segInsight   = "insight"
	segFramework = "framework"
)

// Resolver looks a post up by slug.
type Resolver func(slug string) (*models.Post, bool)

// State is the result of resolving an address path.
type State struct {
	View          View
	Post          *models.Post
	CanonicalPath string
	// NeedsRewrite is set when the given path was a legacy form and the
	// address bar should be rewritten to CanonicalPath without creating a
	// new history entry.
	NeedsRewrite bool
}

func typeSegment(t models.PostType) string {
	if t == models.TypeInsight {
		return segInsight
	}
	return segFramework
}

// PostPath returns the canonical three-segment path for a post.
func PostPath(p *models.Post) string {
	return BasePath + "/" + typeSegment(p.Type) + "/" + slug.Make(p.Title)
}

// PathFromState maps a view and active post to the address path. HOME and
// ALL_POSTS share the base path; the full list is not address-mapped.
func PathFromState(v View, post *models.Post) string {
	if (v == ViewArticle || v == ViewFramework) && post != nil {
		return PostPath(post)
	}
	return BasePath
}

// Resolve parses an address path into view state using the given slug
// resolver. Accepted shapes:
//
//	/blog                      → HOME
//	/blog/insight/<slug>       → ARTICLE when a matching insight exists
//	/blog/framework/<slug>     → FRAMEWORK when a matching framework exists
//	/blog/<slug>               → legacy; resolves by slug alone and reports
//	                             NeedsRewrite to the canonical form
//
// Anything unresolvable falls back to HOME with no active post.
func Resolve(path string, resolve Resolver) State {
	home := State{View: ViewHome, CanonicalPath: BasePath}

	trimmed := strings.TrimSuffix(path, "/")
	if trimmed == "" || trimmed == BasePath {
		return home
	}
	if !strings.HasPrefix(trimmed, BasePath+"/") {
		return home
	}

	segs := strings.Split(strings.TrimPrefix(trimmed, BasePath+"/"), "/")
	switch len(segs) {
	case 1:
		// Legacy two-segment form: type omitted, resolve by slug alone.
		p, ok := resolve(segs[0])
		if !ok {
			return home
		}
		return State{
			View:          ViewForType(p.Type),
			Post:          p,
			CanonicalPath: PostPath(p),
			NeedsRewrite:  true,
		}
	case 2:
		seg, sl := segs[0], segs[1]
		if seg != segInsight && seg != segFramework {
			return home
		}
		p, ok := resolve(sl)
		if !ok || typeSegment(p.Type) != seg {
			return home
		}
		return State{
			View:          ViewForType(p.Type),
			Post:          p,
			CanonicalPath: PostPath(p),
		}
	default:
		return home
	}
}
