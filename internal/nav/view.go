// Package nav keeps the library view and the browser address path mutually
// consistent. The path↔state mapping is pure; the Synchronizer is the only
// component that touches the navigation primitives, so everything is
// testable without a browser.
package nav

import "github.com/socceo/socceo/internal/models"

// View is one of the four states of the library screen.
type View string

const (
	ViewHome      View = "HOME"
	ViewAllPosts  View = "ALL_POSTS"
	ViewArticle   View = "ARTICLE"
	ViewFramework View = "FRAMEWORK"
)

// ViewForType maps a post type to the view that displays it.
func ViewForType(t models.PostType) View {
	if t == models.TypeInsight {
		return ViewArticle
	}
	return ViewFramework
}
