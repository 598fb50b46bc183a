package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// markdownStyle is fixed; auto-detection queries the terminal and can block.
const markdownStyle = "dark"

var (
	mdRendererMu sync.Mutex
	mdRenderers  = map[int]*glamour.TermRenderer{}
)

// renderMarkdown renders note content for the preview pane. Rendering
// failures fall back to the raw text.
func renderMarkdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	mdRendererMu.Lock()
	defer mdRendererMu.Unlock()

	r := mdRenderers[width]
	if r == nil {
		var err error
		r, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle(markdownStyle),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		mdRenderers[width] = r
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
