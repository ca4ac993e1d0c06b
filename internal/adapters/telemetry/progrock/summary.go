package progrock

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/vito/progrock"
	"go.trai.ch/wshpack/internal/ui/output"
	"go.trai.ch/wshpack/internal/ui/style"
)

// Summary is a progrock.Writer that prints one line per vertex when closed.
type Summary struct {
	mu       sync.Mutex
	w        io.Writer
	renderer *lipgloss.Renderer
	order    []string
	vertexes map[string]*progrock.Vertex
	closed   bool
}

// NewSummary creates a Summary printing to w.
func NewSummary(w io.Writer) *Summary {
	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(output.ColorProfile())

	return &Summary{
		w:        w,
		renderer: renderer,
		vertexes: make(map[string]*progrock.Vertex),
	}
}

// WriteStatus records the latest state of every vertex in the update.
func (s *Summary) WriteStatus(update *progrock.StatusUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range update.GetVertexes() {
		if _, seen := s.vertexes[v.GetId()]; !seen {
			s.order = append(s.order, v.GetId())
		}
		s.vertexes[v.GetId()] = v
	}
	return nil
}

// Close renders the summary. Further calls are no-ops.
func (s *Summary) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || len(s.order) == 0 {
		s.closed = true
		return nil
	}
	s.closed = true

	var b strings.Builder
	var done, cached, failed int
	for _, id := range s.order {
		v := s.vertexes[id]
		switch {
		case v.GetError() != "":
			failed++
		case v.GetCached():
			cached++
		case v.GetCompleted() != nil:
			done++
		}
		b.WriteString(s.line(v))
		b.WriteByte('\n')
	}

	counts := fmt.Sprintf("%d done, %d cached, %d failed", done, cached, failed)
	b.WriteString(s.renderer.NewStyle().Foreground(style.Slate).Render(counts))
	b.WriteByte('\n')

	_, err := io.WriteString(s.w, b.String())
	return err
}

func (s *Summary) line(v *progrock.Vertex) string {
	icon := s.renderer.NewStyle().Bold(true)
	name := v.GetName()

	switch {
	case v.GetError() != "":
		return icon.Foreground(style.Red).Render(style.Cross) + " " + name + ": " + v.GetError()
	case v.GetCached():
		return icon.Foreground(style.Accent).Render(style.Tilde) + " " + name + " (cached)"
	case v.GetCompleted() != nil:
		line := icon.Foreground(style.Green).Render(style.Check) + " " + name
		if started := v.GetStarted(); started != nil {
			elapsed := v.GetCompleted().AsTime().Sub(started.AsTime())
			line += " " + s.renderer.NewStyle().Foreground(style.Slate).Render(elapsed.Round(time.Millisecond).String())
		}
		return line
	default:
		return icon.Foreground(style.Yellow).Render(style.Dot) + " " + name + " (interrupted)"
	}
}
