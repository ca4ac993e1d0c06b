// Package wsf reads Windows Script File descriptors.
package wsf

import (
	"errors"
	"io"
	"path/filepath"
	"strings"

	"go.trai.ch/wshpack/internal/core/domain"
	"go.trai.ch/wshpack/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/net/html"
)

var _ ports.DescriptorParser = (*Parser)(nil)

// markupTags are job children copied verbatim into .wsf bundles.
var markupTags = map[string]bool{
	"object":    true,
	"reference": true,
	"resource":  true,
	"runtime":   true,
}

// Parser implements ports.DescriptorParser with a lenient HTML tokenizer,
// accepting the same loose markup the script host does.
type Parser struct {
	reader ports.SourceReader
}

// NewParser creates a new Parser reading descriptors through reader.
func NewParser(reader ports.SourceReader) *Parser {
	return &Parser{reader: reader}
}

// Parse reads the descriptor at path.
func (p *Parser) Parse(path string) (*domain.Package, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve descriptor path"), "path", path)
	}

	text, err := p.reader.ReadText(abs, "")
	if err != nil {
		return nil, err
	}

	pkg, err := ParseString(text)
	if err != nil {
		return nil, zerr.With(err, "path", abs)
	}
	pkg.Path = abs

	return pkg, nil
}

// ParseString parses descriptor markup. The returned package has no path.
func ParseString(text string) (*domain.Package, error) {
	s := &scanner{z: html.NewTokenizer(strings.NewReader(text)), ids: map[string]bool{}}
	if err := s.run(); err != nil {
		return nil, err
	}

	if len(s.jobs) == 0 {
		if !s.sawPackage {
			return nil, zerr.Wrap(domain.ErrNoPackage, "descriptor declares neither package nor job")
		}
		return nil, zerr.Wrap(domain.ErrNoJob, "package declares no job")
	}

	return &domain.Package{Jobs: s.jobs}, nil
}

type scanner struct {
	z          *html.Tokenizer
	jobs       []domain.Job
	current    *domain.Job
	sawPackage bool
	ids        map[string]bool
}

func (s *scanner) run() error {
	for {
		tt := s.z.Next()
		switch tt {
		case html.ErrorToken:
			if errors.Is(s.z.Err(), io.EOF) {
				return s.closeJob()
			}
			return zerr.Wrap(domain.ErrInvalidDescriptor, s.z.Err().Error())

		case html.StartTagToken, html.SelfClosingTagToken:
			if err := s.startTag(tt == html.SelfClosingTagToken); err != nil {
				return err
			}

		case html.EndTagToken:
			name, _ := s.z.TagName()
			if string(name) == "job" {
				if err := s.closeJob(); err != nil {
					return err
				}
			}

		default:
			// Text between elements, comments, <?xml?> and doctype carry nothing.
		}
	}
}

func (s *scanner) startTag(selfClosing bool) error {
	name, hasAttr := s.z.TagName()
	tag := string(name)
	attrs := readAttrs(s.z, hasAttr)

	switch {
	case tag == "package":
		s.sawPackage = true

	case tag == "job":
		if err := s.closeJob(); err != nil {
			return err
		}
		s.current = &domain.Job{ID: strings.TrimSpace(attrs["id"])}
		if selfClosing {
			return s.closeJob()
		}

	case tag == "script":
		return s.script(attrs, selfClosing)

	case markupTags[tag] && s.current != nil:
		s.current.Markup = append(s.current.Markup, s.captureMarkup(tag, selfClosing))
	}

	return nil
}

func (s *scanner) script(attrs map[string]string, selfClosing bool) error {
	var body string
	if selfClosing {
		// The tokenizer switches to raw text after any <script> start tag.
		s.z.NextIsNotRawText()
	} else {
		body = s.scriptBody()
	}

	// Scripts outside a job are discarded, whatever their language.
	if s.current == nil {
		return nil
	}

	lang, err := domain.ParseLanguage(attrs["language"])
	if err != nil {
		return err
	}

	ref := domain.ScriptRef{Language: lang, Src: strings.TrimSpace(attrs["src"])}
	if ref.Src == "" {
		ref.Inline = body
		if strings.TrimSpace(body) == "" {
			return nil
		}
	}
	s.current.Scripts = append(s.current.Scripts, ref)

	return nil
}

// scriptBody consumes tokens up to the closing </script>.
func (s *scanner) scriptBody() string {
	var sb strings.Builder
	for {
		switch s.z.Next() {
		case html.ErrorToken:
			return stripCDATA(sb.String())
		case html.EndTagToken:
			if name, _ := s.z.TagName(); string(name) == "script" {
				return stripCDATA(sb.String())
			}
			sb.Write(s.z.Raw())
		default:
			sb.Write(s.z.Text())
		}
	}
}

// captureMarkup returns the raw element, including nested content for non-empty elements.
func (s *scanner) captureMarkup(tag string, selfClosing bool) string {
	var sb strings.Builder
	sb.Write(s.z.Raw())
	if selfClosing {
		return sb.String()
	}

	depth := 1
	for depth > 0 {
		tt := s.z.Next()
		if tt == html.ErrorToken {
			break
		}
		sb.Write(s.z.Raw())
		switch tt {
		case html.StartTagToken:
			if name, _ := s.z.TagName(); string(name) == tag {
				depth++
			}
		case html.EndTagToken:
			if name, _ := s.z.TagName(); string(name) == tag {
				depth--
			}
		}
	}

	return sb.String()
}

func (s *scanner) closeJob() error {
	if s.current == nil {
		return nil
	}
	job := *s.current
	s.current = nil

	if job.ID == "" {
		return zerr.Wrap(domain.ErrMissingJobID, "job without id attribute")
	}
	if s.ids[job.ID] {
		return zerr.With(zerr.Wrap(domain.ErrDuplicateJobID, "job declared twice"), "job", job.ID)
	}
	s.ids[job.ID] = true
	s.jobs = append(s.jobs, job)

	return nil
}

func readAttrs(z *html.Tokenizer, hasAttr bool) map[string]string {
	attrs := map[string]string{}
	for hasAttr {
		var key, val []byte
		key, val, hasAttr = z.TagAttr()
		attrs[strings.ToLower(string(key))] = string(val)
	}
	return attrs
}

func stripCDATA(body string) string {
	trimmed := strings.TrimSpace(body)
	if strings.HasPrefix(trimmed, "<![CDATA[") && strings.HasSuffix(trimmed, "]]>") {
		return strings.TrimSuffix(strings.TrimPrefix(trimmed, "<![CDATA["), "]]>")
	}
	return body
}
