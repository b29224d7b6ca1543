// Package htmlhost hosts the composer inside a static HTML page. Regions are
// elements looked up by id; events are simulated through Page methods since
// nothing runs a browser.
package htmlhost

import (
	"fmt"
	"io"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/cockroachdb/errors"
	"github.com/tesso57/latexpad/internal/domain/fault"
)

// HeadContributor supplies markup for the page head, such as a typesetting
// configuration script.
type HeadContributor interface {
	HeadHTML() (string, error)
}

// Page is a parsed HTML document acting as a widget.Locator.
type Page struct {
	mu      sync.Mutex
	doc     *goquery.Document
	regions map[string]any
	heads   []string
}

// Load parses an HTML page.
func Load(r io.Reader) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "parse page")
	}
	return &Page{doc: doc, regions: make(map[string]any)}, nil
}

// Lookup resolves key to the element with that id. The returned region
// depends on the element kind: textarea and input give an *Input, select a
// *Selector, anything else an *Element.
func (p *Page) Lookup(key string) (any, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if r, ok := p.regions[key]; ok {
		return r, true
	}
	sel := p.doc.Find(fmt.Sprintf("[id=%q]", key)).First()
	if sel.Length() == 0 {
		return nil, false
	}
	var r any
	switch goquery.NodeName(sel) {
	case "textarea", "input":
		r = &Input{page: p, sel: sel}
	case "select":
		r = &Selector{page: p, sel: sel}
	default:
		r = &Element{page: p, sel: sel}
	}
	p.regions[key] = r
	return r, true
}

// AddHead queues markup from c for the page head.
func (p *Page) AddHead(c HeadContributor) error {
	h, err := c.HeadHTML()
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.heads = append(p.heads, h)
	return nil
}

// Change simulates choosing option index of the selector with id key.
func (p *Page) Change(key string, index int) error {
	s, err := region[*Selector](p, key, "select")
	if err != nil {
		return err
	}
	return s.Choose(index)
}

// Press simulates clicking button index of category in the palette with id
// key.
func (p *Page) Press(key string, category, index int) error {
	e, err := region[*Element](p, key, "palette")
	if err != nil {
		return err
	}
	return e.Click(category, index)
}

// Input simulates the user replacing the text of the input with id key.
func (p *Page) Input(key, text string) error {
	in, err := region[*Input](p, key, "textarea")
	if err != nil {
		return err
	}
	in.Type(text)
	return nil
}

// Render writes the page with every region brought up to date.
func (p *Page) Render(w io.Writer) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, r := range p.regions {
		if e, ok := r.(*Element); ok {
			e.flush()
		}
	}
	head := p.doc.Find("head")
	for _, h := range p.heads {
		head.AppendHtml(h)
	}
	p.heads = nil
	out, err := p.doc.Html()
	if err != nil {
		return errors.Wrap(err, "render page")
	}
	_, err = io.WriteString(w, out)
	return err
}

func region[T any](p *Page, key, kind string) (T, error) {
	var zero T
	r, ok := p.Lookup(key)
	if !ok {
		return zero, fault.NotFound("no element with id %q", key)
	}
	t, ok := r.(T)
	if !ok {
		return zero, fault.Configuration("element %q is not a %s", key, kind)
	}
	return t, nil
}
