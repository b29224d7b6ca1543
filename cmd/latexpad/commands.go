package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/tesso57/latexpad/internal/application/widget"
	"github.com/tesso57/latexpad/internal/domain/catalog"
	"github.com/tesso57/latexpad/internal/infrastructure/htmlhost"
	"github.com/tesso57/latexpad/internal/infrastructure/logging"
	"github.com/tesso57/latexpad/internal/infrastructure/sheet"
	"github.com/tesso57/latexpad/internal/presentation/tui"
)

// ComposeCmd runs the terminal composer.
type ComposeCmd struct {
	Print bool `help:"Print the final formula to stdout on exit"`
}

// Run implements the compose command.
func (c *ComposeCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	backend, err := newBackend(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m, err := tui.NewModel(ctx, cfg, backend, logging.Logger)
	if err != nil {
		return err
	}
	_, runErr := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	m.Close()
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return errors.Wrap(runErr, "run composer")
	}
	if c.Print {
		fmt.Println(m.Formula())
	}
	return nil
}

// RenderCmd typesets a single formula.
type RenderCmd struct {
	Formula string `arg:"" help:"LaTeX source without delimiters"`
}

// Run implements the render command.
func (c *RenderCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	backend, err := newBackend(cfg)
	if err != nil {
		return err
	}
	d := cfg.EffectiveDelimiters()
	if err := backend.Configure(d); err != nil {
		return err
	}

	out := &surface{text: d.Wrap(c.Formula)}
	if err := backend.Typeset(context.Background(), out); err != nil {
		return errors.Wrapf(err, "typeset with %s", backend.Name())
	}
	fmt.Println(out.Result())
	return nil
}

// HTMLCmd installs the composer into a page and writes the result.
type HTMLCmd struct {
	Page   string   `help:"HTML page defining the regions (built-in template when empty)" type:"existingfile"`
	Out    string   `help:"Output file (stdout when empty)" short:"o" type:"path"`
	Select int      `help:"Category to show" default:"0"`
	Append []string `help:"Snippets to append in order; catalog snippets press their button"`
}

// Run implements the html command.
func (c *HTMLCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	backend, err := newBackend(cfg)
	if err != nil {
		return err
	}

	cat, err := catalog.Default(cfg.Labels)
	if err != nil {
		return err
	}
	page, err := c.loadPage()
	if err != nil {
		return err
	}

	log := logging.Logger
	w, err := widget.New(page, widget.Options{
		Rendered:   widget.ByKey[widget.Surface](widget.RenderedKey),
		Input:      widget.ByKey[widget.Input](widget.InputKey),
		Selector:   widget.ByKey[widget.Selector](widget.SelectorKey),
		Palette:    widget.ByKey[widget.Palette](widget.PaletteKey),
		Labels:     cfg.Labels,
		Delimiters: cfg.EffectiveDelimiters(),
		Backend:    backend,
		Scheduler: widget.Immediate{OnError: func(key string, err error) {
			log.Warnw("typeset failed", "key", key, "error", err)
		}},
		Logger: log,
	})
	if err != nil {
		return err
	}
	defer w.Close()

	if head, ok := backend.(htmlhost.HeadContributor); ok {
		if err := page.AddHead(head); err != nil {
			return err
		}
	}
	if c.Select != 0 {
		if err := page.Change(widget.SelectorKey, c.Select); err != nil {
			return err
		}
	}
	for _, s := range c.Append {
		if err := c.append(page, w, cat, s); err != nil {
			return err
		}
	}
	log.Debugw("page composed", "category", w.State().Active, "formula", w.Render())

	return c.write(page)
}

func (c *HTMLCmd) loadPage() (*htmlhost.Page, error) {
	if c.Page == "" {
		return htmlhost.Template()
	}
	f, err := os.Open(c.Page)
	if err != nil {
		return nil, errors.Wrap(err, "open page")
	}
	defer func() { _ = f.Close() }()
	return htmlhost.Load(f)
}

func (c *HTMLCmd) append(page *htmlhost.Page, w *widget.Widget, cat *catalog.Catalog, snippet string) error {
	if category, index, ok := cat.Find(snippet); ok {
		return page.Press(widget.PaletteKey, category, index)
	}
	return page.Input(widget.InputKey, w.Buffer()+snippet)
}

func (c *HTMLCmd) write(page *htmlhost.Page) error {
	if c.Out == "" {
		return page.Render(os.Stdout)
	}
	f, err := os.Create(c.Out)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	if err := page.Render(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// CatalogCmd prints or exports the symbol catalog.
type CatalogCmd struct {
	XLSX string `name:"xlsx" help:"Write the catalog as an Excel workbook to this file" type:"path"`
}

// Run implements the catalog command.
func (c *CatalogCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	cat, err := catalog.Default(cfg.Labels)
	if err != nil {
		return err
	}
	d := cfg.EffectiveDelimiters()

	if c.XLSX != "" {
		if err := sheet.Export(c.XLSX, cat, d); err != nil {
			return err
		}
		logging.Logger.Infow("catalog exported", "path", c.XLSX, "categories", cat.Len())
		return nil
	}
	return listCatalog(os.Stdout, cat)
}

func listCatalog(w io.Writer, cat *catalog.Catalog) error {
	for i, c := range cat.Categories() {
		if _, err := fmt.Fprintf(w, "%d. %s (%d)\n   %s\n", i, c.Label, len(c.Snippets), strings.Join(c.Snippets, " ")); err != nil {
			return err
		}
	}
	return nil
}

// surface is a standalone output region for one-shot typesetting.
type surface struct {
	mu     sync.Mutex
	text   string
	markup string
}

func (s *surface) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

func (s *surface) SetText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = text
	s.markup = ""
}

func (s *surface) SetMarkup(markup string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.markup = markup
}

// Result returns the markup when the backend produced any, else the text.
func (s *surface) Result() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.markup != "" {
		return s.markup
	}
	return s.text
}
