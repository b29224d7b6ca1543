// Package sheet exports the symbol catalog as an Excel cheat sheet.
package sheet

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/tesso57/latexpad/internal/domain/catalog"
	"github.com/tesso57/latexpad/internal/domain/compose"
	"github.com/tesso57/latexpad/internal/infrastructure/typeset/unicodemath"
	"github.com/xuri/excelize/v2"
)

const maxSheetName = 31

// Header is the first row of every category sheet.
var Header = []interface{}{"#", "snippet", "button", "preview"}

// Build writes one sheet per category: the snippet index, the raw
// snippet, the delimited button text and a Unicode preview.
func Build(cat *catalog.Catalog, d compose.Delimiters) (*excelize.File, error) {
	f := excelize.NewFile()
	first := f.GetSheetName(0)
	used := make(map[string]bool)
	for i, c := range cat.Categories() {
		name := uniqueName(SheetName(c.Label, i), used)
		if i == 0 {
			if err := f.SetSheetName(first, name); err != nil {
				return nil, errors.Wrapf(err, "rename sheet %q", first)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return nil, errors.Wrapf(err, "add sheet %q", name)
		}
		if err := writeCategory(f, name, c, d); err != nil {
			return nil, errors.Wrapf(err, "write sheet %q", name)
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

func writeCategory(f *excelize.File, sheet string, c catalog.Category, d compose.Delimiters) error {
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}
	if err := sw.SetRow("A1", Header); err != nil {
		return err
	}
	for j, snippet := range c.Snippets {
		row := []interface{}{j, snippet, d.Wrap(snippet), unicodemath.Convert(snippet)}
		cell, err := excelize.CoordinatesToCellName(1, j+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}
	return sw.Flush()
}

// Export builds the workbook and saves it to path.
func Export(path string, cat *catalog.Catalog, d compose.Delimiters) error {
	f, err := Build(cat, d)
	if err != nil {
		return err
	}
	defer f.Close()
	return errors.Wrapf(f.SaveAs(path), "save %s", path)
}

// Write builds the workbook and writes it to w.
func Write(w io.Writer, cat *catalog.Catalog, d compose.Delimiters) error {
	f, err := Build(cat, d)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteTo(w)
	return err
}

// SheetName turns a category label into a valid worksheet name.
func SheetName(label string, index int) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '-'
		}
		return r
	}, strings.TrimSpace(label))
	name = strings.Trim(name, "'")
	if name == "" {
		return fmt.Sprintf("Category %d", index+1)
	}
	return truncate(name, maxSheetName)
}

func uniqueName(name string, used map[string]bool) string {
	candidate := name
	for n := 2; used[strings.ToLower(candidate)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		candidate = truncate(name, maxSheetName-len(suffix)) + suffix
	}
	used[strings.ToLower(candidate)] = true
	return candidate
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
