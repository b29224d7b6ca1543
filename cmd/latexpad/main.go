// Command latexpad composes LaTeX formulas from a symbol palette.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/cockroachdb/errors"
	"github.com/tesso57/latexpad/internal/infrastructure/logging"
)

// Globals are flags shared by every command.
type Globals struct {
	Config  string `help:"Path to config file" type:"path"`
	Backend string `help:"Typesetting backend (unicode/mathml/mathjax), overrides the config" short:"b"`
}

// CLI is the command line of latexpad.
type CLI struct {
	Globals

	Compose ComposeCmd `cmd:"" default:"1" help:"Open the formula composer (default)"`
	Render  RenderCmd  `cmd:"" help:"Typeset a formula and print it"`
	HTML    HTMLCmd    `cmd:"" name:"html" help:"Install the composer into an HTML page"`
	Catalog CatalogCmd `cmd:"" help:"List the symbol catalog or export it as a spreadsheet"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("latexpad"),
		kong.Description("A LaTeX formula composer with a symbol palette and live preview."),
		kong.UsageOnError(),
	)
	err := ctx.Run(&cli.Globals)
	logging.Sync()
	if err != nil {
		report(err)
		os.Exit(1)
	}
}

func report(err error) {
	fmt.Fprintf(os.Stderr, "latexpad: %v\n", err)
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(os.Stderr, "hint: %s\n", hint)
	}
}
