package unicodemath

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-latex/latex"
	"github.com/go-latex/latex/ast"
)

// piece is one converted unit. Function names are kept apart from a
// following operand.
type piece struct {
	text string
	fn   bool
}

func join(ps []piece) string {
	var b strings.Builder
	for i, p := range ps {
		b.WriteString(p.text)
		if p.fn && i+1 < len(ps) {
			if r, _ := utf8.DecodeRuneInString(ps[i+1].text); unicode.IsLetter(r) || unicode.IsDigit(r) {
				b.WriteByte(' ')
			}
		}
	}
	return b.String()
}

// Convert renders a LaTeX math fragment as Unicode text. Commands it does
// not know are kept verbatim.
func Convert(src string) string {
	if out, ok := fromAST(src); ok {
		return tidy(out)
	}
	return tidy(join(newScanner(src).list(eof)))
}

func tidy(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// arity reports how many braced arguments a command takes and whether it
// accepts an optional bracketed one.
func arity(name string) (int, bool) {
	switch name {
	case "frac", "dfrac", "tfrac", "cfrac", "binom", "stackrel", "overset", "underset":
		return 2, false
	case "sqrt", "xrightarrow", "xleftarrow":
		return 1, true
	case "overbrace", "underbrace":
		return 1, false
	}
	if _, ok := fonts[name]; ok {
		return 1, false
	}
	if _, ok := accents[name]; ok {
		return 1, false
	}
	if textual[name] {
		return 1, false
	}
	return 0, false
}

// macro converts a command whose arguments are already converted.
func macro(name, opt string, args []string) string {
	switch name {
	case "frac", "dfrac", "tfrac", "cfrac":
		return wrap(args[0]) + "/" + wrap(args[1])
	case "binom":
		return "(" + args[0] + " choose " + args[1] + ")"
	case "sqrt":
		return radical(opt) + wrap(args[0])
	case "stackrel", "overset":
		return args[1] + script(superscripts, "^", args[0])
	case "underset":
		return args[1] + script(subscripts, "_", args[0])
	case "xrightarrow", "xleftarrow":
		arrow := "→"
		if name == "xleftarrow" {
			arrow = "←"
		}
		return arrow + script(superscripts, "^", args[0]) + script(subscripts, "_", opt)
	case "overbrace", "underbrace":
		return args[0]
	}
	if f, ok := fonts[name]; ok {
		return strings.Map(f.apply, args[0])
	}
	if mark, ok := accents[name]; ok {
		return accent(args[0], mark)
	}
	if textual[name] {
		return args[0]
	}
	if functions[name] {
		return name
	}
	if g, ok := symbols[name]; ok {
		return g
	}
	return `\` + name
}

func wrap(s string) string {
	if utf8.RuneCountInString(s) > 1 {
		return "(" + s + ")"
	}
	return s
}

func radical(index string) string {
	switch index {
	case "":
		return "√"
	case "3":
		return "∛"
	case "4":
		return "∜"
	}
	return script(superscripts, "^", index) + "√"
}

func accent(s string, mark rune) string {
	var b strings.Builder
	for _, r := range s {
		b.WriteRune(r)
		if !unicode.IsSpace(r) {
			b.WriteRune(mark)
		}
	}
	return b.String()
}

// script maps s through table, falling back to a caret or underscore form
// when a rune has no raised or lowered variant.
func script(table map[rune]rune, mark, s string) string {
	if s == "" {
		return ""
	}
	if out, ok := mapAll(table, s); ok {
		return out
	}
	return mark + wrap(s)
}

func mapAll(table map[rune]rune, s string) (string, bool) {
	var b strings.Builder
	for _, r := range s {
		m, ok := table[r]
		if !ok {
			return "", false
		}
		b.WriteRune(m)
	}
	return b.String(), true
}

// fromAST converts src through the go-latex parser. It reports false when
// the parser rejects the input or produces a shape the converter does not
// handle, in which case the scanner takes over. The parser drops spaces
// and has no environments, so text commands, alignment and environments
// always go to the scanner.
func fromAST(src string) (out string, ok bool) {
	if strings.ContainsAny(src, "&%$") || strings.Contains(src, `\begin`) || strings.Contains(src, `\\`) {
		return "", false
	}
	for name := range textual {
		if strings.Contains(src, `\`+name) {
			return "", false
		}
	}
	defer func() {
		if recover() != nil {
			out, ok = "", false
		}
	}()
	node, err := latex.ParseExpr("$" + src + "$")
	if err != nil {
		return "", false
	}
	ps, ok := walk(node)
	if !ok {
		return "", false
	}
	return join(ps), true
}

func walk(n ast.Node) ([]piece, bool) {
	switch n := n.(type) {
	case nil:
		return nil, true
	case ast.List:
		return walkList(n)
	case *ast.MathExpr:
		return walkList(n.List)
	case *ast.Arg:
		return group(n.List)
	case *ast.OptArg:
		return group(n.List)
	case *ast.Word:
		return []piece{{text: n.Text}}, true
	case *ast.Literal:
		return []piece{{text: n.Text}}, true
	case *ast.Symbol:
		return []piece{{text: n.Text}}, true
	case *ast.Sup:
		ps, ok := walk(n.Node)
		return []piece{{text: script(superscripts, "^", join(ps))}}, ok
	case *ast.Sub:
		ps, ok := walk(n.Node)
		return []piece{{text: script(subscripts, "_", join(ps))}}, ok
	case *ast.Macro:
		return walkMacro(n)
	}
	return nil, false
}

func walkList(nodes []ast.Node) ([]piece, bool) {
	var out []piece
	for _, n := range nodes {
		ps, ok := walk(n)
		if !ok {
			return nil, false
		}
		out = append(out, ps...)
	}
	return out, true
}

func group(nodes []ast.Node) ([]piece, bool) {
	ps, ok := walkList(nodes)
	if !ok {
		return nil, false
	}
	return []piece{{text: join(ps)}}, true
}

func walkMacro(m *ast.Macro) ([]piece, bool) {
	if m.Name == nil {
		return nil, false
	}
	name := strings.TrimPrefix(m.Name.Name, `\`)
	if r, size := utf8.DecodeRuneInString(name); size == len(name) && !isLetter(r) {
		g, ok := escapes[r]
		return []piece{{text: g}}, ok
	}
	if sizing[name] || name == "begin" || name == "end" {
		return nil, false
	}
	var (
		opt  string
		args []string
	)
	for _, a := range m.Args {
		ps, ok := walk(a)
		if !ok {
			return nil, false
		}
		if _, isOpt := a.(*ast.OptArg); isOpt {
			opt = join(ps)
			continue
		}
		args = append(args, join(ps))
	}
	if want, _ := arity(name); len(args) != want {
		return nil, false
	}
	return []piece{{text: macro(name, opt, args), fn: functions[name]}}, true
}
