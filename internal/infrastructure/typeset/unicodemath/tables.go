package unicodemath

// symbols maps argument-less commands to glyphs.
var symbols = map[string]string{
	// Greek
	"alpha": "α", "beta": "β", "gamma": "γ", "delta": "δ", "epsilon": "ϵ",
	"varepsilon": "ε", "zeta": "ζ", "eta": "η", "theta": "θ", "vartheta": "ϑ",
	"iota": "ι", "kappa": "κ", "lambda": "λ", "mu": "μ", "nu": "ν", "xi": "ξ",
	"pi": "π", "varpi": "ϖ", "rho": "ρ", "varrho": "ϱ", "sigma": "σ",
	"varsigma": "ς", "tau": "τ", "upsilon": "υ", "phi": "ϕ", "varphi": "φ",
	"chi": "χ", "psi": "ψ", "omega": "ω",
	"Gamma": "Γ", "Delta": "Δ", "Theta": "Θ", "Lambda": "Λ", "Xi": "Ξ",
	"Pi": "Π", "Sigma": "Σ", "Upsilon": "Υ", "Phi": "Φ", "Psi": "Ψ", "Omega": "Ω",

	// relations
	"leq": "≤", "le": "≤", "geq": "≥", "ge": "≥", "neq": "≠", "ne": "≠",
	"equiv": "≡", "approx": "≈", "approxeq": "≊", "sim": "∼", "simeq": "≃",
	"cong": "≅", "ncong": "≇", "nsim": "≁", "propto": "∝", "varpropto": "∝",
	"ll": "≪", "gg": "≫", "lll": "⋘", "ggg": "⋙", "leqq": "≦", "geqq": "≧",
	"leqslant": "⩽", "geqslant": "⩾", "lneq": "⪇", "gneq": "⪈", "lneqq": "≨",
	"gneqq": "≩", "lnsim": "⋦", "gnsim": "⋧", "lnapprox": "⪉", "gnapprox": "⪊",
	"lvertneqq": "≨", "gvertneqq": "≩",
	"nleq": "≰", "ngeq": "≱", "nless": "≮", "ngtr": "≯", "nleqq": "≰",
	"ngeqq": "≱", "nleqslant": "⪇", "ngeqslant": "⪈",
	"lesssim": "≲", "gtrsim": "≳", "lessapprox": "⪅", "gtrapprox": "⪆",
	"lessgtr": "≶", "gtrless": "≷", "lesseqgtr": "⋚", "gtreqless": "⋛",
	"lesseqqgtr": "⪋", "gtreqqless": "⪌", "lessdot": "⋖", "gtrdot": "⋗",
	"eqslantgtr": "⪖", "prec": "≺", "succ": "≻", "preceq": "⪯", "succeq": "⪰",
	"preccurlyeq": "≼", "succcurlyeq": "≽", "precsim": "≾", "succsim": "≿",
	"precapprox": "⪷", "succapprox": "⪸", "precnapprox": "⪹",
	"succnapprox": "⪺", "precnsim": "⋨", "succnsim": "⋩", "nprec": "⊀",
	"nsucc": "⊁", "npreceq": "⋠", "nsucceq": "⋡", "curlyeqprec": "⋞",
	"curlyeqsucc": "⋟",
	"subset": "⊂", "supset": "⊃", "subseteq": "⊆", "supseteq": "⊇",
	"subseteqq": "⫅", "supseteqq": "⫆", "subsetneq": "⊊", "supsetneq": "⊋",
	"subsetneqq": "⫋", "supsetneqq": "⫌", "varsubsetneqq": "⫋",
	"varsupsetneq": "⊋", "varsupsetneqq": "⫌", "nsubseteq": "⊈",
	"nsupseteq": "⊉", "nsupseteqq": "⊉", "Subset": "⋐", "Supset": "⋑",
	"sqsubseteq": "⊑", "sqsupseteq": "⊒",
	"in": "∈", "ni": "∋", "notin": "∉", "mid": "∣", "nmid": "∤",
	"shortmid": "∣", "nshortmid": "∤", "parallel": "∥", "nparallel": "∦",
	"shortparallel": "∥", "nshortparallel": "∦", "perp": "⊥",
	"vdash": "⊢", "dashv": "⊣", "vDash": "⊨", "Vdash": "⊩", "Vvdash": "⊪",
	"nvdash": "⊬", "nvDash": "⊭", "nVDash": "⊯", "models": "⊨",
	"doteq": "≐", "doteqdot": "≑", "risingdotseq": "≓", "fallingdotseq": "≒",
	"eqcirc": "≖", "circeq": "≗", "triangleq": "≜", "bumpeq": "≏",
	"Bumpeq": "≎", "thicksim": "∼", "thickapprox": "≈", "backsim": "∽",
	"backsimeq": "⋍", "asymp": "≍", "between": "≬", "pitchfork": "⋔",
	"smile": "⌣", "frown": "⌢", "smallsmile": "⌣", "smallfrown": "⌢",
	"bowtie": "⋈", "Join": "⋈", "therefore": "∴", "because": "∵",
	"backepsilon": "϶",
	"lhd": "⊲", "rhd": "⊳", "unlhd": "⊴", "unrhd": "⊵",
	"triangleleft": "◁", "triangleright": "▷", "vartriangleleft": "⊲",
	"vartriangleright": "⊳", "trianglelefteq": "⊴", "trianglerighteq": "⊵",
	"ntriangleleft": "⋪", "ntriangleright": "⋫", "ntrianglelefteq": "⋬",
	"ntrianglerighteq": "⋭",

	// arrows
	"leftarrow": "←", "gets": "←", "rightarrow": "→", "to": "→",
	"leftrightarrow": "↔", "uparrow": "↑", "downarrow": "↓", "updownarrow": "↕",
	"Leftarrow": "⇐", "Rightarrow": "⇒", "Leftrightarrow": "⇔", "Uparrow": "⇑",
	"Downarrow": "⇓", "Updownarrow": "⇕", "longleftarrow": "⟵",
	"longrightarrow": "⟶", "longleftrightarrow": "⟷", "Longleftarrow": "⟸",
	"Longrightarrow": "⟹", "Longleftrightarrow": "⟺", "implies": "⟹",
	"impliedby": "⟸", "iff": "⟺", "mapsto": "↦", "longmapsto": "⟼",
	"hookleftarrow": "↩", "hookrightarrow": "↪", "nearrow": "↗",
	"searrow": "↘", "swarrow": "↙", "nwarrow": "↖", "leftharpoonup": "↼",
	"leftharpoondown": "↽", "rightharpoonup": "⇀", "rightharpoondown": "⇁",
	"upharpoonleft": "↿", "upharpoonright": "↾", "downharpoonleft": "⇃",
	"downharpoonright": "⇂", "leftrightharpoons": "⇋", "rightleftharpoons": "⇌",
	"leftleftarrows": "⇇", "rightrightarrows": "⇉", "upuparrows": "⇈",
	"leftrightarrows": "⇆", "rightleftarrows": "⇄", "Lleftarrow": "⇚",
	"twoheadleftarrow": "↞", "twoheadrightarrow": "↠", "leftarrowtail": "↢",
	"rightarrowtail": "↣", "looparrowleft": "↫", "looparrowright": "↬",
	"curvearrowleft": "↶", "curvearrowright": "↷", "circlearrowleft": "↺",
	"circlearrowright": "↻", "Lsh": "↰", "Rsh": "↱", "multimap": "⊸",
	"leadsto": "⇝", "dashleftarrow": "⇠", "dashrightarrow": "⇢",
	"nleftarrow": "↚", "nrightarrow": "↛", "nleftrightarrow": "↮",
	"nLeftarrow": "⇍", "nRightarrow": "⇏", "nLeftrightarrow": "⇎",

	// operators
	"pm": "±", "mp": "∓", "times": "×", "div": "÷", "cdot": "⋅", "ast": "∗",
	"star": "⋆", "circ": "∘", "bullet": "∙", "oplus": "⊕", "ominus": "⊖",
	"otimes": "⊗", "oslash": "⊘", "odot": "⊙", "cap": "∩", "cup": "∪",
	"Cap": "⋒", "Cup": "⋓", "sqcap": "⊓", "sqcup": "⊔", "uplus": "⊎",
	"vee": "∨", "lor": "∨", "wedge": "∧", "land": "∧", "setminus": "∖",
	"smallsetminus": "∖", "wr": "≀", "amalg": "⨿", "dagger": "†",
	"ddagger": "‡", "diamond": "⋄", "bigcirc": "◯", "barwedge": "⊼",
	"veebar": "⊻", "doublebarwedge": "⩞", "curlyvee": "⋎", "curlywedge": "⋏",
	"boxplus": "⊞", "boxminus": "⊟", "boxtimes": "⊠", "boxdot": "⊡",
	"circledcirc": "⊚", "circleddash": "⊝", "divideontimes": "⋇",
	"dotplus": "∔", "ltimes": "⋉", "rtimes": "⋊", "leftthreetimes": "⋋",
	"rightthreetimes": "⋌", "intercal": "⊺", "centerdot": "·",
	"bigtriangleup": "△", "bigtriangledown": "▽",
	"sum": "∑", "prod": "∏", "coprod": "∐", "int": "∫", "iint": "∬",
	"iiint": "∭", "iiiint": "⨌", "idotsint": "∫⋯∫", "oint": "∮",
	"bigcap": "⋂", "bigcup": "⋃", "bigsqcup": "⨆", "bigvee": "⋁",
	"bigwedge": "⋀", "bigodot": "⨀", "bigoplus": "⨁", "bigotimes": "⨂",
	"biguplus": "⨄",

	// misc
	"infty": "∞", "partial": "∂", "nabla": "∇", "forall": "∀", "exists": "∃",
	"nexists": "∄", "neg": "¬", "lnot": "¬", "emptyset": "∅", "varnothing": "∅",
	"aleph": "ℵ", "hbar": "ℏ", "hslash": "ℏ", "ell": "ℓ", "wp": "℘", "Re": "ℜ",
	"Im": "ℑ", "imath": "ı", "jmath": "ȷ", "eth": "ð", "mho": "℧",
	"Finv": "Ⅎ", "Game": "⅁", "Bbbk": "𝕜", "complement": "∁", "angle": "∠",
	"measuredangle": "∡", "sphericalangle": "∢", "prime": "′", "backprime": "‵",
	"top": "⊤", "bot": "⊥", "flat": "♭", "natural": "♮", "sharp": "♯",
	"clubsuit": "♣", "diamondsuit": "♢", "heartsuit": "♡", "spadesuit": "♠",
	"triangle": "△", "vartriangle": "△", "triangledown": "▽",
	"blacktriangle": "▴", "blacktriangledown": "▾", "blacktriangleleft": "◂",
	"blacktriangleright": "▸", "square": "□", "blacksquare": "■",
	"lozenge": "◊", "blacklozenge": "⧫", "bigstar": "★", "circledS": "Ⓢ",
	"diagup": "╱", "diagdown": "╲", "surd": "√", "checkmark": "✓",
	"ldots": "…", "dots": "…", "cdots": "⋯", "vdots": "⋮", "ddots": "⋱",
	"backslash": "\\",

	// delimiters
	"langle": "⟨", "rangle": "⟩", "lceil": "⌈", "rceil": "⌉", "lfloor": "⌊",
	"rfloor": "⌋", "lbrace": "{", "rbrace": "}", "lbrack": "[", "rbrack": "]",
	"vert": "|", "Vert": "‖", "lvert": "|", "rvert": "|", "lVert": "‖",
	"rVert": "‖", "arrowvert": "|", "Arrowvert": "‖", "bracevert": "⎪",
	"lgroup": "⟮", "rgroup": "⟯", "lmoustache": "⎰", "rmoustache": "⎱",
	"ulcorner": "⌜", "urcorner": "⌝", "llcorner": "⌞", "lrcorner": "⌟",

	// spacing
	"quad": "  ", "qquad": "    ",
}

// escapes maps single-character commands.
var escapes = map[rune]string{
	'\\': "; ", '{': "{", '}': "}", '|': "‖", '%': "%", '$': "$", '#': "#",
	'&': "&", '_': "_", ',': " ", ';': " ", ':': " ", '>': " ", ' ': " ",
	'!': "",
}

// functions are operator names typeset upright as their own name.
var functions = map[string]bool{
	"sin": true, "cos": true, "tan": true, "cot": true, "sec": true, "csc": true,
	"arcsin": true, "arccos": true, "arctan": true, "sinh": true, "cosh": true,
	"tanh": true, "coth": true, "exp": true, "log": true, "ln": true, "lg": true,
	"lim": true, "liminf": true, "limsup": true, "max": true, "min": true,
	"sup": true, "inf": true, "det": true, "dim": true, "deg": true, "gcd": true,
	"hom": true, "ker": true, "arg": true, "Pr": true,
}

// accents maps accent commands to the combining mark applied per rune.
var accents = map[string]rune{
	"hat":            '̂',
	"widehat":        '̂',
	"tilde":          '̃',
	"widetilde":      '̃',
	"bar":            '̄',
	"overline":       '̅',
	"breve":          '̆',
	"dot":            '̇',
	"ddot":           '̈',
	"check":          '̌',
	"acute":          '́',
	"grave":          '̀',
	"vec":            '⃗',
	"overrightarrow": '⃗',
	"overleftarrow":  '⃖',
	"underline":      '̲',
}

// textual commands keep their argument as written.
var textual = map[string]bool{
	"text": true, "textit": true, "textbf": true, "textrm": true,
	"mathrm": true, "mathit": true, "operatorname": true, "mbox": true,
}

// sizing commands are followed by a delimiter and only change its size.
var sizing = map[string]bool{
	"left": true, "right": true, "middle": true, "big": true, "Big": true,
	"bigg": true, "Bigg": true, "bigl": true, "bigr": true, "Bigl": true,
	"Bigr": true, "biggl": true, "biggr": true, "Biggl": true, "Biggr": true,
}

// environments maps matrix-like environments to their enclosing glyphs.
var environments = map[string][2]string{
	"matrix":      {"", ""},
	"smallmatrix": {"", ""},
	"array":       {"", ""},
	"aligned":     {"", ""},
	"pmatrix":     {"(", ")"},
	"bmatrix":     {"[", "]"},
	"Bmatrix":     {"{", "}"},
	"vmatrix":     {"|", "|"},
	"Vmatrix":     {"‖", "‖"},
	"cases":       {"{", ""},
}

var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴', '5': '⁵', '6': '⁶',
	'7': '⁷', '8': '⁸', '9': '⁹', '+': '⁺', '-': '⁻', '=': '⁼', '(': '⁽',
	')': '⁾', 'a': 'ᵃ', 'b': 'ᵇ', 'c': 'ᶜ', 'd': 'ᵈ', 'e': 'ᵉ', 'f': 'ᶠ',
	'g': 'ᵍ', 'h': 'ʰ', 'i': 'ⁱ', 'j': 'ʲ', 'k': 'ᵏ', 'l': 'ˡ', 'm': 'ᵐ',
	'n': 'ⁿ', 'o': 'ᵒ', 'p': 'ᵖ', 'r': 'ʳ', 's': 'ˢ', 't': 'ᵗ', 'u': 'ᵘ',
	'v': 'ᵛ', 'w': 'ʷ', 'x': 'ˣ', 'y': 'ʸ', 'z': 'ᶻ', 'A': 'ᴬ', 'B': 'ᴮ',
	'D': 'ᴰ', 'E': 'ᴱ', 'G': 'ᴳ', 'H': 'ᴴ', 'I': 'ᴵ', 'J': 'ᴶ', 'K': 'ᴷ',
	'L': 'ᴸ', 'M': 'ᴹ', 'N': 'ᴺ', 'O': 'ᴼ', 'P': 'ᴾ', 'R': 'ᴿ', 'T': 'ᵀ',
	'U': 'ᵁ', 'V': 'ⱽ', 'W': 'ᵂ', '′': '′', '∗': '*', 'θ': 'ᶿ', 'β': 'ᵝ',
	'γ': 'ᵞ', 'δ': 'ᵟ', 'ϕ': 'ᵠ', 'χ': 'ᵡ',
}

var subscripts = map[rune]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄', '5': '₅', '6': '₆',
	'7': '₇', '8': '₈', '9': '₉', '+': '₊', '-': '₋', '=': '₌', '(': '₍',
	')': '₎', 'a': 'ₐ', 'e': 'ₑ', 'h': 'ₕ', 'i': 'ᵢ', 'j': 'ⱼ', 'k': 'ₖ',
	'l': 'ₗ', 'm': 'ₘ', 'n': 'ₙ', 'o': 'ₒ', 'p': 'ₚ', 'r': 'ᵣ', 's': 'ₛ',
	't': 'ₜ', 'u': 'ᵤ', 'v': 'ᵥ', 'x': 'ₓ', 'β': 'ᵦ', 'γ': 'ᵧ', 'ρ': 'ᵨ',
	'ϕ': 'ᵩ', 'χ': 'ᵪ',
}

// font describes a mathematical alphanumeric alphabet: the code points of
// its capital and small A and digit zero (0 when absent), plus letters that
// live in the Letterlike Symbols block instead.
type font struct {
	upper, lower, digit rune
	except              map[rune]rune
}

var fonts = map[string]font{
	"mathbf":     {upper: 0x1D400, lower: 0x1D41A, digit: 0x1D7CE},
	"boldsymbol": {upper: 0x1D468, lower: 0x1D482, digit: 0x1D7CE},
	"mathcal": {upper: 0x1D49C, lower: 0x1D4B6, except: map[rune]rune{
		'B': 'ℬ', 'E': 'ℰ', 'F': 'ℱ', 'H': 'ℋ', 'I': 'ℐ', 'L': 'ℒ', 'M': 'ℳ',
		'R': 'ℛ', 'e': 'ℯ', 'g': 'ℊ', 'o': 'ℴ',
	}},
	"mathfrak": {upper: 0x1D504, lower: 0x1D51E, except: map[rune]rune{
		'C': 'ℭ', 'H': 'ℌ', 'I': 'ℑ', 'R': 'ℜ', 'Z': 'ℨ',
	}},
	"mathbb": {upper: 0x1D538, lower: 0x1D552, digit: 0x1D7D8, except: map[rune]rune{
		'C': 'ℂ', 'H': 'ℍ', 'N': 'ℕ', 'P': 'ℙ', 'Q': 'ℚ', 'R': 'ℝ', 'Z': 'ℤ',
	}},
	"mathsf": {upper: 0x1D5A0, lower: 0x1D5BA, digit: 0x1D7E2},
	"mathtt": {upper: 0x1D670, lower: 0x1D68A, digit: 0x1D7F6},
}

func init() {
	// Script capitals share the calligraphic code points.
	fonts["mathscr"] = fonts["mathcal"]
}

func (f font) apply(r rune) rune {
	if m, ok := f.except[r]; ok {
		return m
	}
	switch {
	case r >= 'A' && r <= 'Z':
		return f.upper + (r - 'A')
	case r >= 'a' && r <= 'z':
		return f.lower + (r - 'a')
	case r >= '0' && r <= '9' && f.digit != 0:
		return f.digit + (r - '0')
	}
	return r
}
