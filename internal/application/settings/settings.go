// Package settings defines application-level configuration data.
package settings

import (
	"github.com/tesso57/latexpad/internal/domain/catalog"
	"github.com/tesso57/latexpad/internal/domain/compose"
)

// KeyMapConfig defines the configuration for keybindings.
type KeyMapConfig struct {
	NextGroup string `yaml:"next_group" kong:"help='Next category key',default='ctrl+n'"`
	PrevGroup string `yaml:"prev_group" kong:"help='Previous category key',default='ctrl+p'"`
	Up        string `yaml:"up" kong:"help='Palette up key',default='k,up'"`
	Down      string `yaml:"down" kong:"help='Palette down key',default='j,down'"`
	Left      string `yaml:"left" kong:"help='Palette left key',default='h,left'"`
	Right     string `yaml:"right" kong:"help='Palette right key',default='l,right'"`
	Insert    string `yaml:"insert" kong:"help='Insert symbol key',default='enter,space'"`
	Focus     string `yaml:"focus" kong:"help='Switch between palette and editor',default='tab'"`
	Copy      string `yaml:"copy" kong:"help='Copy formula key',default='ctrl+y'"`
	Clear     string `yaml:"clear" kong:"help='Clear formula key',default='ctrl+l'"`
	Quit      string `yaml:"quit" kong:"help='Quit key',default='ctrl+c,esc'"`
}

// ThemeConfig defines the color theme configuration.
type ThemeConfig struct {
	Accent string `yaml:"accent" kong:"help='Active element color',default='205'"`
	Border string `yaml:"border" kong:"help='Inactive border color',default='63'"`
	Muted  string `yaml:"muted" kong:"help='Secondary text color',default='240'"`
}

// DelimiterConfig defines the formula delimiter pair. Empty values fall back
// to "$$" / "$$".
type DelimiterConfig struct {
	Open  string `yaml:"open" kong:"help='Formula start delimiter'"`
	Close string `yaml:"close" kong:"help='Formula end delimiter'"`
}

// LogConfig defines where diagnostic logs go. The terminal belongs to the UI,
// so logs are written to a file or dropped.
type LogConfig struct {
	File  string `yaml:"file" kong:"help='Log file path (empty disables logging)'"`
	Level string `yaml:"level" kong:"help='Log level',default='info'"`
	JSON  bool   `yaml:"json" kong:"help='Write JSON log lines',default='false'"`
}

// Settings represents the application configuration.
type Settings struct {
	Labels     []string        `yaml:"labels" kong:"help='Category labels in catalog order'"`
	Delimiters DelimiterConfig `yaml:"delimiters" kong:"embed,prefix='delimiters.'"`
	Backend    string          `yaml:"backend" kong:"help='Typesetting backend (unicode/mathml/mathjax)',default='unicode'"`
	KeyMap     KeyMapConfig    `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme      ThemeConfig     `yaml:"theme" kong:"embed,prefix='theme.'"`
	Log        LogConfig       `yaml:"log" kong:"embed,prefix='log.'"`
}

// Default returns settings with every default applied, without reading any
// configuration file.
func Default() Settings {
	return Settings{
		Labels:     catalog.DefaultLabels(),
		Delimiters: DelimiterConfig{Open: "$$", Close: "$$"},
		Backend:    "unicode",
		KeyMap: KeyMapConfig{
			NextGroup: "ctrl+n",
			PrevGroup: "ctrl+p",
			Up:        "k,up",
			Down:      "j,down",
			Left:      "h,left",
			Right:     "l,right",
			Insert:    "enter,space",
			Focus:     "tab",
			Copy:      "ctrl+y",
			Clear:     "ctrl+l",
			Quit:      "ctrl+c,esc",
		},
		Theme: ThemeConfig{Accent: "205", Border: "63", Muted: "240"},
		Log:   LogConfig{Level: "info"},
	}
}

// EffectiveDelimiters returns the configured delimiters, falling back to the
// defaults when neither side is set.
func (s Settings) EffectiveDelimiters() compose.Delimiters {
	if s.Delimiters.Open == "" && s.Delimiters.Close == "" {
		return compose.DefaultDelimiters()
	}
	return compose.Delimiters{Open: s.Delimiters.Open, Close: s.Delimiters.Close}
}
