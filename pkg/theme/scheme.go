package theme

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-castella/castella/pkg/errors"
)

// Scheme is the flat named-color table a Theme is derived from. The YAML keys
// match the color names used by the built-in schemes, so a user file only
// needs to override the colors it cares about.
type Scheme struct {
	BGCanvas    string `yaml:"bg-canvas"`
	BGPrimary   string `yaml:"bg-primary"`
	BGSecondary string `yaml:"bg-secondary"`
	BGTertiary  string `yaml:"bg-tertiary"`
	BGOverlay   string `yaml:"bg-overlay"`
	BGInfo      string `yaml:"bg-info"`
	BGDanger    string `yaml:"bg-danger"`
	BGSuccess   string `yaml:"bg-success"`
	BGWarning   string `yaml:"bg-warning"`
	BGPushed    string `yaml:"bg-pushed"`
	BGSelected  string `yaml:"bg-selected"`

	FG          string `yaml:"fg"`
	TextPrimary string `yaml:"text-primary"`
	TextInfo    string `yaml:"text-info"`
	TextDanger  string `yaml:"text-danger"`
	TextSuccess string `yaml:"text-success"`
	TextWarning string `yaml:"text-warning"`

	BorderPrimary   string `yaml:"border-primary"`
	BorderSecondary string `yaml:"border-secondary"`
	BorderInfo      string `yaml:"border-info"`
	BorderDanger    string `yaml:"border-danger"`
	BorderSuccess   string `yaml:"border-success"`
	BorderWarning   string `yaml:"border-warning"`
}

// DarkScheme returns the built-in dark color scheme.
func DarkScheme() Scheme {
	return Scheme{
		BGCanvas:    "#1e1e1e",
		BGPrimary:   "#1e1e1e",
		BGSecondary: "#1e1e1e",
		BGTertiary:  "#282a36",
		BGOverlay:   "#ff79c6",
		BGInfo:      "#1e1e1e",
		BGDanger:    "#1e1e1e",
		BGSuccess:   "#1e1e1e",
		BGWarning:   "#1e1e1e",
		BGPushed:    "#1e1e1e",
		BGSelected:  "#ff79c6",

		FG:          "#f8f8f2",
		TextPrimary: "#f8f8f2",
		TextInfo:    "#00ffff",
		TextDanger:  "#ff6347",
		TextSuccess: "#32cd32",
		TextWarning: "#ffd700",

		BorderPrimary:   "#bd93f9",
		BorderSecondary: "#ff79c6",
		BorderInfo:      "#00ffff",
		BorderDanger:    "#ff6347",
		BorderSuccess:   "#32cd32",
		BorderWarning:   "#ffd700",
	}
}

// LightScheme returns the built-in light color scheme.
func LightScheme() Scheme {
	return Scheme{
		BGCanvas:    "#fff0f6",
		BGPrimary:   "#fff0f6",
		BGSecondary: "#fce4ec",
		BGTertiary:  "#e8eaf6",
		BGOverlay:   "#ffccf9",
		BGInfo:      "#e1f5fe",
		BGDanger:    "#fce4ec",
		BGSuccess:   "#e8f5e9",
		BGWarning:   "#fff9c4",
		BGPushed:    "#f8bbd0",
		BGSelected:  "#f8bbd0",

		FG:          "#212121",
		TextPrimary: "#212121",
		TextInfo:    "#7e57c2",
		TextDanger:  "#ec407a",
		TextSuccess: "#66bb6a",
		TextWarning: "#ffb300",

		BorderPrimary:   "#ba68c8",
		BorderSecondary: "#f48fb1",
		BorderInfo:      "#81d4fa",
		BorderDanger:    "#f06292",
		BorderSuccess:   "#a5d6a7",
		BorderWarning:   "#ffcc80",
	}
}

// LoadScheme parses a YAML scheme, unmarshaling over base so omitted keys
// keep the base scheme's colors.
func LoadScheme(data []byte, base Scheme) (Scheme, error) {
	s := base
	if err := yaml.Unmarshal(data, &s); err != nil {
		return base, &errors.CastellaError{
			Op:   "theme.LoadScheme",
			Kind: errors.KindConfig,
			Err:  err,
		}
	}
	return s, nil
}

// LoadSchemeFile reads a YAML scheme file, unmarshaling over base.
func LoadSchemeFile(path string, base Scheme) (Scheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, &errors.CastellaError{
			Op:   "theme.LoadSchemeFile",
			Kind: errors.KindConfig,
			Err:  err,
		}
	}
	return LoadScheme(data, base)
}
