package drawtext

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Style holds the presentation constants shared by every caption stage.
// A style file only needs to name what it overrides; zero fields fall
// back to the matching DefaultStyle value.
type Style struct {
	FontFile  string `yaml:"fontfile"`
	BoxColor  string `yaml:"boxcolor"`
	BoxBorder int    `yaml:"boxborderw"`
	Margin    int    `yaml:"margin"`
}

// DefaultStyle returns the built-in presentation: Verdana, a black
// bounding box at 50% alpha with a 5px border, and a 40px vertical
// margin from the anchored edge.
func DefaultStyle() Style {
	return Style{
		FontFile:  "/System/Library/Fonts/Supplemental/Verdana.ttf",
		BoxColor:  "black@0.5",
		BoxBorder: 5,
		Margin:    40,
	}
}

// LoadStyle reads a YAML style file and overlays it on DefaultStyle.
// Unknown keys are rejected.
func LoadStyle(path string) (Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, err
	}

	var style Style
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&style); err != nil {
		if errors.Is(err, io.EOF) {
			return DefaultStyle(), nil
		}
		var typeError *yaml.TypeError
		if errors.As(err, &typeError) {
			return Style{}, fmt.Errorf("error parsing style file %s: %s", path, strings.Join(typeError.Errors, "; "))
		}
		return Style{}, err
	}
	return style.withDefaults(), nil
}

func (s Style) withDefaults() Style {
	def := DefaultStyle()
	if s.FontFile == "" {
		s.FontFile = def.FontFile
	}
	if s.BoxColor == "" {
		s.BoxColor = def.BoxColor
	}
	if s.BoxBorder == 0 {
		s.BoxBorder = def.BoxBorder
	}
	if s.Margin == 0 {
		s.Margin = def.Margin
	}
	return s
}
