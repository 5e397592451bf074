// Package drawtext renders captions as ffmpeg drawtext filter stages
// and assembles the command line that applies them to a video.
package drawtext

import (
	"errors"
	"fmt"
	"strings"

	"github.com/overtext/overtext/caption"
)

// ErrNoCaptions is returned when there is nothing to render.
var ErrNoCaptions = errors.New("no captions to render")

// UnknownPositionError reports a caption whose position is neither TOP
// nor BOTTOM. Unreachable through the parser; guards direct construction.
type UnknownPositionError struct {
	Position caption.Position
}

func (e *UnknownPositionError) Error() string {
	return fmt.Sprintf("unknown position %q", string(e.Position))
}

// Stage renders one caption as a drawtext filter stage. Text is always
// horizontally centered; the style supplies the font, box, and the
// vertical margin from the anchored edge. The enable clause limits the
// stage to the caption's [start,end] window.
func Stage(c caption.Caption, style Style) (string, error) {
	var anchor string
	switch c.Position {
	case caption.Top:
		anchor = fmt.Sprintf("x=(w-text_w)/2:y=%d", style.Margin)
	case caption.Bottom:
		anchor = fmt.Sprintf("x=(w-text_w)/2:y=h-th-%d", style.Margin)
	default:
		return "", &UnknownPositionError{Position: c.Position}
	}

	return fmt.Sprintf(
		"drawtext=fontfile=%s:text='%s':fontcolor=%s:fontsize=%d:box=1:boxcolor=%s:boxborderw=%d:%s:enable='between(t,%d,%d)'",
		style.FontFile, c.Message, c.Color, c.Size,
		style.BoxColor, style.BoxBorder, anchor, c.StartSec, c.EndSec,
	), nil
}

// Stages renders every caption in order. Order matters: later stages
// draw on top of earlier ones.
func Stages(captions []caption.Caption, style Style) ([]string, error) {
	if len(captions) == 0 {
		return nil, ErrNoCaptions
	}
	stages := make([]string, 0, len(captions))
	for _, c := range captions {
		stage, err := Stage(c, style)
		if err != nil {
			return nil, err
		}
		stages = append(stages, stage)
	}
	return stages, nil
}

// Expression joins the rendered stages into the single -vf filter
// expression.
func Expression(captions []caption.Caption, style Style) (string, error) {
	stages, err := Stages(captions, style)
	if err != nil {
		return "", err
	}
	return strings.Join(stages, ","), nil
}
