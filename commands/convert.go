package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/asticode/go-astisub"
	"github.com/overtext/overtext/caption"
	"github.com/symfony-cli/console"
)

var ConvertCommand = &console.Command{
	Name:        "convert",
	Usage:       "Convert a subtitle file (.srt, .vtt) into a caption command file",
	Description: "Turns every subtitle cue into a caption command line with uniform styling, ready to feed to 'generate'. Start times are rounded down and end times up to whole seconds.",
	Flags: []console.Flag{
		&console.StringFlag{
			Name:    "output-file",
			Aliases: []string{"o"},
			Usage:   "Caption command file to write (defaults to stdout)",
		},
		&console.StringFlag{
			Name:         "color",
			DefaultValue: "white",
			Usage:        "Text color applied to every caption",
		},
		&console.StringFlag{
			Name:         "size",
			DefaultValue: "36",
			Usage:        "Font size applied to every caption",
		},
		&console.StringFlag{
			Name:         "position",
			DefaultValue: "BOTTOM",
			Usage:        "Vertical anchor, TOP or BOTTOM",
		},
	},
	Action: runConvert,
}

func runConvert(c *console.Context) error {
	if c.NArg() < 1 {
		return console.Exit("Error: path to subtitle file is required", 1)
	}
	path := c.Args().Slice()[0]

	size, err := strconv.Atoi(strings.TrimSpace(c.String("size")))
	if err != nil || size <= 0 {
		return console.Exit(fmt.Sprintf("error: %v", caption.ErrInvalidSize), 1)
	}
	position := caption.Position(strings.ToUpper(strings.TrimSpace(c.String("position"))))
	if position != caption.Top && position != caption.Bottom {
		return console.Exit(fmt.Sprintf("error: %v", caption.ErrInvalidPosition), 1)
	}

	subs, err := astisub.OpenFile(path)
	if err != nil {
		return console.Exit(fmt.Sprintf("error: %v", err), 1)
	}

	script := scriptFromSubtitles(subs, c.String("color"), size, position, path)

	out := c.String("output-file")
	if out == "" {
		fmt.Fprint(c.App.Writer, script)
		return nil
	}
	if err := os.WriteFile(out, []byte(script), 0644); err != nil {
		return console.Exit(fmt.Sprintf("error: %v", err), 1)
	}
	fmt.Fprintf(c.App.Writer, "Caption commands written to <info>%s</>\n", out)
	return nil
}

func scriptFromSubtitles(subs *astisub.Subtitles, color string, size int, position caption.Position, source string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# generated from %s\n", source)
	for _, item := range subs.Items {
		text := strings.TrimSpace(item.String())
		if text == "" {
			continue
		}
		text = strings.ReplaceAll(text, `'`, `\'`)
		start := int(item.StartAt / time.Second)
		end := int((item.EndAt + time.Second - 1) / time.Second)
		fmt.Fprintf(&b, "'%s':%s:%d:%s:%d-%d\n", text, color, size, position, start, end)
	}
	return b.String()
}
