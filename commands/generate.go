package commands

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"

	"github.com/overtext/overtext/caption"
	"github.com/overtext/overtext/drawtext"
	"github.com/symfony-cli/console"
)

var GenerateCommand = &console.Command{
	Name:        "generate",
	Aliases:     []*console.Alias{{Name: "gen"}},
	Usage:       "Overlay timed captions from a command file onto a video",
	Description: "Parses a caption command file (see example/commands.txt for syntax), builds the matching ffmpeg drawtext invocation and runs it. Omit --output-file for a live ffplay preview.",
	Flags: []console.Flag{
		&console.StringFlag{
			Name:    "input-file",
			Aliases: []string{"i"},
			Usage:   "Input video file",
		},
		&console.StringFlag{
			Name:    "output-file",
			Aliases: []string{"o"},
			Usage:   "Output video file (omit for live preview)",
		},
		&console.StringFlag{
			Name:    "command-file",
			Aliases: []string{"c"},
			Usage:   "File containing the sequence of caption commands",
		},
		&console.StringFlag{
			Name:    "style",
			Aliases: []string{"s"},
			Usage:   "YAML file overriding the default caption style",
		},
		&console.BoolFlag{
			Name:    "overwrite-output-file",
			Aliases: []string{"y"},
			Usage:   "Overwrite output file if it exists",
		},
		&console.BoolFlag{
			Name:  "dry-run",
			Usage: "Print the command without running it",
		},
	},
	Action: runGenerate,
}

func runGenerate(c *console.Context) error {
	input := c.String("input-file")
	commandFile := c.String("command-file")
	if input == "" || commandFile == "" {
		return console.Exit("Error: --input-file and --command-file are required", 1)
	}

	style := drawtext.DefaultStyle()
	if path := c.String("style"); path != "" {
		var err error
		if style, err = drawtext.LoadStyle(path); err != nil {
			return console.Exit(fmt.Sprintf("error: %v", err), 1)
		}
	}

	captions, err := caption.ParseFile(commandFile)
	if err != nil {
		return console.Exit(fmt.Sprintf("error: %v", err), 1)
	}

	if c.Bool("verbose") {
		reportCaptions(c, captions)
	}

	stages, err := drawtext.Stages(captions, style)
	if err != nil {
		return console.Exit(fmt.Sprintf("error: %v", err), 1)
	}
	argv := drawtext.Assemble(input, c.String("output-file"), strings.Join(stages, ","), c.Bool("overwrite-output-file"))

	// Echo the command in green for clarity before running it.
	echoCommand(c.App.Writer, argv, stages)

	if c.Bool("dry-run") {
		return nil
	}
	return runCommand(argv)
}

func reportCaptions(c *console.Context, captions []caption.Caption) {
	for i, ct := range captions {
		fmt.Fprintf(c.App.Writer,
			"#%03d\n<info>%s</>\nStyle: <comment>%s</>, %dpt, %s\nShown: <fg=yellow>%ds</> --> <fg=yellow>%ds</>\n\n",
			i+1, ct.Message, ct.Color, ct.Size, ct.Position, ct.StartSec, ct.EndSec,
		)
	}
}

// runCommand shells out because the -vf argument carries its own
// quoting. An interrupted run (ctrl-c during a preview) exits 1.
func runCommand(argv []string) error {
	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt)
	defer signal.Stop(interrupted)

	cmd := exec.Command("sh", "-c", strings.Join(argv, " "))
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := exitErr.ExitCode()
			if code < 0 {
				code = 1
			}
			return console.Exit("", code)
		}
		return console.Exit(fmt.Sprintf("error: %v", err), 1)
	}
	return nil
}
