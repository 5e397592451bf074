package main

import (
	"os"

	"github.com/overtext/overtext/commands"
	"github.com/symfony-cli/console"
)

var (
	// version is overridden at linking time
	version = "dev"
	// buildDate is overridden at linking time
	buildDate string
)

func main() {
	app := &console.Application{
		Name:        "overtext",
		Usage:       "Overlay timed text captions onto a video using ffmpeg",
		Description: "Reads a caption command file describing timed, styled captions and generates (and runs) the ffmpeg drawtext invocation that renders them onto a video, or previews them live with ffplay.",
		Version:     version,
		BuildDate:   buildDate,
		Channel:     "stable",
		Flags: []console.Flag{
			&console.BoolFlag{
				Name:  "verbose",
				Usage: "Report each parsed caption before running",
			},
		},
		Commands: commands.All(),
	}

	app.Run(os.Args)
}
