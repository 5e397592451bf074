// Package commands wires the caption parser and the drawtext builder
// to the console application.
package commands

import "github.com/symfony-cli/console"

func All() []*console.Command {
	return []*console.Command{
		GenerateCommand,
		ConvertCommand,
	}
}
