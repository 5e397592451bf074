package commands

import (
	"fmt"
	"io"
	"strings"
)

const (
	echoIndent      = "  "
	backslashColumn = 79
)

// echoCommand prints the assembled command one argument per line with
// shell continuations, the quoted filter token expanded to one line
// per drawtext stage so long caption lists stay readable.
func echoCommand(w io.Writer, argv, stages []string) {
	lines := make([]string, 0, len(argv)+len(stages))
	for _, arg := range argv {
		if strings.HasPrefix(arg, `"`) {
			for i, stage := range stages {
				if i == 0 {
					stage = `"` + stage
				}
				if i == len(stages)-1 {
					stage += `"`
				}
				lines = append(lines, echoIndent+stage)
			}
			continue
		}
		if len(lines) == 0 {
			lines = append(lines, arg)
		} else {
			lines = append(lines, echoIndent+arg)
		}
	}

	for i, line := range lines {
		if i < len(lines)-1 {
			line = fmt.Sprintf("%-*s \\", backslashColumn, line)
		}
		fmt.Fprintf(w, "<fg=green>%s</>\n", line)
	}
}
