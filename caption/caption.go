// Package caption parses caption script files: one timed, styled text
// directive per line, in the form
//
//	'<message>':<color>:<size>:<TOP|BOTTOM>:<start>-<end>
//
// See example/commands.txt for the full syntax.
package caption

// Position is the vertical anchor of a rendered caption.
type Position string

const (
	Top    Position = "TOP"
	Bottom Position = "BOTTOM"
)

// Caption is one caption directive. Captions are built only by the
// parser and are either fully valid or not produced at all.
type Caption struct {
	Message  string
	Color    string
	Size     int
	Position Position
	StartSec int
	EndSec   int
}
