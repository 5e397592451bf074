package commands

import (
	"strings"
	"testing"
	"time"

	"github.com/asticode/go-astisub"
	"github.com/overtext/overtext/caption"
)

func subtitles(t *testing.T) *astisub.Subtitles {
	t.Helper()
	item := func(text string, start, end time.Duration) *astisub.Item {
		return &astisub.Item{
			StartAt: start,
			EndAt:   end,
			Lines: []astisub.Line{
				{Items: []astisub.LineItem{{Text: text}}},
			},
		}
	}
	return &astisub.Subtitles{Items: []*astisub.Item{
		item("First cue", 1200*time.Millisecond, 3800*time.Millisecond),
		item("It's the second cue", 5*time.Second, 10*time.Second),
	}}
}

func TestScriptFromSubtitles(t *testing.T) {
	script := scriptFromSubtitles(subtitles(t), "white", 36, caption.Bottom, "subs.srt")

	lines := strings.Split(strings.TrimRight(script, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("script has %d lines, want 3:\n%s", len(lines), script)
	}
	if !strings.HasPrefix(lines[0], "#") {
		t.Errorf("first line = %q, want header comment", lines[0])
	}
	// Start floored, end ceiled to whole seconds.
	if lines[1] != "'First cue':white:36:BOTTOM:1-4" {
		t.Errorf("line 1 = %q", lines[1])
	}
	if lines[2] != `'It\'s the second cue':white:36:BOTTOM:5-10` {
		t.Errorf("line 2 = %q", lines[2])
	}
}

// The emitted script must be consumable by the caption parser.
func TestScriptRoundTrip(t *testing.T) {
	script := scriptFromSubtitles(subtitles(t), "white", 36, caption.Bottom, "subs.srt")

	captions, err := caption.Parse(strings.Split(script, "\n"))
	if err != nil {
		t.Fatalf("Parse(convert output) error = %v", err)
	}
	if len(captions) != 2 {
		t.Fatalf("parsed %d captions, want 2", len(captions))
	}
	if captions[1].Message != "It's the second cue" {
		t.Errorf("Message = %q, want unescaped quote", captions[1].Message)
	}
	if captions[0].StartSec != 1 || captions[0].EndSec != 4 {
		t.Errorf("window = %d-%d, want 1-4", captions[0].StartSec, captions[0].EndSec)
	}
}
