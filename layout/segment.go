package layout

import "golang.org/x/text/unicode/bidi"

// Run is a contiguous span of text sharing one direction.
type Run struct {
	Text      string
	Start     int
	End       int
	Direction Direction
}

// SplitRuns splits text into direction runs using the Unicode bidi
// algorithm. base seeds the paragraph direction for direction-neutral
// text. Byte offsets index into the original string.
func SplitRuns(text string, base Direction) []Run {
	if text == "" {
		return nil
	}

	defaultDir := bidi.Neutral
	if base == RightToLeft {
		defaultDir = bidi.RightToLeft
	}

	var p bidi.Paragraph
	if _, err := p.SetString(text, bidi.DefaultDirection(defaultDir)); err != nil {
		return []Run{{Text: text, End: len(text), Direction: base}}
	}
	ordering, err := p.Order()
	if err != nil {
		return []Run{{Text: text, End: len(text), Direction: base}}
	}

	runes := []rune(text)
	byteOff := make([]int, len(runes)+1)
	off := 0
	for i, r := range runes {
		byteOff[i] = off
		off += len(string(r))
	}
	byteOff[len(runes)] = len(text)

	runs := make([]Run, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		// Pos returns rune indices, start and end inclusive.
		startRune, endRune := run.Pos()
		if startRune > endRune || endRune >= len(runes) {
			continue
		}
		dir := LeftToRight
		if run.Direction() == bidi.RightToLeft {
			dir = RightToLeft
		}
		start, end := byteOff[startRune], byteOff[endRune+1]
		runs = append(runs, Run{
			Text:      text[start:end],
			Start:     start,
			End:       end,
			Direction: dir,
		})
	}
	return runs
}

// BaseDirection guesses the dominant direction of text: the direction of
// its first strongly directional run, LeftToRight when none exists.
func BaseDirection(text string) Direction {
	runs := SplitRuns(text, LeftToRight)
	if len(runs) == 0 {
		return LeftToRight
	}
	return runs[0].Direction
}
