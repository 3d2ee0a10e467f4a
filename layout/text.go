package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/zerocore-ai/rxtui/style"
)

// DisplayWidth returns the terminal column width of s, accounting for
// wide East-Asian/emoji runes.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// WrapText breaks content into lines that fit within width columns,
// according to mode. None returns the content as a single line (callers
// clip it at draw time). Character breaks at any column. Word breaks only
// at spaces, letting overlong words overflow. WordBreak breaks at spaces
// when possible but force-breaks a word that alone exceeds width.
//
// The greedy last-space-within-window strategy mirrors the wrap helpers
// buckley's scrollback buffer uses for chat transcripts.
func WrapText(content string, width int, mode style.TextWrap) []string {
	if width <= 0 {
		return []string{content}
	}
	switch mode {
	case style.WrapNone:
		return splitHardLines(content)
	case style.WrapCharacter:
		return wrapEachLine(content, width, wrapCharacterLine)
	case style.WrapWordBreak:
		return wrapEachLine(content, width, wrapWordBreakLine)
	default: // style.WrapWord
		return wrapEachLine(content, width, wrapWordLine)
	}
}

func splitHardLines(content string) []string {
	return strings.Split(content, "\n")
}

func wrapEachLine(content string, width int, wrapOne func(string, int) []string) []string {
	var out []string
	for _, hard := range splitHardLines(content) {
		out = append(out, wrapOne(hard, width)...)
	}
	if len(out) == 0 {
		out = []string{""}
	}
	return out
}

func wrapCharacterLine(line string, width int) []string {
	var lines []string
	var cur strings.Builder
	curWidth := 0
	for _, r := range line {
		rw := runewidth.RuneWidth(r)
		if curWidth+rw > width && curWidth > 0 {
			lines = append(lines, cur.String())
			cur.Reset()
			curWidth = 0
		}
		cur.WriteRune(r)
		curWidth += rw
	}
	lines = append(lines, cur.String())
	return lines
}

// wrapWordLine breaks only at spaces; a word longer than width overflows
// that line uncut.
func wrapWordLine(line string, width int) []string {
	words := strings.Split(line, " ")
	var lines []string
	var cur strings.Builder
	curWidth := 0
	for i, word := range words {
		wWidth := DisplayWidth(word)
		addSpace := cur.Len() > 0
		needed := wWidth
		if addSpace {
			needed++
		}
		if curWidth+needed > width && cur.Len() > 0 {
			lines = append(lines, cur.String())
			cur.Reset()
			curWidth = 0
			addSpace = false
		}
		if addSpace {
			cur.WriteByte(' ')
			curWidth++
		}
		cur.WriteString(word)
		curWidth += wWidth
		_ = i
	}
	lines = append(lines, cur.String())
	return lines
}

// wrapWordBreakLine prefers word boundaries but force-breaks any word that
// alone exceeds width, so no line ever overflows.
func wrapWordBreakLine(line string, width int) []string {
	words := strings.Split(line, " ")
	var lines []string
	var cur strings.Builder
	curWidth := 0

	flush := func() {
		if cur.Len() > 0 {
			lines = append(lines, cur.String())
			cur.Reset()
			curWidth = 0
		}
	}

	for _, word := range words {
		wWidth := DisplayWidth(word)
		if wWidth > width {
			flush()
			lines = append(lines, wrapCharacterLine(word, width)...)
			continue
		}
		addSpace := cur.Len() > 0
		needed := wWidth
		if addSpace {
			needed++
		}
		if curWidth+needed > width && cur.Len() > 0 {
			flush()
			addSpace = false
		}
		if addSpace {
			cur.WriteByte(' ')
			curWidth++
		}
		cur.WriteString(word)
		curWidth += wWidth
	}
	flush()
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}
