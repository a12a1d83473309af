package markup

import "strings"

// Run is a contiguous span of text, optionally emphasized.
type Run struct {
	Text string `json:"text"`
	Bold bool   `json:"bold"`
}

// FormatInline splits text on paired ** delimiters into plain and bold
// runs. The split is lexical: no nesting, no escaping. Unmatched
// delimiters stay in the surrounding plain text, so input without a
// complete pair comes back as a single plain run.
func FormatInline(text string) []Run {
	runs := make([]Run, 0, 4)
	plain := strings.Builder{}

	rest := text
	for {
		open := strings.Index(rest, "**")
		if open < 0 {
			break
		}
		closing := strings.Index(rest[open+2:], "**")
		if closing < 0 {
			break
		}
		plain.WriteString(rest[:open])
		if plain.Len() > 0 {
			runs = append(runs, Run{Text: plain.String()})
			plain.Reset()
		}
		runs = append(runs, Run{Text: rest[open+2 : open+2+closing], Bold: true})
		rest = rest[open+2+closing+2:]
	}
	plain.WriteString(rest)

	if plain.Len() > 0 || len(runs) == 0 {
		runs = append(runs, Run{Text: plain.String()})
	}
	return runs
}
