package convert

import (
	"strconv"
	"strings"
)

// Record is one puzzle segment cut out of a PGN file: the starting
// position, the untouched move text, and the sequence id the source
// material carried (positional if it carried none).
type Record struct {
	FEN        string
	MoveText   string
	OriginalID string
}

const (
	fenTag      = "[FEN "
	originalTag = "[OriginalID "
	eventTag    = "[Event "
)

// SplitRecords cuts raw PGN text into one Record per puzzle. OriginalID
// and Event tag lines close the pending segment and open a new one
// (OriginalID also captures the id for the segment it opens); a FEN tag
// sets the starting position; every other non-blank, non-tag line is
// move text. A segment only becomes a Record when it has both a
// position and move text by the time it is closed.
func SplitRecords(text string) []Record {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var (
		records []Record
		fen     string
		id      string
		moves   []string
	)
	finalize := func() {
		if fen != "" && len(moves) > 0 {
			if id == "" {
				id = strconv.Itoa(len(records) + 1)
			}
			records = append(records, Record{
				FEN:        fen,
				MoveText:   strings.Join(moves, " "),
				OriginalID: id,
			})
		}
		fen = ""
		id = ""
		moves = nil
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
		case strings.HasPrefix(line, originalTag):
			finalize()
			id = tagValue(line)
		case strings.HasPrefix(line, eventTag):
			finalize()
		case strings.HasPrefix(line, fenTag):
			fen = fixFullmove(tagValue(line))
		case strings.HasPrefix(line, "["):
			// other tags carry nothing the trainer uses
		default:
			moves = append(moves, line)
		}
	}
	finalize()
	return records
}

func tagValue(line string) string {
	open := strings.Index(line, `"`)
	end := strings.LastIndex(line, `"`)
	if open < 0 || end <= open {
		return ""
	}
	return line[open+1 : end]
}

// Some hand-authored sources emit a zero fullmove counter, which strict
// FEN parsers reject. Bump it to one.
func fixFullmove(fen string) string {
	fields := strings.Fields(fen)
	if len(fields) == 0 || fields[len(fields)-1] != "0" {
		return fen
	}
	fields[len(fields)-1] = "1"
	return strings.Join(fields, " ")
}
