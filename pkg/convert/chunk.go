package convert

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrBadSourceName reports a PGN filename without the numeric prefix
// convention; such files are skipped whole, no puzzles are extracted.
var ErrBadSourceName = errors.New("filename does not match NN_motive.pgn")

var sourceNameRE = regexp.MustCompile(`^(\d+)_(.+)\.pgn$`)

// SourceName is the parsed form of a PGN filename such as
// "02_back_rank_mate.pgn": the file number (zero padding kept), the
// slug used in generated filenames and the display motive.
type SourceName struct {
	FileNumber string
	Slug       string
	Motive     string
}

// ParseSourceName splits a source filename into its number, slug and
// display motive. "02_back_rank_mate.pgn" yields number "02", slug
// "back_rank_mate" and motive "Back Rank Mate".
func ParseSourceName(name string) (SourceName, error) {
	m := sourceNameRE.FindStringSubmatch(name)
	if m == nil {
		return SourceName{}, fmt.Errorf("%w: %q", ErrBadSourceName, name)
	}
	slug := strings.ToLower(m[2])
	words := strings.Split(slug, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return SourceName{
		FileNumber: m[1],
		Slug:       slug,
		Motive:     strings.Join(words, " "),
	}, nil
}

// Sequenced pairs an assembled puzzle with the original id it carried
// in the source file, which the chunker folds into the final PuzzleID.
type Sequenced struct {
	Puzzle     Puzzle
	OriginalID string
}

// ProblemFile is one bounded output chunk of a source file.
type ProblemFile struct {
	ID      string
	Name    string
	File    string
	Puzzles []Puzzle
}

// SplitChunks partitions one source file's puzzles into output files of
// at most size puzzles, preserving order, and assigns the final ids,
// display names and filenames. size <= 0 keeps a single chunk. A lone
// chunk gets no part suffix; split chunks carry a 1-based part number
// in id and filename and an original-id range in the display name.
func SplitChunks(prefix string, src SourceName, puzzles []Sequenced, size int) []ProblemFile {
	if len(puzzles) == 0 {
		return nil
	}
	if size <= 0 || size > len(puzzles) {
		size = len(puzzles)
	}
	total := (len(puzzles) + size - 1) / size

	var chunks []ProblemFile
	for part := 1; part <= total; part++ {
		lo := (part - 1) * size
		hi := lo + size
		if hi > len(puzzles) {
			hi = len(puzzles)
		}
		slice := puzzles[lo:hi]

		var pf ProblemFile
		if total == 1 {
			pf.ID = fmt.Sprintf("%s-%s", prefix, src.FileNumber)
			pf.Name = src.Motive
			pf.File = fmt.Sprintf("%s_%s.json", src.FileNumber, src.Slug)
		} else {
			pf.ID = fmt.Sprintf("%s-%s-%d", prefix, src.FileNumber, part)
			pf.Name = fmt.Sprintf("%s (%s-%s)", src.Motive,
				slice[0].OriginalID, slice[len(slice)-1].OriginalID)
			pf.File = fmt.Sprintf("%s-%d_%s.json", src.FileNumber, part, src.Slug)
		}
		for _, item := range slice {
			puzzle := item.Puzzle
			if total == 1 {
				puzzle.PuzzleID = fmt.Sprintf("%s-%s-%s", prefix, src.FileNumber, item.OriginalID)
			} else {
				puzzle.PuzzleID = fmt.Sprintf("%s-%s-%d-%s", prefix, src.FileNumber, part, item.OriginalID)
			}
			pf.Puzzles = append(pf.Puzzles, puzzle)
		}
		chunks = append(chunks, pf)
	}
	return chunks
}
