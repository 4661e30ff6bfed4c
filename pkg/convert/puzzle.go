package convert

import (
	"errors"
	"fmt"
	"strings"
)

// Puzzle types. Static puzzles ask for the best move as the side to
// move; dynamic puzzles replay the side to move's blunder automatically
// and ask the other side to punish it.
const (
	TypeStatic  = "static"
	TypeDynamic = "dynamic"
)

// Puzzle is one trainer exercise, written verbatim into the generated
// JSON files. The PuzzleID is assigned by the chunker.
type Puzzle struct {
	PuzzleID    string `json:"puzzleId"`
	FEN         string `json:"fen"`
	Type        string `json:"type"`
	Orientation string `json:"orientation"`
	Solution    []Move `json:"solution"`
	Source      string `json:"source"`
	Motive      string `json:"motive"`
}

// ErrNoMoves reports a record whose move text produced no playable
// solution. The caller skips the record and keeps the build going.
var ErrNoMoves = errors.New("no decodable moves")

// Orientation returns the side the solver faces, "white" or "black",
// from the side to move in fen. Dynamic puzzles flip it: the first move
// is played for the opponent, the solver answers from the other side.
func Orientation(fen, puzzleType string) (string, error) {
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return "", fmt.Errorf("malformed position %q", fen)
	}
	white := fields[1] == "w"
	if puzzleType == TypeDynamic {
		white = !white
	}
	if white {
		return "white", nil
	}
	return "black", nil
}

// AssemblePuzzle builds the output record for one segment. A position
// missing its side-to-move field is an error; move text that decodes to
// nothing fails with ErrNoMoves. Either way only this record is lost.
func AssemblePuzzle(rec Record, puzzleType, source, motive string) (Puzzle, error) {
	orientation, err := Orientation(rec.FEN, puzzleType)
	if err != nil {
		return Puzzle{}, err
	}
	solution := DecodeMoves(rec.FEN, rec.MoveText)
	if len(solution) == 0 {
		return Puzzle{}, ErrNoMoves
	}
	return Puzzle{
		FEN:         rec.FEN,
		Type:        puzzleType,
		Orientation: orientation,
		Solution:    solution,
		Source:      source,
		Motive:      motive,
	}, nil
}
