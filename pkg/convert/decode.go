package convert

import (
	"regexp"
	"strings"

	"github.com/notnil/chess"
)

// Move is one solution step in board coordinates.
type Move struct {
	From string `json:"from"`
	To   string `json:"to"`
}

var (
	commentRE   = regexp.MustCompile(`\{[^}]*\}`)
	variationRE = regexp.MustCompile(`\([^)]*\)`)
	moveNumRE   = regexp.MustCompile(`\d+\.(\.\.)?`)

	// "Rd1-d5", "Rd1xd5", "e7-e8=Q" and the separator-less "e2e4"
	longFormRE = regexp.MustCompile(`^([KQRBN]?)([a-h][1-8])[-x:]?([a-h][1-8])(?:=?([QRBNqrbn]))?$`)

	// result markers and stray brackets, replaced before splitting
	markerReplacer = strings.NewReplacer(
		"1/2-1/2", " ",
		"1-0", " ",
		"0-1", " ",
		"*", " ",
		"[", " ",
		"]", " ",
	)
)

// DecodeMoves replays moveText from the position in fen and returns the
// coordinate moves that applied legally. Hand-authored sources mix long
// and short algebraic notation and carry stray annotations, so a token
// the rules engine rejects is dropped and decoding continues from the
// last applied move; one bad token should not cost the whole puzzle.
func DecodeMoves(fen, moveText string) []Move {
	fenOpt, err := chess.FEN(fen)
	if err != nil {
		return nil
	}
	game := chess.NewGame(fenOpt)

	var solution []Move
	for _, tok := range cleanMoveText(moveText) {
		move := tryMove(game, tok)
		if move == nil {
			continue
		}
		solution = append(solution, Move{
			From: move.S1().String(),
			To:   move.S2().String(),
		})
	}
	return solution
}

// cleanMoveText strips comments, variations, result markers, move
// numbers and leftover ellipsis or number runs, returning bare move
// tokens.
func cleanMoveText(text string) []string {
	s := commentRE.ReplaceAllString(text, " ")
	s = variationRE.ReplaceAllString(s, " ")
	s = markerReplacer.Replace(s)
	s = moveNumRE.ReplaceAllString(s, " ")

	var tokens []string
	for _, tok := range strings.Fields(s) {
		if isDots(tok) || isDigits(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// tryMove attempts one token first as short algebraic notation, then as
// the long coordinate forms. Returns nil when no reading yields a legal
// move; the game state is only advanced on success.
func tryMove(game *chess.Game, tok string) *chess.Move {
	switch tok {
	case "0-0":
		tok = "O-O"
	case "0-0-0":
		tok = "O-O-O"
	}
	if move := applyNotation(game, chess.AlgebraicNotation{}, tok); move != nil {
		return move
	}
	stripped := strings.TrimRight(tok, "+#!?")
	if m := longFormRE.FindStringSubmatch(stripped); m != nil {
		coord := m[2] + m[3] + strings.ToLower(m[4])
		if move := applyNotation(game, chess.UCINotation{}, coord); move != nil {
			return move
		}
	}
	return nil
}

func applyNotation(game *chess.Game, notation chess.Notation, tok string) *chess.Move {
	move, err := notation.Decode(game.Position(), tok)
	if err != nil {
		return nil
	}
	if err := game.Move(move); err != nil {
		return nil
	}
	return move
}

func isDots(s string) bool {
	for _, r := range s {
		if r != '.' {
			return false
		}
	}
	return len(s) > 0
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
