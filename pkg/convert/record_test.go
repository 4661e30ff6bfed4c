package convert

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitRecords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Record
	}{
		{
			name: "event boundaries",
			text: `[Event "?"]
[FEN "6k1/5pp1/7p/3p4/b7/6P1/5PKP/3R4 w - - 0 1"]
1. Rd1-d5 *

[Event "?"]
[FEN "8/8/8/8/8/8/8/K1k5 b - - 0 1"]
1... Kc1-c2 *
`,
			want: []Record{
				{FEN: "6k1/5pp1/7p/3p4/b7/6P1/5PKP/3R4 w - - 0 1", MoveText: "1. Rd1-d5 *", OriginalID: "1"},
				{FEN: "8/8/8/8/8/8/8/K1k5 b - - 0 1", MoveText: "1... Kc1-c2 *", OriginalID: "2"},
			},
		},
		{
			name: "original id captured",
			text: `[OriginalID "4711"]
[FEN "8/8/8/8/8/8/8/K1k5 b - - 0 1"]
1... Kc2 *
`,
			want: []Record{
				{FEN: "8/8/8/8/8/8/8/K1k5 b - - 0 1", MoveText: "1... Kc2 *", OriginalID: "4711"},
			},
		},
		{
			name: "zero fullmove bumped to one",
			text: `[FEN "8/8/8/8/8/8/8/K1k5 b - - 0 0"]
1... Kc2 *
`,
			want: []Record{
				{FEN: "8/8/8/8/8/8/8/K1k5 b - - 0 1", MoveText: "1... Kc2 *", OriginalID: "1"},
			},
		},
		{
			name: "last FEN before moves wins",
			text: `[FEN "8/8/8/8/8/8/8/KBk5 b - - 0 1"]
[FEN "8/8/8/8/8/8/8/K1k5 b - - 0 1"]
1... Kc2 *
`,
			want: []Record{
				{FEN: "8/8/8/8/8/8/8/K1k5 b - - 0 1", MoveText: "1... Kc2 *", OriginalID: "1"},
			},
		},
		{
			name: "move lines joined with single spaces",
			text: `[FEN "8/8/8/8/8/8/8/K1k5 b - - 0 1"]
1... Kc2
2. Ka2 *
`,
			want: []Record{
				{FEN: "8/8/8/8/8/8/8/K1k5 b - - 0 1", MoveText: "1... Kc2 2. Ka2 *", OriginalID: "1"},
			},
		},
		{
			name: "segment without FEN dropped",
			text: `[Event "?"]
1. e4 *
[Event "?"]
[FEN "8/8/8/8/8/8/8/K1k5 b - - 0 1"]
1... Kc2 *
`,
			want: []Record{
				{FEN: "8/8/8/8/8/8/8/K1k5 b - - 0 1", MoveText: "1... Kc2 *", OriginalID: "1"},
			},
		},
		{
			name: "segment without moves dropped",
			text: `[FEN "8/8/8/8/8/8/8/KBk5 b - - 0 1"]
[Event "?"]
[FEN "8/8/8/8/8/8/8/K1k5 b - - 0 1"]
1... Kc2 *
`,
			want: []Record{
				{FEN: "8/8/8/8/8/8/8/K1k5 b - - 0 1", MoveText: "1... Kc2 *", OriginalID: "1"},
			},
		},
		{
			name: "unknown tags ignored",
			text: `[White "Anderssen"]
[FEN "8/8/8/8/8/8/8/K1k5 b - - 0 1"]
[SetUp "1"]
1... Kc2 *
`,
			want: []Record{
				{FEN: "8/8/8/8/8/8/8/K1k5 b - - 0 1", MoveText: "1... Kc2 *", OriginalID: "1"},
			},
		},
		{
			name: "crlf line endings",
			text: "[FEN \"8/8/8/8/8/8/8/K1k5 b - - 0 1\"]\r\n1... Kc2 *\r\n",
			want: []Record{
				{FEN: "8/8/8/8/8/8/8/K1k5 b - - 0 1", MoveText: "1... Kc2 *", OriginalID: "1"},
			},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitRecords(tt.text)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitRecords() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// An explicit OriginalID must never leak into the segment after it: the
// accumulator id resets whenever a segment closes, so id-less segments
// always fall back to positional numbering.
func TestSplitRecordsNoStaleID(t *testing.T) {
	text := `[OriginalID "77"]
[FEN "8/8/8/8/8/8/8/K1k5 b - - 0 1"]
1... Kc2 *
[Event "?"]
[FEN "8/8/8/8/8/8/8/K1k5 b - - 0 1"]
1... Kc2 *
`
	got := SplitRecords(text)
	want := []Record{
		{FEN: "8/8/8/8/8/8/8/K1k5 b - - 0 1", MoveText: "1... Kc2 *", OriginalID: "77"},
		{FEN: "8/8/8/8/8/8/8/K1k5 b - - 0 1", MoveText: "1... Kc2 *", OriginalID: "2"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SplitRecords() mismatch (-want +got):\n%s", diff)
	}
}

func TestFixFullmove(t *testing.T) {
	tests := []struct {
		fen  string
		want string
	}{
		{"6k1/5pp1/7p/3p4/b7/6P1/5PKP/3R4 w - - 0 0", "6k1/5pp1/7p/3p4/b7/6P1/5PKP/3R4 w - - 0 1"},
		{"6k1/5pp1/7p/3p4/b7/6P1/5PKP/3R4 w - - 0 1", "6k1/5pp1/7p/3p4/b7/6P1/5PKP/3R4 w - - 0 1"},
		{"6k1/5pp1/7p/3p4/b7/6P1/5PKP/3R4 b - - 3 40", "6k1/5pp1/7p/3p4/b7/6P1/5PKP/3R4 b - - 3 40"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := fixFullmove(tt.fen); got != tt.want {
			t.Errorf("fixFullmove(%q) = %q, want %q", tt.fen, got, tt.want)
		}
	}
}
