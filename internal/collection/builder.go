package collection

import (
	"errors"
	"fmt"
	"io/ioutil"
	"log"
	"path/filepath"
	"strings"

	"github.com/chesscoach/puzzlebuild/internal/store"
	"github.com/chesscoach/puzzlebuild/pkg/convert"
)

// ErrNoCollections aborts the build: nothing under the root converted.
var ErrNoCollections = errors.New("no collections converted")

// Builder converts every collection folder under Root and writes the
// generated problem files and the index through Store. Collections,
// files and puzzles are processed strictly in order; every failure
// smaller than "no collections at all" degrades to a logged skip.
type Builder struct {
	Root  string
	Store store.ProblemStore
}

func NewBuilder(root string, st store.ProblemStore) *Builder {
	return &Builder{Root: root, Store: st}
}

// Stats sums up what one build run emitted and skipped.
type Stats struct {
	Collections    int
	ProblemFiles   int
	Puzzles        int
	SkippedFiles   int
	SkippedRecords int
}

// Run walks the collection folders in name order and writes the whole
// generated tree. The returned Stats are valid even on error.
func (b *Builder) Run() (Stats, error) {
	entries, err := ioutil.ReadDir(b.Root)
	if err != nil {
		return Stats{}, fmt.Errorf("read collections root: %v", err)
	}

	var (
		index convert.Index
		stats Stats
	)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(b.Root, entry.Name())
		desc, err := LoadDescriptor(dir)
		if err != nil {
			log.Printf("skipping %s: %v", entry.Name(), err)
			continue
		}
		indexEntry, err := b.buildCollection(dir, desc, &stats)
		if err != nil {
			log.Printf("skipping collection %s: %v", desc.ID, err)
			continue
		}
		index.Collections = append(index.Collections, indexEntry)
		stats.Collections++
	}
	if len(index.Collections) == 0 {
		return stats, ErrNoCollections
	}
	if err := b.Store.WriteIndex(index); err != nil {
		return stats, err
	}
	return stats, nil
}

func (b *Builder) buildCollection(dir string, desc Descriptor, stats *Stats) (convert.IndexEntry, error) {
	names, err := pgnFiles(dir)
	if err != nil {
		return convert.IndexEntry{}, err
	}
	if len(names) == 0 {
		return convert.IndexEntry{}, fmt.Errorf("no PGN files in %s", dir)
	}

	entry := convert.IndexEntry{ID: desc.ID, Name: desc.Name}
	for _, name := range names {
		src, err := convert.ParseSourceName(name)
		if err != nil {
			log.Printf("skipping %s: %v", name, err)
			stats.SkippedFiles++
			continue
		}
		chunks, err := b.buildFile(filepath.Join(dir, name), src, desc, stats)
		if err != nil {
			return convert.IndexEntry{}, err
		}
		for _, chunk := range chunks {
			if err := b.Store.WriteProblems(desc.ID, chunk.File, chunk.Puzzles); err != nil {
				return convert.IndexEntry{}, err
			}
			entry.Problems = append(entry.Problems, convert.ProblemRef{
				ID:   chunk.ID,
				Name: chunk.Name,
				File: chunk.File,
			})
			stats.ProblemFiles++
			stats.Puzzles += len(chunk.Puzzles)
		}
	}
	return entry, nil
}

// buildFile converts one source file: segment, assemble each record,
// then cut the survivors into bounded chunks. A record that fails to
// assemble only costs itself.
func (b *Builder) buildFile(path string, src convert.SourceName, desc Descriptor, stats *Stats) ([]convert.ProblemFile, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var puzzles []convert.Sequenced
	for _, rec := range convert.SplitRecords(string(raw)) {
		puzzle, err := convert.AssemblePuzzle(rec, desc.DefaultType, desc.Source, src.Motive)
		if err != nil {
			log.Printf("%s: puzzle %s: %v", filepath.Base(path), rec.OriginalID, err)
			stats.SkippedRecords++
			continue
		}
		puzzles = append(puzzles, convert.Sequenced{Puzzle: puzzle, OriginalID: rec.OriginalID})
	}
	return convert.SplitChunks(desc.PuzzleIDPrefix, src, puzzles, desc.PuzzlesPerFile), nil
}

func pgnFiles(dir string) ([]string, error) {
	entries, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".pgn") {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}
