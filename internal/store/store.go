package store

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/chesscoach/puzzlebuild/pkg/convert"
)

// ProblemStore receives everything a build emits. Writes are
// independent: a failed write never rolls back earlier ones.
type ProblemStore interface {
	WriteProblems(collectionID, filename string, puzzles []convert.Puzzle) error

	WriteIndex(index convert.Index) error
}

// FileStore writes the generated tree under Root:
// {Root}/{collectionID}/{filename} for problem files and
// {Root}/{IndexName} for the catalog. The tree is fully regenerable,
// deleting it and rebuilding yields identical bytes.
type FileStore struct {
	Root      string
	IndexName string
}

func NewFileStore(root, indexName string) *FileStore {
	if indexName == "" {
		indexName = "index.json"
	}
	return &FileStore{Root: root, IndexName: indexName}
}

func (s *FileStore) WriteProblems(collectionID, filename string, puzzles []convert.Puzzle) error {
	dir := filepath.Join(s.Root, collectionID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return writeJSON(filepath.Join(dir, filename), puzzles)
}

func (s *FileStore) WriteIndex(index convert.Index) error {
	if err := os.MkdirAll(s.Root, 0755); err != nil {
		return err
	}
	return writeJSON(filepath.Join(s.Root, s.IndexName), index)
}

func writeJSON(path string, v interface{}) error {
	raw, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, append(raw, '\n'), 0644)
}
