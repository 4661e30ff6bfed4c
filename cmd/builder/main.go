package main

import (
	"flag"
	"log"

	"github.com/chesscoach/puzzlebuild/internal/collection"
	"github.com/chesscoach/puzzlebuild/internal/config"
	"github.com/chesscoach/puzzlebuild/internal/store"
)

func main() {
	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatal(err)
	}

	collections := flag.String("collections", cfg.Build.Collections, "directory with one folder per puzzle collection")
	output := flag.String("output", cfg.Build.Output, "directory for the generated data set")
	flag.Parse()

	builder := collection.NewBuilder(*collections, store.NewFileStore(*output, cfg.Build.Index))
	stats, err := builder.Run()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("converted %d collections: %d problem files, %d puzzles (%d files skipped, %d puzzles skipped)",
		stats.Collections, stats.ProblemFiles, stats.Puzzles, stats.SkippedFiles, stats.SkippedRecords)
}
