package api

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/chesscoach/puzzlebuild/pkg/convert"
)

// ProblemApi serves a generated puzzle tree to the trainer during
// development. It is read-only over the output directory; the build
// pipeline itself has no network surface.
type ProblemApi struct {
	Root      string
	IndexName string
}

func NewProblemApi(root, indexName string) *ProblemApi {
	if indexName == "" {
		indexName = "index.json"
	}
	return &ProblemApi{Root: root, IndexName: indexName}
}

func (p *ProblemApi) Collections(ctx *gin.Context) {
	raw, err := ioutil.ReadFile(filepath.Join(p.Root, p.IndexName))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	var index convert.Index
	if err := json.Unmarshal(raw, &index); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	ctx.JSON(http.StatusOK, index)
}

func (p *ProblemApi) Problems(ctx *gin.Context) {
	// Base() keeps requests inside the generated tree
	collection := filepath.Base(ctx.Param("collection"))
	file := filepath.Base(ctx.Param("file"))

	raw, err := ioutil.ReadFile(filepath.Join(p.Root, collection, file))
	if err != nil {
		ctx.AbortWithStatus(http.StatusNotFound)
		return
	}
	var puzzles []convert.Puzzle
	if err := json.Unmarshal(raw, &puzzles); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	ctx.JSON(http.StatusOK, puzzles)
}
