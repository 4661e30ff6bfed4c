package convert

// ProblemRef points the trainer at one generated problem file.
type ProblemRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	File string `json:"file"`
}

// IndexEntry lists one collection's generated problem files in order.
type IndexEntry struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Problems []ProblemRef `json:"problems"`
}

// Index is the top-level catalog the trainer loads first.
type Index struct {
	Collections []IndexEntry `json:"collections"`
}
