package domain

import "time"

// Document is an ingested text document owned by a single user.
// A document and all of its chunks are written together, never partially.
type Document struct {
	ID        string    `json:"document_id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"document_name"`
	Content   string    `json:"content"` // cleaned full text
	Chunks    []*Chunk  `json:"chunks,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Chunk is a bounded-length, sentence-respecting slice of document text
// paired with its embedding vector. Immutable once created.
type Chunk struct {
	Text      string    `json:"text"`
	Embedding []float32 `json:"embedding,omitempty"`
	Position  int       `json:"position"` // original text order within the document
}

// DocumentSummary provides a listing view of a document (no chunks, no embeddings)
type DocumentSummary struct {
	ID        string    `json:"document_id"`
	Name      string    `json:"document_name"`
	CreatedAt time.Time `json:"created_at"`
}

// ToSummary converts a Document to a DocumentSummary
func (d *Document) ToSummary() *DocumentSummary {
	return &DocumentSummary{
		ID:        d.ID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
	}
}

// ChunkCount returns the number of chunks in the document
func (d *Document) ChunkCount() int {
	return len(d.Chunks)
}
