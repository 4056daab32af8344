package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/docassist-labs/docassist-core/internal/core/domain"
	"github.com/docassist-labs/docassist-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore implements driven.DocumentStore using PostgreSQL.
// A document and its chunks are always written in one transaction.
type DocumentStore struct {
	db *DB
}

// NewDocumentStore creates a new DocumentStore
func NewDocumentStore(db *DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// Put inserts a new document with all of its chunks
func (s *DocumentStore) Put(ctx context.Context, doc *domain.Document) error {
	return s.db.Transaction(ctx, func(tx *sql.Tx) error {
		query := `
			INSERT INTO documents (id, owner_id, name, content, created_at)
			VALUES ($1, $2, $3, $4, $5)
		`

		_, err := tx.ExecContext(ctx, query,
			doc.ID,
			doc.OwnerID,
			doc.Name,
			doc.Content,
			doc.CreatedAt,
		)
		if err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code == "23505" {
				return domain.ErrDuplicateDocument
			}
			return err
		}

		return insertChunks(ctx, tx, doc)
	})
}

// Replace rewrites an existing document and its chunks atomically
func (s *DocumentStore) Replace(ctx context.Context, doc *domain.Document) error {
	return s.db.Transaction(ctx, func(tx *sql.Tx) error {
		query := `
			UPDATE documents
			SET name = $3, content = $4, created_at = $5
			WHERE id = $1 AND owner_id = $2
		`

		result, err := tx.ExecContext(ctx, query,
			doc.ID,
			doc.OwnerID,
			doc.Name,
			doc.Content,
			doc.CreatedAt,
		)
		if err != nil {
			return err
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rowsAffected == 0 {
			return domain.ErrNotFound
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM chunks WHERE document_id = $1`, doc.ID); err != nil {
			return err
		}

		return insertChunks(ctx, tx, doc)
	})
}

func insertChunks(ctx context.Context, tx *sql.Tx, doc *domain.Document) error {
	if len(doc.Chunks) == 0 {
		return nil
	}

	query := `
		INSERT INTO chunks (document_id, position, text, embedding)
		VALUES ($1, $2, $3, $4)
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, chunk := range doc.Chunks {
		_, err := stmt.ExecContext(ctx,
			doc.ID,
			chunk.Position,
			chunk.Text,
			embeddingArray(chunk.Embedding),
		)
		if err != nil {
			return err
		}
	}

	return nil
}

// Get retrieves a single document with its chunks
func (s *DocumentStore) Get(ctx context.Context, ownerID, documentID string) (*domain.Document, error) {
	query := `
		SELECT id, owner_id, name, content, created_at
		FROM documents
		WHERE owner_id = $1 AND id = $2
	`

	var doc domain.Document
	err := s.db.QueryRowContext(ctx, query, ownerID, documentID).Scan(
		&doc.ID,
		&doc.OwnerID,
		&doc.Name,
		&doc.Content,
		&doc.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	chunks, err := s.loadChunks(ctx, doc.ID)
	if err != nil {
		return nil, err
	}
	doc.Chunks = chunks

	return &doc, nil
}

// GetByOwner retrieves all documents for a user, chunks included
func (s *DocumentStore) GetByOwner(ctx context.Context, ownerID string) ([]*domain.Document, error) {
	query := `
		SELECT id, owner_id, name, content, created_at
		FROM documents
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*domain.Document
	for rows.Next() {
		var doc domain.Document
		err := rows.Scan(
			&doc.ID,
			&doc.OwnerID,
			&doc.Name,
			&doc.Content,
			&doc.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		docs = append(docs, &doc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, doc := range docs {
		chunks, err := s.loadChunks(ctx, doc.ID)
		if err != nil {
			return nil, err
		}
		doc.Chunks = chunks
	}

	return docs, nil
}

func (s *DocumentStore) loadChunks(ctx context.Context, documentID string) ([]*domain.Chunk, error) {
	query := `
		SELECT position, text, embedding
		FROM chunks
		WHERE document_id = $1
		ORDER BY position ASC
	`

	rows, err := s.db.QueryContext(ctx, query, documentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chunks []*domain.Chunk
	for rows.Next() {
		var chunk domain.Chunk
		var embedding pq.Float64Array
		if err := rows.Scan(&chunk.Position, &chunk.Text, &embedding); err != nil {
			return nil, err
		}
		chunk.Embedding = toFloat32(embedding)
		chunks = append(chunks, &chunk)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return chunks, nil
}

// Delete removes a document and its chunks
func (s *DocumentStore) Delete(ctx context.Context, ownerID, documentID string) error {
	query := `DELETE FROM documents WHERE owner_id = $1 AND id = $2`
	result, err := s.db.ExecContext(ctx, query, ownerID, documentID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// CountByOwner returns document count for a user
func (s *DocumentStore) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	query := `SELECT COUNT(*) FROM documents WHERE owner_id = $1`
	var count int
	err := s.db.QueryRowContext(ctx, query, ownerID).Scan(&count)
	return count, err
}

// embeddingArray widens a float32 vector for float8[] column storage
func embeddingArray(v []float32) pq.Float64Array {
	out := make(pq.Float64Array, len(v))
	for i, f := range v {
		out[i] = float64(f)
	}
	return out
}

func toFloat32(v pq.Float64Array) []float32 {
	out := make([]float32, len(v))
	for i, f := range v {
		out[i] = float32(f)
	}
	return out
}
