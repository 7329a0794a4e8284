package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/legaldoc/internal/types"
)

const correctionColumns = `id, document_type, section, line, value, document, created_by, created_at`

// SaveCorrection inserts a correction. A nil ID and a zero CreatedAt are
// filled in and written back to c.
func (db *DB) SaveCorrection(ctx context.Context, c *types.Correction) error {
	if c == nil {
		return errors.New("correction is nil")
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	document, err := json.Marshal(c.Document)
	if err != nil {
		return fmt.Errorf("failed to marshal corrected document: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO corrections (`+correctionColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, string(c.DocumentType), c.Section, c.Line, c.Value, document, nullableUUID(c.CreatedBy), c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save correction: %w", err)
	}
	return nil
}

// GetCorrection retrieves a correction by ID. It returns nil, nil when no
// correction has that ID.
func (db *DB) GetCorrection(ctx context.Context, id uuid.UUID) (*types.Correction, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+correctionColumns+` FROM corrections WHERE id = $1`,
		id,
	)
	c, err := scanCorrection(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get correction: %w", err)
	}
	return c, nil
}

// ListCorrections returns the most recent corrections, newest first. An empty
// documentType lists every type.
func (db *DB) ListCorrections(ctx context.Context, documentType types.DocumentType, limit int) ([]types.Correction, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := db.pool.Query(ctx,
		`SELECT `+correctionColumns+` FROM corrections
		 WHERE ($1 = '' OR document_type = $1)
		 ORDER BY created_at DESC LIMIT $2`,
		string(documentType), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list corrections: %w", err)
	}
	defer rows.Close()

	var corrections []types.Correction
	for rows.Next() {
		c, err := scanCorrection(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan correction: %w", err)
		}
		corrections = append(corrections, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list corrections: %w", err)
	}
	return corrections, nil
}

func scanCorrection(row pgx.Row) (*types.Correction, error) {
	var (
		c            types.Correction
		documentType string
		document     []byte
		createdBy    *uuid.UUID
	)
	if err := row.Scan(&c.ID, &documentType, &c.Section, &c.Line, &c.Value, &document, &createdBy, &c.CreatedAt); err != nil {
		return nil, err
	}

	c.DocumentType = types.DocumentType(documentType)
	if createdBy != nil {
		c.CreatedBy = *createdBy
	}
	if err := json.Unmarshal(document, &c.Document); err != nil {
		return nil, fmt.Errorf("failed to unmarshal corrected document: %w", err)
	}
	return &c, nil
}

func nullableUUID(id uuid.UUID) any {
	if id == uuid.Nil {
		return nil
	}
	return id
}
