package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oakhq/fielddex/internal/config"
)

// Postgres stores documents in a single JSONB table:
//
//	documents(collection text, id text, data jsonb, created_at, updated_at)
//
// Merge-patch updates use the jsonb || operator, so unset fields in a patch
// never touch stored fields.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates and validates a connection pool over the documents
// table.
func NewPostgres(ctx context.Context, cfg *config.Config) (*Postgres, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnLifetime = cfg.DBPoolMaxLife
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	// Register prepared statements on every new connection.
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return registerPreparedStatements(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	// Verify connectivity
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Postgres{pool: pool}, nil
}

// Pool exposes the underlying pool for health checks and migrations.
func (p *Postgres) Pool() *pgxpool.Pool { return p.pool }

// Close releases the connection pool.
func (p *Postgres) Close() { p.pool.Close() }

// HealthCheck runs a trivial query to verify the database is reachable.
func (p *Postgres) HealthCheck(ctx context.Context) error {
	var n int
	return p.pool.QueryRow(ctx, "health_check").Scan(&n)
}

func (p *Postgres) Create(ctx context.Context, collection string, data any) (string, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}

	id := uuid.NewString()
	if _, err := p.pool.Exec(ctx, "doc_insert", collection, id, body); err != nil {
		return "", fmt.Errorf("insert document in %s: %w", collection, err)
	}
	return id, nil
}

func (p *Postgres) Put(ctx context.Context, collection, id string, data any) error {
	body, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if _, err := p.pool.Exec(ctx, "doc_upsert", collection, id, body); err != nil {
		return fmt.Errorf("upsert document %s/%s: %w", collection, id, err)
	}
	return nil
}

func (p *Postgres) GetAll(ctx context.Context, collection string) ([]Document, error) {
	rows, err := p.pool.Query(ctx, "doc_select_all", collection)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", collection, err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var doc Document
		if err := rows.Scan(&doc.ID, &doc.Data); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", collection, err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s rows: %w", collection, err)
	}
	return docs, nil
}

func (p *Postgres) GetByID(ctx context.Context, collection, id string) (Document, error) {
	doc := Document{ID: id}
	err := p.pool.QueryRow(ctx, "doc_select_by_id", collection, id).Scan(&doc.Data)
	if errors.Is(err, pgx.ErrNoRows) {
		return Document{}, ErrNotFound
	}
	if err != nil {
		return Document{}, fmt.Errorf("select %s/%s: %w", collection, id, err)
	}
	return doc, nil
}

func (p *Postgres) Update(ctx context.Context, collection, id string, patch any) error {
	body, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("encode patch: %w", err)
	}

	tag, err := p.pool.Exec(ctx, "doc_update", collection, id, body)
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) Delete(ctx context.Context, collection, id string) error {
	// Idempotent: a zero-row delete is fine.
	if _, err := p.pool.Exec(ctx, "doc_delete", collection, id); err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return nil
}

// Migrate creates the documents table and its indexes. Used by
// fieldctl migrate and the integration test harness.
func (p *Postgres) Migrate(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS documents (
			collection TEXT NOT NULL,
			id         TEXT NOT NULL,
			data       JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (collection, id)
		);
		CREATE INDEX IF NOT EXISTS idx_documents_collection
			ON documents (collection);
		CREATE INDEX IF NOT EXISTS idx_documents_data
			ON documents USING GIN (data);
	`)
	if err != nil {
		return fmt.Errorf("create documents table: %w", err)
	}
	return nil
}

// registerPreparedStatements registers all statements the document store
// uses. Prepared statements eliminate parse overhead on every request.
func registerPreparedStatements(ctx context.Context, conn *pgx.Conn) error {
	stmts := map[string]string{
		// Health
		"health_check": "SELECT 1",

		// Documents
		"doc_insert":       "INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3)",
		"doc_upsert":       "INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3) ON CONFLICT (collection, id) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()",
		"doc_select_all":   "SELECT id, data FROM documents WHERE collection = $1 ORDER BY id",
		"doc_select_by_id": "SELECT data FROM documents WHERE collection = $1 AND id = $2",
		"doc_update":       "UPDATE documents SET data = data || $3::jsonb, updated_at = NOW() WHERE collection = $1 AND id = $2",
		"doc_delete":       "DELETE FROM documents WHERE collection = $1 AND id = $2",
	}

	for name, sql := range stmts {
		if _, err := conn.Prepare(ctx, name, sql); err != nil {
			return fmt.Errorf("prepare %q: %w", name, err)
		}
	}
	return nil
}
