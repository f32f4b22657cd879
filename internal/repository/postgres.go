package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

type Credentials struct {
	Host              string
	Port              int
	User              string
	Password          string
	DBName            string
	MigrationsDirPath string
}

// PostgresPersistence implements the Persistence contract on a relational
// backend: every record lands as a JSONB document in a single table, keyed by
// a generated uuid, so the same contract works against either store.
type PostgresPersistence struct {
	db *sql.DB
}

func NewPostgresPersistence(cred *Credentials) (*PostgresPersistence, error) {
	psqlconn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cred.Host,
		cred.Port,
		cred.User,
		cred.Password,
		cred.DBName)

	db, err := sql.Open("postgres", psqlconn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if e2 := db.Ping(); e2 != nil {
		return nil, fmt.Errorf("failed to ping database: %w", e2)
	}

	db.SetMaxOpenConns(100)
	db.SetMaxIdleConns(10)
	return &PostgresPersistence{db: db}, nil
}

func (p *PostgresPersistence) RunMigrations(cred *Credentials) error {
	driver, err := postgres.WithInstance(p.db, &postgres.Config{
		MigrationsTable: "storefront_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", cred.MigrationsDirPath),
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if e2 := m.Up(); e2 != nil && !errors.Is(e2, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", e2)
	}

	return nil
}

func (p *PostgresPersistence) Create(ctx context.Context, collection string, record interface{}) (string, error) {
	doc, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("failed to marshal record: %w", err)
	}

	id := uuid.New().String()
	query := `INSERT INTO documents (id, collection, doc, created_at, updated_at)
	          VALUES ($1, $2, $3, NOW(), NOW())`

	if _, err := p.db.ExecContext(ctx, query, id, collection, doc); err != nil {
		return "", fmt.Errorf("insert record into %s: %w", collection, err)
	}
	return id, nil
}

func (p *PostgresPersistence) Update(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	patch, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to marshal patch: %w", err)
	}

	query := `UPDATE documents SET doc = doc || $3::jsonb, updated_at = NOW()
	          WHERE id = $1 AND collection = $2`

	res, err := p.db.ExecContext(ctx, query, id, collection, patch)
	if err != nil {
		return fmt.Errorf("update record %s in %s: %w", id, collection, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (p *PostgresPersistence) Find(ctx context.Context, collection, id string, out interface{}) error {
	query := `SELECT doc FROM documents WHERE id = $1 AND collection = $2`

	var doc []byte
	err := p.db.QueryRowContext(ctx, query, id, collection).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrRecordNotFound
	}
	if err != nil {
		return fmt.Errorf("query record %s in %s: %w", id, collection, err)
	}

	if err := json.Unmarshal(doc, out); err != nil {
		return fmt.Errorf("unmarshal record: %w", err)
	}
	return nil
}

func (p *PostgresPersistence) Close() error {
	return p.db.Close()
}
