package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/snapshot"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

const table = "salon_snapshots"

const schema = `CREATE TABLE IF NOT EXISTS salon_snapshots (
	name       TEXT PRIMARY KEY,
	document   JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Repository хранит снимок салона одной JSONB строкой в таблице salon_snapshots
type Repository struct {
	db   DBExecutor
	name string
	opts []domain.Option
}

// NewRepository создает репозиторий для салона с именем name.
// Имя используется как ключ строки и как имя нового салона, если строки еще нет.
func NewRepository(db DBExecutor, name string, opts ...domain.Option) *Repository {
	return &Repository{db: db, name: name, opts: opts}
}

// Open открывает соединение с PostgreSQL через драйвер lib/pq
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: Open: %v", ErrExecQuery, err)
	}
	return db, nil
}

// EnsureSchema создает таблицу снимков, если ее нет
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%w: EnsureSchema: %v", ErrExecQuery, err)
	}
	return nil
}

// Load читает снимок салона. Если строки нет, возвращает новый пустой салон.
func (r *Repository) Load(ctx context.Context) (*domain.Salon, error) {
	query, args, err := loadQuery(r.name)
	if err != nil {
		return nil, fmt.Errorf("%w: Load - build select query: %v", ErrBuildQuery, err)
	}

	var raw []byte
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewSalon(r.name, r.opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - scan document: %v", ErrScanRow, err)
	}

	var doc snapshot.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: Load: %v", ErrDecode, err)
	}

	salon, err := snapshot.ToSalon(doc, r.opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: Load: %v", ErrDecode, err)
	}
	return salon, nil
}

// Save записывает снимок салона (upsert по имени, заданному при создании репозитория)
func (r *Repository) Save(ctx context.Context, salon *domain.Salon) error {
	raw, err := json.Marshal(snapshot.FromSalon(salon))
	if err != nil {
		return fmt.Errorf("%w: Save: %v", ErrEncode, err)
	}

	query, args, err := saveQuery(r.name, raw)
	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

func loadQuery(name string) (string, []interface{}, error) {
	return psqlbuilder.Select("document").
		From(table).
		Where(squirrel.Eq{"name": name}).
		ToSql()
}

// saveQuery документ передается строкой: lib/pq отправляет []byte как bytea
func saveQuery(name string, document []byte) (string, []interface{}, error) {
	return psqlbuilder.Insert(table).
		Columns("name", "document", "updated_at").
		Values(name, string(document), squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (name) DO UPDATE SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at").
		ToSql()
}
