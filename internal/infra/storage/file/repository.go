package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/snapshot"
)

// Repository хранит снимок салона в одном JSON файле
type Repository struct {
	path        string
	defaultName string
	opts        []domain.Option
}

// NewRepository создает репозиторий поверх файла path.
// defaultName используется, когда файла еще нет.
func NewRepository(path, defaultName string, opts ...domain.Option) *Repository {
	if defaultName == "" {
		defaultName = domain.DefaultSalonName
	}
	return &Repository{path: path, defaultName: defaultName, opts: opts}
}

// Path путь к файлу снимка
func (r *Repository) Path() string {
	return r.path
}

// Load читает салон из файла. Отсутствующий файл не ошибка: возвращается новый салон.
func (r *Repository) Load(ctx context.Context) (*domain.Salon, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.NewSalon(r.defaultName, r.opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRead, r.path, err)
	}

	var doc snapshot.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, r.path, err)
	}

	salon, err := snapshot.ToSalon(doc, r.opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, r.path, err)
	}
	return salon, nil
}

// Save пишет снимок атомарно: во временный файл, затем rename
func (r *Repository) Save(ctx context.Context, salon *domain.Salon) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := json.MarshalIndent(snapshot.FromSalon(salon), "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: mkdir %s: %v", ErrWrite, dir, err)
		}
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, tmp, err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: rename %s: %v", ErrWrite, r.path, err)
	}
	return nil
}
