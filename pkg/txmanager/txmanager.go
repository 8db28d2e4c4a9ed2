package txmanager

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ErrSave снимок не удалось сохранить
var ErrSave = errors.New("txmanager: failed to save snapshot")

// Saver сохраняет снимок салона
type Saver interface {
	Save(ctx context.Context, salon *domain.Salon) error
}

// Logger пишет ошибки сохранения
type Logger interface {
	Error(format string, v ...interface{})
}

// Manager сериализует доступ к агрегату салона одним мьютексом
// и сохраняет снимок после каждой успешной изменяющей операции.
//
// Ошибка сохранения не откатывает операцию: изменение уже применено в памяти,
// Do возвращает nil, а ошибка пишется в лог и доступна через SaveError
// до следующего успешного сохранения.
type Manager struct {
	mu       sync.Mutex
	salon    *domain.Salon
	saver    Saver
	autosave bool
	logger   Logger
	saveErr  error
}

// Option настраивает Manager
type Option func(*Manager)

// WithLogger задает логгер для ошибок сохранения
func WithLogger(logger Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager создает менеджер. При autosave=false снимок пишется только через Flush.
func NewManager(salon *domain.Salon, saver Saver, autosave bool, opts ...Option) *Manager {
	m := &Manager{
		salon:    salon,
		saver:    saver,
		autosave: autosave,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Do выполняет изменяющую операцию под блокировкой.
// Снимок сохраняется только если fn завершилась без ошибки.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context, salon *domain.Salon) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := fn(ctx, m.salon); err != nil {
		return err
	}

	if m.autosave {
		if err := m.save(ctx); err != nil && m.logger != nil {
			m.logger.Error("Changes applied but not saved: %v", err)
		}
	}
	return nil
}

// SaveError возвращает ошибку последнего сохранения или nil, если снимок актуален
func (m *Manager) SaveError() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.saveErr
}

// DoReadOnly выполняет чтение под блокировкой, снимок не сохраняется
func (m *Manager) DoReadOnly(ctx context.Context, fn func(ctx context.Context, salon *domain.Salon) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return fn(ctx, m.salon)
}

// Flush принудительно сохраняет текущий снимок
func (m *Manager) Flush(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.save(ctx)
}

// save вызывается под блокировкой
func (m *Manager) save(ctx context.Context) error {
	if m.saver == nil {
		return nil
	}
	if err := m.saver.Save(ctx, m.salon); err != nil {
		m.saveErr = fmt.Errorf("%w: %v", ErrSave, err)
		return m.saveErr
	}
	m.saveErr = nil
	return nil
}
