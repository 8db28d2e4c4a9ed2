package postgres

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("postgres.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("postgres.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("postgres.repository: failed to scan row")

	// ErrEncode возвращается, когда снимок не удалось сериализовать
	ErrEncode = errors.New("postgres.repository: failed to encode snapshot")

	// ErrDecode возвращается, когда документ из базы не удалось разобрать
	ErrDecode = errors.New("postgres.repository: failed to decode snapshot")
)
