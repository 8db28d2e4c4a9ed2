package file

import "errors"

var (
	// ErrRead возвращается, когда файл снимка не удалось прочитать
	ErrRead = errors.New("file.repository: failed to read snapshot")

	// ErrDecode возвращается, когда содержимое файла не является корректным снимком
	ErrDecode = errors.New("file.repository: failed to decode snapshot")

	// ErrEncode возвращается, когда снимок не удалось сериализовать
	ErrEncode = errors.New("file.repository: failed to encode snapshot")

	// ErrWrite возвращается, когда снимок не удалось записать на диск
	ErrWrite = errors.New("file.repository: failed to write snapshot")
)
