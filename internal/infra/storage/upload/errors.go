package upload

import "errors"

var (
	// ErrUploadNotFound возвращается, когда загрузка не найдена
	ErrUploadNotFound = errors.New("upload.repository: upload not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("upload.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("upload.repository: failed to execute query")
)
