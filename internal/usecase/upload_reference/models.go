package upload_reference

import "github.com/google/uuid"

// Request модель запроса на загрузку референса
type Request struct {
	Content      []byte
	OriginalName string
}

// Response модель ответа с адресом загруженного файла
type Response struct {
	ID  uuid.UUID
	URL string
}
