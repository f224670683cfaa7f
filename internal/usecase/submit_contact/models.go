package submit_contact

import "time"

// Request модель обращения через контактную форму
type Request struct {
	Name    string
	Email   string
	Phone   *string
	Subject *string
	Message string
}

// Response модель ответа с сохранённым обращением
type Response struct {
	ID        int64
	Status    string
	CreatedAt time.Time
}
