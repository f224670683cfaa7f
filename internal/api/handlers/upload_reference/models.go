package upload_reference

import uploadReference "github.com/inkline/studio/internal/usecase/upload_reference"

// UploadResponse HTTP response model
type UploadResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *uploadReference.Response) *UploadResponse {
	return &UploadResponse{
		ID:  resp.ID.String(),
		URL: resp.URL,
	}
}
