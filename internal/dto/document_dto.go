package dto

// UploadDocumentRequest carries the non-file fields of the multipart upload
// form. Either a file or the raw 'text' field must be present.
type UploadDocumentRequest struct {
	ApiKey    string `form:"api_key" validate:"required"`
	Provider  string `form:"provider" validate:"omitempty,oneof=openai gemini"`
	SessionId string `form:"session_id" validate:"omitempty,uuid4"`
	Text      string `form:"text"`
}

type UploadDocumentResponse struct {
	SessionId  string   `json:"session_id"`
	ChunkCount int      `json:"chunk_count"`
	Files      []string `json:"files"`
}
