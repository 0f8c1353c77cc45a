package dto

type SendChatRequest struct {
	SessionId string `json:"session_id" validate:"required,uuid4"`
	Question  string `json:"question" validate:"required"`
}

type SendChatResponse struct {
	Answer  string   `json:"answer"`
	Sources []string `json:"sources"`
}

type DemoChatRequest struct {
	Question string `json:"question" validate:"required"`
}

type DemoChatResponse struct {
	Answer  string   `json:"answer"`
	Sources []string `json:"sources"`
	Demo    bool     `json:"demo"`
}
