package request_models

type CreateLanguageRequest struct {
	Code      string `json:"code" binding:"required,min=2,max=5"`
	Name      string `json:"name" binding:"required"`
	IsDefault bool   `json:"is_default"`
}

type CreateTranslationRequest struct {
	LanguageCode string `json:"language_code" binding:"required,min=2,max=5"`
	Key          string `json:"key" binding:"required"`
	Value        string `json:"value" binding:"required"`
}
