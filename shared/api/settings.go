package api

type SetLanguageRequest struct {
	Language string `json:"language" validate:"required"`
}

type LanguageResponse struct {
	Language string `json:"language"`
	RTL      bool   `json:"rtl"`
}

type TranslationsResponse struct {
	Language     string            `json:"language"`
	RTL          bool              `json:"rtl"`
	Translations map[string]string `json:"translations"`
}
