package handler

import (
	"net/http"

	"github.com/whisper-dev/whisper/backend/internal/alert"
	"github.com/whisper-dev/whisper/shared/api"
	"github.com/whisper-dev/whisper/shared/errors"
	"github.com/whisper-dev/whisper/shared/i18n"
	"github.com/whisper-dev/whisper/shared/utils"
)

func (h *Handler) GetLanguage(w http.ResponseWriter, r *http.Request) {
	lang := h.language.Get()
	writeJSON(w, api.LanguageResponse{Language: string(lang), RTL: i18n.RTL(lang)})
}

func (h *Handler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	var body api.SetLanguageRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		h.fail(w, err)
		return
	}

	lang, err := h.language.Set(body.Language)
	if err != nil {
		h.fail(w, err)
		return
	}

	h.announce(alert.Success, "languageChanged")
	writeJSON(w, api.LanguageResponse{Language: string(lang), RTL: i18n.RTL(lang)})
}

// GetTranslations returns the string table for ?lang=, defaulting to the active language.
func (h *Handler) GetTranslations(w http.ResponseWriter, r *http.Request) {
	lang := h.language.Get()
	if raw := r.URL.Query().Get("lang"); raw != "" {
		parsed, ok := i18n.ParseLanguage(raw)
		if !ok {
			h.fail(w, errors.BadRequest("Unsupported language"))
			return
		}
		lang = parsed
	}

	writeJSON(w, api.TranslationsResponse{
		Language:     string(lang),
		RTL:          i18n.RTL(lang),
		Translations: i18n.Table(lang),
	})
}
