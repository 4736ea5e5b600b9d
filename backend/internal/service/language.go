package service

import (
	"github.com/whisper-dev/whisper/shared/errors"
	"github.com/whisper-dev/whisper/shared/i18n"
	"github.com/whisper-dev/whisper/shared/logger"
)

type LanguageService interface {
	Get() i18n.Language
	Set(lang string) (i18n.Language, error)
}

// Language keeps the selected UI language in SessionStorage.
type Language struct {
	storage  SessionStorage
	fallback i18n.Language
}

func NewLanguage(storage SessionStorage, fallback string) *Language {
	lang, ok := i18n.ParseLanguage(fallback)
	if !ok {
		lang = i18n.English
	}
	return &Language{storage: storage, fallback: lang}
}

func (l *Language) Get() i18n.Language {
	saved, ok := l.storage.Get(LanguageStorageKey)
	if !ok {
		return l.fallback
	}
	lang, ok := i18n.ParseLanguage(saved)
	if !ok {
		return l.fallback
	}
	return lang
}

func (l *Language) Set(raw string) (i18n.Language, error) {
	lang, ok := i18n.ParseLanguage(raw)
	if !ok {
		return "", errors.BadRequest("Unsupported language")
	}
	if err := l.storage.Set(LanguageStorageKey, string(lang)); err != nil {
		logger.Log.Error("failed to persist language", "language", lang, "error", err)
		return "", err
	}
	return lang, nil
}
