package utils

import (
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

// languages with a message file under `i18n.dir`
var messageLanguages = []string{"en", "es"}

var bundle *i18n.Bundle

// InitI18NBundle loads the notification message catalogs. English is the
// fallback when a message id has no translation for the requested language.
func InitI18NBundle() {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	for _, lang := range messageLanguages {
		bundle.MustLoadMessageFile(path.Join(viper.GetString("i18n.dir"), lang+".yaml"))
	}
}

// NewLocalizer resolves messages for one language against the loaded bundle.
func NewLocalizer(lang string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, lang)
}
