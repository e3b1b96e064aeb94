package text

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var translations = map[language.Tag]map[string]string{
	language.English: {
		"spruceui.options.on":              "ON",
		"spruceui.options.off":             "OFF",
		"spruceui.options.generic.fastest": "Fastest",
		"spruceui.options.generic.fast":    "Fast",
		"spruceui.options.generic.fancy":   "Fancy",
		"lambdynlights.option.mode":        "Dynamic Lights",
		"lambdynlights.tooltip.mode.1":     "Fastest: updates every 500ms",
		"lambdynlights.tooltip.mode.2":     "Fast: updates every 250ms",
		"lambdynlights.tooltip.mode.3":     "Fancy: updates every frame",
		"lambdynlights.option.water_check": "Water Sensitive Check",
		"lambdynlights.menu.light_sources": "Item Light Sources",
		"lambdynlights.menu.submerged":     "Submerged",
	},
	language.French: {
		"spruceui.options.on":              "OUI",
		"spruceui.options.off":             "NON",
		"spruceui.options.generic.fastest": "Très rapide",
		"spruceui.options.generic.fast":    "Rapide",
		"spruceui.options.generic.fancy":   "Détaillé",
		"lambdynlights.option.mode":        "Lumières dynamiques",
		"lambdynlights.tooltip.mode.1":     "Très rapide : mise à jour toutes les 500ms",
		"lambdynlights.tooltip.mode.2":     "Rapide : mise à jour toutes les 250ms",
		"lambdynlights.tooltip.mode.3":     "Détaillé : mise à jour à chaque image",
		"lambdynlights.option.water_check": "Sensibilité à l'eau",
		"lambdynlights.menu.light_sources": "Sources de lumière des objets",
		"lambdynlights.menu.submerged":     "Immergé",
	},
}

var supported = []language.Tag{language.English, language.French}

var (
	cat     = buildCatalog()
	matcher = language.NewMatcher(supported)
)

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, msgs := range translations {
		for key, msg := range msgs {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// Translator renders translation keys for one language. Keys without a
// translation render as the key itself.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// NewTranslator picks the closest supported language to tag, English otherwise.
func NewTranslator(tag language.Tag) *Translator {
	_, idx, _ := matcher.Match(tag)
	t := supported[idx]
	return &Translator{
		tag:     t,
		printer: message.NewPrinter(t, message.Catalog(cat)),
	}
}

// NewTranslatorFor parses a locale such as "fr_fr" or "en-US".
func NewTranslatorFor(locale string) *Translator {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return NewTranslator(tag)
}

// Language returns the language the translator renders.
func (t *Translator) Language() language.Tag {
	return t.tag
}

func (t *Translator) Translate(key string) string {
	return t.printer.Sprintf(message.Key(key, strings.ReplaceAll(key, "%", "%%")))
}
