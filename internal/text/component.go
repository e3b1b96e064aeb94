package text

// Component is a translatable label with a colour.
type Component struct {
	Key        string
	Formatting Formatting
}

// Translatable returns a component for key in colour f.
func Translatable(key string, f Formatting) Component {
	return Component{Key: key, Formatting: f}
}

// Plain returns the translated text without styling.
func (c Component) Plain(tr *Translator) string {
	return tr.Translate(c.Key)
}

// Legacy returns the translated text prefixed with its "§" colour code and
// followed by a reset, as chat and option buttons render it.
func (c Component) Legacy(tr *Translator) string {
	return c.Formatting.Code() + tr.Translate(c.Key) + "§r"
}
