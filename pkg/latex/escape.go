package latex

import "strings"

var (
	escaper = strings.NewReplacer(
		`\`, `\textbackslash{}`,
		`{`, `\{`,
		`}`, `\}`,
		`$`, `\$`,
		`&`, `\&`,
		`#`, `\#`,
		`%`, `\%`,
		`_`, `\_`,
		`^`, `\textasciicircum{}`,
		`~`, `\textasciitilde{}`,
		"\r", "",
	)
	unescaper = strings.NewReplacer(
		`\textbackslash{}`, `\`,
		`\textasciicircum{}`, `^`,
		`\textasciitilde{}`, `~`,
		`\{`, `{`,
		`\}`, `}`,
		`\$`, `$`,
		`\&`, `&`,
		`\#`, `#`,
		`\%`, `%`,
		`\_`, `_`,
	)
)

// Escape makes s safe to place in a document as literal text. Every
// character with a meaning to the typesetter is replaced, so no escaped line
// can look like a structural command.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Unescape reverses Escape.
func Unescape(s string) string {
	return unescaper.Replace(s)
}
