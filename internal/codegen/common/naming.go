package common

import (
	"strings"
	"unicode"
)

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}

// ToPascalCase joins the kebab/snake words of s with their first letter
// upper-cased. The rest of each word is kept, so PascalCase input is returned
// unchanged.
func ToPascalCase(s string) string {
	if s == "" {
		return ""
	}

	words := strings.FieldsFunc(s, isSeparator)

	var result strings.Builder
	for _, word := range words {
		r := []rune(word)
		r[0] = unicode.ToUpper(r[0])
		result.WriteString(string(r))
	}

	return result.String()
}

// ToSnakeCase rewrites kebab-case, space separated and camelCase identifiers
// as lower snake_case. Already snake_cased input is returned unchanged.
func ToSnakeCase(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if isSeparator(r) {
			b.WriteByte('_')
			continue
		}
		isUpper := r >= 'A' && r <= 'Z'

		if i > 0 && isUpper {
			// "someWord" -> "some_word"
			prevIsLower := runes[i-1] >= 'a' && runes[i-1] <= 'z'

			// "XMLParser" -> "xml_parser", not "x_m_l_parser"
			nextIsLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			prevIsSep := isSeparator(runes[i-1])

			if !prevIsSep && (prevIsLower || nextIsLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}
