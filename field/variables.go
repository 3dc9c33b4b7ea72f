package field

import "regexp"

var variablePattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Replacer substitutes variable references in attribute values.
type Replacer interface {
	Replace(value string) string
}

// Variables replaces ${NAME} references with the value of NAME. Unknown
// references are left untouched.
type Variables map[string]string

// Replace implements Replacer.
func (v Variables) Replace(value string) string {
	if len(v) == 0 {
		return value
	}

	return variablePattern.ReplaceAllStringFunc(value, func(match string) string {
		name := match[2 : len(match)-1]

		if replacement, ok := v[name]; ok {
			return replacement
		}

		return match
	})
}
