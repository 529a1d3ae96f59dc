package config

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/preston-bernstein/site-server/internal/option"
)

const sigil = "$"

// placeholderPattern matches "$$" or "$" followed by an index.
var placeholderPattern = regexp.MustCompile(`\$(\$|[0-9]+)`)

// ResolveTemplate substitutes "$N" with replacements[N] and "$$" with "$".
// With no replacements the template is returned untouched. An index with no
// matching replacement makes the whole result absent.
func ResolveTemplate(template string, replacements []string) option.Option[string] {
	if len(replacements) == 0 {
		return option.Some(template)
	}

	var buf strings.Builder
	buf.Grow(len(template))
	start := 0
	for _, m := range placeholderPattern.FindAllStringSubmatchIndex(template, -1) {
		buf.WriteString(template[start:m[0]])

		token := template[m[2]:m[3]]
		if token == sigil {
			buf.WriteString(sigil)
		} else {
			idx, err := strconv.Atoi(token)
			if err != nil || idx >= len(replacements) {
				return option.None[string]()
			}
			buf.WriteString(replacements[idx])
		}
		start = m[1]
	}
	buf.WriteString(template[start:])
	return option.Some(buf.String())
}
