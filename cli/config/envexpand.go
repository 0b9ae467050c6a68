package config

import (
	"os"
	"regexp"
)

// ${NAME} or ${NAME:-fallback}; NAME follows shell identifier rules.
var expandPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::-([^}]*))?\}`)

// ExpandEnv substitutes environment references in a raw config body
// before it reaches the YAML parser. An unset or empty variable takes
// its ${NAME:-fallback} fallback when one is given, otherwise the
// reference disappears. Whether the substituted value makes sense is
// Config.Validate's problem, not this function's.
func ExpandEnv(input string) string {
	return expandPattern.ReplaceAllStringFunc(input, func(ref string) string {
		m := expandPattern.FindStringSubmatch(ref)
		if v, ok := os.LookupEnv(m[1]); ok && v != "" {
			return v
		}
		return m[2]
	})
}
