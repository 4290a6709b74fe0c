package util

import (
	"os"
	"regexp"
	"strings"
)

var envRegExp = regexp.MustCompile(`\${env:([^}|]+)(\|[^}]*)?}`)

// ExpandEnvVars replaces ${env:NAME} and ${env:NAME|default} placeholders.
// A placeholder without a default expands to the empty string when NAME is unset.
func ExpandEnvVars(src string) string {
	return envRegExp.ReplaceAllStringFunc(src, func(s string) string {
		k, d, found := strings.Cut(s[len("${env:"):len(s)-1], "|")
		if v, ok := os.LookupEnv(k); ok {
			return v
		}
		if found {
			return d
		}
		return ""
	})
}

func HasEnvVar(s string) bool {
	return envRegExp.MatchString(s)
}
