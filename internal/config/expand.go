package config

import (
	"os"
	"strings"
)

// LookupFunc reads a variable from the environment.
type LookupFunc func(key string) (string, bool)

// template is a value with $VAR / ${VAR} references.
type template string

// vars returns the variable names referenced by t, in order of appearance.
func (t template) vars() []string {
	var names []string
	seen := make(map[string]struct{})
	os.Expand(string(t), func(name string) string {
		if _, ok := seen[name]; !ok && name != "" {
			seen[name] = struct{}{}
			names = append(names, name)
		}
		return ""
	})
	return names
}

// expand substitutes variables from lookup. Unset or empty variables expand
// to the empty string and are returned in missing.
func (t template) expand(lookup LookupFunc) (value string, missing []string) {
	seen := make(map[string]struct{})
	value = os.Expand(string(t), func(name string) string {
		v, ok := lookup(name)
		v = strings.TrimSpace(v)
		if !ok || v == "" {
			if _, dup := seen[name]; !dup && name != "" {
				seen[name] = struct{}{}
				missing = append(missing, name)
			}
			return ""
		}
		return v
	})
	return value, missing
}
