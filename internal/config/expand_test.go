package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplateVars(t *testing.T) {
	assert.Equal(t, []string{"INFURA_PROJECT_ID"}, template("https://x/v3/${INFURA_PROJECT_ID}").vars())
	assert.Equal(t, []string{"A", "B"}, template("$A-${B}-${A}").vars())
	assert.Nil(t, template("https://localhost:8545").vars())
	assert.Nil(t, template("").vars())
}

func TestTemplateExpand(t *testing.T) {
	lookup := envMap(map[string]string{
		"HOST":  "node.example.org",
		"PAD":   "  spaced\n",
		"EMPTY": "",
	})

	tests := []struct {
		name        string
		in          string
		want        string
		wantMissing []string
	}{
		{name: "literal", in: "http://localhost:8545", want: "http://localhost:8545"},
		{name: "braced", in: "https://${HOST}/rpc", want: "https://node.example.org/rpc"},
		{name: "bare", in: "https://$HOST", want: "https://node.example.org"},
		{name: "trimmed value", in: "${PAD}", want: "spaced"},
		{name: "unset", in: "https://${HOST}/v3/${KEY}", want: "https://node.example.org/v3/", wantMissing: []string{"KEY"}},
		{name: "empty counts as unset", in: "${EMPTY}", want: "", wantMissing: []string{"EMPTY"}},
		{name: "reported once", in: "${KEY}${KEY}", want: "", wantMissing: []string{"KEY"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, missing := template(tt.in).expand(lookup)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantMissing, missing)
		})
	}
}
