package document

import (
	"github.com/abdul-hamid-achik/verity/packages/verify"
	"gopkg.in/yaml.v3"
)

// ThatYAML parses a YAML document into a map and wraps it as a map
// subject, so YAML documents get the full map assertion surface,
// including the three-way diff on equality failures. A document that
// does not parse as a mapping fails immediately and the returned
// subject wraps an empty map.
func ThatYAML(v *verify.Verifier, data []byte) *verify.MapSubject[string, any] {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		v.Fail("document is not valid YAML: %v", err)
		return verify.ThatMap[string, any](v, nil)
	}
	return verify.ThatMap(v, m)
}
