package document

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/abdul-hamid-achik/verity/packages/verify"
	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"
)

var bracketRe = regexp.MustCompile(`\[(\d+)\]`)

// convertBracketNotation converts array bracket notation to gjson dot
// notation, e.g. "items[0].tags[1]" -> "items.0.tags.1".
func convertBracketNotation(path string) string {
	result := bracketRe.ReplaceAllString(path, ".$1")
	return strings.TrimPrefix(result, ".")
}

// JSONSubject wraps a parsed JSON document.
type JSONSubject struct {
	strategy verify.FailureStrategy
	raw      []byte
	body     gjson.Result
	valid    bool
}

// ThatJSON wraps a JSON document. Invalid JSON fails immediately; the
// returned subject then ignores further checks rather than compounding
// the parse failure.
func ThatJSON(v *verify.Verifier, data []byte) *JSONSubject {
	s := &JSONSubject{
		strategy: v.Strategy(),
		raw:      data,
		valid:    gjson.ValidBytes(data),
	}
	if !s.valid {
		v.Fail("document is not valid JSON: <%s>", summarize(data))
		return s
	}
	s.body = gjson.ParseBytes(data)
	return s
}

// HasPath fails if the document has no value at path.
func (s *JSONSubject) HasPath(path string) {
	if !s.valid {
		return
	}
	if !s.body.Get(convertBracketNotation(path)).Exists() {
		s.fail("has path", path, "")
	}
}

// DoesNotHavePath fails if the document has a value at path.
func (s *JSONSubject) DoesNotHavePath(path string) {
	if !s.valid {
		return
	}
	if s.body.Get(convertBracketNotation(path)).Exists() {
		s.fail("does not have path", path, "")
	}
}

// PathEquals fails if the value at path does not equal expected.
// JSON numbers decode as float64, so numerically equal values of
// different types compare equal.
func (s *JSONSubject) PathEquals(path string, expected any) {
	if !s.valid {
		return
	}
	result := s.body.Get(convertBracketNotation(path))
	if !result.Exists() {
		s.fail("has path", path, "")
		return
	}
	v := verify.With(s.strategy)
	v.That(result.Value()).IsEqualTo(expected)
}

// AsMap fails unless the document's top level is a JSON object; on
// success it returns a map subject over the decoded object.
func (s *JSONSubject) AsMap() *verify.MapSubject[string, any] {
	v := verify.With(s.strategy)
	if s.valid {
		if obj, ok := s.body.Value().(map[string]any); ok {
			return verify.ThatMap(v, obj)
		}
		v.Fail("Not true that <%s> is a JSON object", summarize(s.raw))
	}
	return verify.ThatMap[string, any](v, nil)
}

// MatchesSchema validates the document against a JSON Schema and fails
// with the collected validation errors on mismatch.
func (s *JSONSubject) MatchesSchema(schema []byte) {
	if !s.valid {
		return
	}
	schemaLoader := gojsonschema.NewBytesLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(s.raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		s.fail("matches schema", "", fmt.Sprintf("schema validation error: %v", err))
		return
	}
	if result.Valid() {
		return
	}

	var errs []string
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	s.fail("matches schema", "", fmt.Sprintf("schema validation failed: %s", strings.Join(errs, "; ")))
}

func (s *JSONSubject) fail(check string, expected any, message string) {
	if message == "" {
		message = fmt.Sprintf("Not true that <%s> %s <%v>", summarize(s.raw), check, expected)
	}
	s.strategy.Fail(&verify.Failure{
		Check:    check,
		Actual:   string(s.raw),
		Expected: expected,
		Message:  message,
	})
}

func summarize(data []byte) string {
	const maxLen = 100
	str := string(data)
	if len(str) > maxLen {
		return str[:maxLen] + "..."
	}
	return str
}
