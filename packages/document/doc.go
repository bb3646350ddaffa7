// Package document provides assertion subjects over JSON and YAML
// documents.
//
// Supported checks:
//   - Path presence (document.ThatJSON(v, data).HasPath("user.id"))
//   - Path value equality with numeric coercion
//   - JSON Schema validation (MatchesSchema)
//   - YAML documents as map subjects (document.ThatYAML), including
//     the three-way diff message on equality failures
//
// Paths use gjson syntax; array bracket notation ("items[0].id") is
// converted automatically.
package document
