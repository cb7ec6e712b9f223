// Package projectconfig loads and validates the declarative YAML document
// that describes a project to scaffold: name, runtime version, grouped
// dependencies, directory structure, and optional template/remote URLs.
// Documents are checked against an embedded JSON Schema before decoding,
// so malformed shapes fail with descriptive errors and no side effects.
package projectconfig
