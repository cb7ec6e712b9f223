// Package scaffold writes the auxiliary files of a new project: ignore
// rules, pre-commit hook configuration, and license text fetched from
// remote templates, plus the readme, container build file, and CI
// workflow produced from embedded templates. Remote retrieval failures
// skip the affected file and never abort the scaffold.
package scaffold
