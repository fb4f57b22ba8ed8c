// Package translate converts ucfg source into standard configuration
// formats.
//
// [Translate] runs the parser and evaluator from package lang and then
// requires the resolved top-level value to be a dictionary. The resulting
// [lang.Dict] can be written with [Encode] as TOML, YAML or JSON, or
// committed to disk with [WriteFile], which never leaves a partially
// written file behind.
package translate
