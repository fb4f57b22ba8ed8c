// Package lang parses and evaluates ucfg, a small configuration language
// with octal integers, bracketed strings, nested dictionaries and named
// constants.
//
// # Grammar
//
// Informal EBNF:
//
//	Document  → ConstDecl* Value EOF
//	ConstDecl → 'var' Name Value
//	Value     → Number | String | Dict | ConstRef
//	Dict      → '@{' Pair* '}'
//	Pair      → Name '=' Value ';'
//	Number    → '0' ('o' | 'O') [0-7]+
//	String    → '[[' <any text, up to the first ']]'> ']]'
//	ConstRef  → '$' Name '$'
//	Name      → [a-z] [a-z0-9_]*
//
// Whitespace between tokens is insignificant. There are no comments.
//
// # Example
//
//	var port 0o17620
//	var host [[localhost]]
//
//	@{
//	  server = @{
//	    host = $host$;
//	    port = $port$;
//	  };
//	  banner = [[multi
//	line]];
//	}
//
// # Evaluation
//
// Parsing and evaluation are separate phases. [Parse] produces a
// [Document] of position-annotated nodes; [Evaluate] walks it once, top to
// bottom, binding each constant in a table owned by that call and
// substituting references with a copy of the bound [Value]. Constants must
// be declared before use and may be declared only once. Keys must be
// unique within each dictionary literal; nested dictionaries are separate
// scopes.
//
// [ParseString] and [ParseReader] run both phases.
//
// # Errors
//
// Every failure is an [*Error] of kind [SyntaxKind] or [SemanticKind].
// Syntax errors carry the line, column and a rendered snippet of the
// offending input.
package lang
