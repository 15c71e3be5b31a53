package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Rule names shared with the scanner.
const (
	RuleFloat       = "Float"
	RuleInt         = "Int"
	RuleString      = "String"
	RuleName        = "Name"
	RuleComment     = "Comment"
	RuleNewline     = "Newline"
	RuleWhitespace  = "Whitespace"
	RuleOperator    = "Operator"
	RulePunctuation = "Punctuation"
	RuleIllegal     = "Illegal"
)

// Lexer matches rules in order, so the first rule that matches wins.
var Lexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Numbers (float before integer)
		{RuleFloat, `\d+\.\d+(?:[eE][+-]?\d+)?`, nil},
		{RuleInt, `\d+`, nil},

		// Strings never span lines
		{RuleString, `"(?:[^"\\\n]|\\.)*"|'(?:[^'\\\n]|\\.)*'`, nil},

		// Keywords and identifiers
		{RuleName, `[a-zA-Z_][a-zA-Z0-9_]*`, nil},

		// Comments
		{RuleComment, `#[^\n]*`, nil},

		// A run of line breaks is a single token
		{RuleNewline, `(?:\r?\n)+`, nil},
		{RuleWhitespace, `[ \t]+`, nil},

		// Operators (two-character forms first)
		{RuleOperator, `\+=|-=|==|!=|[-+*/=<>]`, nil},

		// Punctuation
		{RulePunctuation, `[(),:]`, nil},

		// Anything else is reported and skipped one character at a time
		{RuleIllegal, `.`, nil},
	},
})
