package lexer

// TokenType represents the type of a lexical unit. Grammars may introduce
// new types by naming extra rules, and keywords reclassify words into a type
// named after the keyword itself.
type TokenType string

// List of types of lexical units known by the default grammar
const (
	TokenInvalid         TokenType = ""
	TokenOpenExpression  TokenType = "OPEN"     // Open parenthesis: "("
	TokenCloseExpression TokenType = "CLOSE"    // Close parenthesis: ")"
	TokenNewLine         TokenType = "NEWLINE"  // Newline: "\n", never emitted
	TokenWhitespace      TokenType = "SKIP"     // Space or tab, never emitted
	TokenComment         TokenType = "COMMENT"  // ";" up to and including "\n"
	TokenWord            TokenType = "WORD"     // Identifiers
	TokenXref            TokenType = "XREF"     // Cross reference: "=foo" or ":foo"
	TokenNumber          TokenType = "NUMBER"   // Signed integers and decimals
	TokenOperator        TokenType = "OPERATOR" // Arithmetic sign: + - * / %
)

var tokenNames = map[TokenType]string{
	TokenInvalid:         "invalid",
	TokenOpenExpression:  "open_expression",
	TokenCloseExpression: "close_expression",
	TokenNewLine:         "newline",
	TokenWhitespace:      "separator",
	TokenComment:         "comment",
	TokenWord:            "word",
	TokenXref:            "xref",
	TokenNumber:          "number",
	TokenOperator:        "operator",
}

// Name returns a human-readable name for the type. Types without a
// well-known name (user rules, keywords) are named by themselves.
func (tt TokenType) Name() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return string(tt)
}

func (tt TokenType) String() string {
	return string(tt)
}

// Rule pairs a token type with the regular expression that recognizes it.
type Rule struct {
	Type    TokenType
	Pattern string
}

// Grammar is an ordered list of rules. At every position the first rule
// that matches wins, so order is part of the grammar.
type Grammar []Rule

var defaultGrammar = Grammar{
	{TokenOpenExpression, `\(`},
	{TokenCloseExpression, `\)`},
	{TokenNewLine, `\n`},
	{TokenWhitespace, `[ \t]`},
	{TokenComment, `;.*\n`},
	{TokenWord, `[a-zA-Z_][\w\._\-><\?]*`},
	{TokenXref, `[=:][a-zA-Z_][\w\._-]*`},
	{TokenNumber, `[-+]?[\d]*\.?[\d]+`},
	{TokenOperator, `[+*\/\-%]`},
}

// DefaultGrammar returns a copy of the grammar for frame documents.
func DefaultGrammar() Grammar {
	return defaultGrammar.With()
}

// With returns a copy of the grammar updated with the given rules. A rule
// whose type is already present replaces the pattern in place, new types
// are appended in the given order.
func (g Grammar) With(rules ...Rule) Grammar {
	out := make(Grammar, len(g), len(g)+len(rules))
	copy(out, g)

	for _, r := range rules {
		if i := out.index(r.Type); i >= 0 {
			out[i] = r
			continue
		}
		out = append(out, r)
	}
	return out
}

// Pattern returns the pattern for the given type.
func (g Grammar) Pattern(tt TokenType) (string, bool) {
	if i := g.index(tt); i >= 0 {
		return g[i].Pattern, true
	}
	return "", false
}

func (g Grammar) index(tt TokenType) int {
	for i := range g {
		if g[i].Type == tt {
			return i
		}
	}
	return -1
}

func isRuleName(tt TokenType) bool {
	if tt == "" {
		return false
	}
	for i, r := range tt {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
