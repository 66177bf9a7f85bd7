package parser

import (
	"github.com/emirpasic/gods/v2/stacks/arraystack"
	"github.com/go-logr/logr"

	"github.com/xiam/lene/ast"
	"github.com/xiam/lene/lexer"
)

const DefaultMaxDepth = 512

var (
	contentTypes = []lexer.TokenType{
		lexer.TokenWord,
		lexer.TokenXref,
		lexer.TokenNumber,
		lexer.TokenOperator,
	}

	ignorableTypes = []lexer.TokenType{
		lexer.TokenComment,
	}
)

type parserState func(r *run) parserState

// Option configures a Parser
type Option func(*Parser)

// WithHook sets the post-processing hook for a token type, replacing the
// previous one.
func WithHook(tt lexer.TokenType, hook Hook) Option {
	return func(p *Parser) {
		if hook == nil {
			delete(p.hooks, tt)
			return
		}
		p.hooks[tt] = hook
	}
}

// WithContent marks more token types as tree leaves, like keywords or extra
// grammar rules.
func WithContent(types ...lexer.TokenType) Option {
	return func(p *Parser) {
		for _, tt := range types {
			p.content[tt] = struct{}{}
		}
	}
}

// WithIgnorable marks more token types to be dropped from the tree.
func WithIgnorable(types ...lexer.TokenType) Option {
	return func(p *Parser) {
		for _, tt := range types {
			p.ignorable[tt] = struct{}{}
		}
	}
}

// WithMaxDepth limits how deep groups can nest. Zero or less removes the
// limit.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		p.maxDepth = n
	}
}

// WithLogger sets the logger that reports each parsed document.
func WithLogger(log logr.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

// Parser builds trees out of token sources. Its configuration is fixed at
// construction; every call to Parse keeps its own state, so a Parser can be
// reused and shared.
type Parser struct {
	hooks     map[lexer.TokenType]Hook
	content   map[lexer.TokenType]struct{}
	ignorable map[lexer.TokenType]struct{}
	maxDepth  int
	log       logr.Logger
}

// New creates a Parser for the default token classes changed by opts.
func New(opts ...Option) *Parser {
	p := &Parser{
		hooks: map[lexer.TokenType]Hook{
			lexer.TokenNumber: NumberHook,
		},
		content:   typeSet(contentTypes),
		ignorable: typeSet(ignorableTypes),
		maxDepth:  DefaultMaxDepth,
		log:       logr.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Handle runs the hook registered for the token type, if any.
func (p *Parser) Handle(tok lexer.Token) (lexer.Token, error) {
	if hook, ok := p.hooks[tok.Type()]; ok {
		return hook(tok)
	}
	return tok, nil
}

func (p *Parser) isContent(tt lexer.TokenType) bool {
	_, ok := p.content[tt]
	return ok
}

func (p *Parser) isIgnorable(tt lexer.TokenType) bool {
	_, ok := p.ignorable[tt]
	return ok
}

// Parse consumes src and returns the root of the tree, whose leaves are
// tokens. The whole source must form balanced groups; there's no partial
// result.
func (p *Parser) Parse(src lexer.Source) (ast.List, error) {
	r := &run{
		p:     p,
		src:   src,
		stack: arraystack.New[*frame](),
		curr:  &frame{children: ast.List{}},
	}

	for state := parserDefaultState; state != nil; {
		state = state(r)
	}

	if r.err != nil {
		return nil, r.err
	}

	p.log.V(1).Info("parsed document", "tokens", r.tokens, "groups", len(r.curr.children), "maxDepth", r.deepest)
	return r.curr.children, nil
}

type frame struct {
	open     lexer.Token
	children ast.List
}

type run struct {
	p   *Parser
	src lexer.Source

	stack *arraystack.Stack[*frame]
	curr  *frame

	tokens  int
	deepest int
	err     error
}

func (r *run) depth() int {
	return r.stack.Size()
}

func parserDefaultState(r *run) parserState {
	if !r.src.Next() {
		return parserEOFState
	}

	tok, err := r.p.Handle(r.src.Token())
	if err != nil {
		return parserErrorState(err)
	}
	r.tokens++

	switch {
	case r.p.isContent(tok.Type()):
		r.curr.children = append(r.curr.children, tok)
		return parserDefaultState

	case r.p.isIgnorable(tok.Type()):
		return parserDefaultState

	case tok.Is(lexer.TokenOpenExpression):
		return parserOpenExpressionState(tok)

	case tok.Is(lexer.TokenCloseExpression):
		return parserCloseExpressionState(tok)
	}

	return parserErrorState(&SyntacticError{Err: ErrUnexpectedToken, Token: tok, Depth: r.depth()})
}

func parserOpenExpressionState(tok lexer.Token) parserState {
	return func(r *run) parserState {
		if r.p.maxDepth > 0 && r.depth() >= r.p.maxDepth {
			return parserErrorState(&SyntacticError{Err: ErrMaxDepth, Token: tok, Depth: r.depth()})
		}

		r.stack.Push(r.curr)
		r.curr = &frame{open: tok, children: ast.List{}}

		if d := r.depth(); d > r.deepest {
			r.deepest = d
		}
		return parserDefaultState
	}
}

func parserCloseExpressionState(tok lexer.Token) parserState {
	return func(r *run) parserState {
		parent, ok := r.stack.Pop()
		if !ok {
			return parserErrorState(&SyntacticError{Err: ErrUnbalancedParentheses, Token: tok, Depth: 0})
		}

		parent.children = append(parent.children, r.curr.children)
		r.curr = parent
		return parserDefaultState
	}
}

func parserEOFState(r *run) parserState {
	if err := r.src.Err(); err != nil {
		return parserErrorState(err)
	}
	if !r.stack.Empty() {
		return parserErrorState(&SyntacticError{Err: ErrUnbalancedParentheses, Token: r.curr.open, Depth: r.depth()})
	}
	return nil
}

func parserErrorState(err error) parserState {
	return func(r *run) parserState {
		r.err = err
		return nil
	}
}

// IsContent returns true if the token is a leaf under the default
// configuration.
func IsContent(tok lexer.Token) bool {
	return inTypes(tok.Type(), contentTypes)
}

// IsIgnorable returns true if the token is dropped under the default
// configuration.
func IsIgnorable(tok lexer.Token) bool {
	return inTypes(tok.Type(), ignorableTypes)
}

// Detokenize returns a copy of tree where every token is replaced by its
// value.
func Detokenize(tree ast.List) ast.List {
	return ast.Values(tree)
}

// Parse tokenizes and parses in with the default configuration, returning a
// tree of tokens.
func Parse(in []byte) (ast.List, error) {
	return New().Parse(lexer.NewTokenizer().Tokenize(string(in)))
}

func typeSet(types []lexer.TokenType) map[lexer.TokenType]struct{} {
	set := make(map[lexer.TokenType]struct{}, len(types))
	for _, tt := range types {
		set[tt] = struct{}{}
	}
	return set
}

func inTypes(tt lexer.TokenType, types []lexer.TokenType) bool {
	for i := range types {
		if types[i] == tt {
			return true
		}
	}
	return false
}
