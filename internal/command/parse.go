package command

import (
	"unicode"
)

const (
	kwFly     = "fly"
	kwPlacing = "placing"
	kwTrue    = "true"
	kwFalse   = "false"
)

// production is one alternative of the command grammar: a leading keyword,
// the set of terminals accepted as its argument, and the constructor for the
// resulting Command.
type production struct {
	keyword string
	args    []string
	build   func(arg string) Command
}

// grammar is the full command grammar:
//
//	Cmd   := "fly" Bool | "placing" Block
//	Bool  := "true" | "false"
//	Block := "stone" | "dirt" | "grass" | "sand" | "brick" | "glass"
var grammar = []production{
	{
		keyword: kwFly,
		args:    []string{kwTrue, kwFalse},
		build: func(arg string) Command {
			return Fly{On: arg == kwTrue}
		},
	},
	{
		keyword: kwPlacing,
		args:    blockKeywords,
		build: func(arg string) Command {
			kind, _ := ParseBlockKind(arg)
			return BlockPlacing{Block: kind}
		},
	},
}

// token is a single whitespace-delimited lexeme along with the byte offset it
// starts at in the input.
type token struct {
	lexeme string
	offset int
}

// lex splits s into its tokens. Any run of unicode whitespace separates
// tokens; there is no quoting or escaping.
func lex(s string) []token {
	var tokens []token
	start := -1

	for i, ch := range s {
		if unicode.IsSpace(ch) {
			if start != -1 {
				tokens = append(tokens, token{lexeme: s[start:i], offset: start})
				start = -1
			}
		} else if start == -1 {
			start = i
		}
	}
	if start != -1 {
		tokens = append(tokens, token{lexeme: s[start:], offset: start})
	}

	return tokens
}

// Keywords returns the tokens that may start a command.
func Keywords() []string {
	kws := make([]string, len(grammar))
	for i := range grammar {
		kws[i] = grammar[i].keyword
	}
	return kws
}

// Parse parses a command from the given text. The entire input must be
// exactly one command; leading and trailing whitespace is ignored and keywords
// are matched case-sensitively.
//
// If the input is not a valid command, the returned error is a *SyntaxError
// and the returned Command is nil. Parse never panics and is safe to call
// concurrently.
func Parse(input string) (Command, error) {
	p := parser{input: input, tokens: lex(input)}

	// start: dispatch on the command keyword
	kw, ok := p.peek(0)
	var prod *production
	if ok {
		for i := range grammar {
			if grammar[i].keyword == kw {
				prod = &grammar[i]
				break
			}
		}
	}
	if prod == nil {
		return nil, p.errorAt(0, Keywords())
	}

	// after keyword: exactly one argument from the production's set
	arg, ok := p.peek(1)
	if !ok || !contains(prod.args, arg) {
		return nil, p.errorAt(1, prod.args)
	}

	// complete: nothing may follow
	if len(p.tokens) > 2 {
		return nil, p.errorAt(2, []string{EndOfInput})
	}

	return prod.build(arg), nil
}

type parser struct {
	input  string
	tokens []token
}

// peek returns the lexeme at token index idx, and whether there was one.
func (p parser) peek(idx int) (string, bool) {
	if idx >= len(p.tokens) {
		return "", false
	}
	return p.tokens[idx].lexeme, true
}

// errorAt builds a SyntaxError anchored at token index idx.
func (p parser) errorAt(idx int, expected []string) *SyntaxError {
	se := &SyntaxError{
		Input:    p.input,
		Index:    idx,
		Expected: append([]string{}, expected...),
	}

	if idx < len(p.tokens) {
		se.Offset = p.tokens[idx].offset
		se.Found = p.tokens[idx].lexeme
	} else {
		se.Offset = len(p.input)
		se.Found = EndOfInput
	}

	return se
}

func contains(set []string, s string) bool {
	for i := range set {
		if set[i] == s {
			return true
		}
	}
	return false
}

