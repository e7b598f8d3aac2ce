package parser

import (
	"math/bits"
	"regexp"
	"strings"

	"relex/grammar"
	"relex/lexer"
)

// neverRe matches nothing; used for token groups that ended up empty.
const neverRe = "[^\\s\\S]"

// Lexers compiles one lexer per token group of g.
// Within a group, token regexps are tried in definition order: the
// first-defined token type wins where several could match.
func Lexers(g *grammar.Grammar) ([]*lexer.Lexer, error) {
	maxGroup := 0
	for _, t := range g.Tokens {
		mg := bits.Len(uint(t.Groups)) - 1
		if mg > maxGroup {
			maxGroup = mg
		}
	}

	res := make([]*lexer.Lexer, maxGroup+1)
	for group := 0; group <= maxGroup; group++ {
		masks := make([]string, 0, len(g.Tokens))
		types := make([]lexer.TokenType, 0, len(g.Tokens))
		for i, t := range g.Tokens {
			if t.Groups&(1<<group) == 0 {
				continue
			}

			re := t.Re
			if t.Flags&grammar.CaselessToken != 0 {
				re = "(?i:" + re + ")"
			}
			masks = append(masks, "("+re+")")
			tt := lexer.TokenType{Type: i, TypeName: t.Name}
			if t.Flags&grammar.ErrorToken != 0 {
				tt.Type = lexer.ErrorTokenType
			}
			types = append(types, tt)
		}

		pattern := neverRe
		if len(masks) > 0 {
			pattern = strings.Join(masks, "|")
		}
		re, e := regexp.Compile("(?s:" + pattern + ")")
		if e != nil {
			return nil, regexpError(groupName(g, group), e)
		}

		res[group] = lexer.New(re, types)
	}

	return res, nil
}

func groupName(g *grammar.Grammar, group int) string {
	for _, t := range g.Tokens {
		if t.Groups&(1<<group) != 0 {
			return t.Name
		}
	}
	return "-empty-group-"
}
