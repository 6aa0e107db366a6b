package datetime

import (
	"strings"
	"sync"
)

// Node is one unit of a parsed format string: either literal text or a token.
type Node struct {
	Literal string
	Token   Token
}

// IsLiteral reports whether the node carries literal text rather than a token.
func (n Node) IsLiteral() bool {
	return n.Token == ""
}

// parseFormat is a pure function of its input, so results are cached for the
// process lifetime keyed by the exact format string.
var formatCache = struct {
	sync.RWMutex
	entries map[string][]Node
}{entries: make(map[string][]Node)}

// ParseFormat scans a format string into an ordered literal/token sequence.
// A single quote opens a literal run until the matching quote; a doubled quote
// inside a run stands for one literal quote. Outside a run, the longest known
// token spelling wins; anything else accumulates into an unquoted literal.
func ParseFormat(input string) []Node {
	formatCache.RLock()
	cached, ok := formatCache.entries[input]
	formatCache.RUnlock()
	if ok {
		return cached
	}

	nodes := scanFormat(input)

	formatCache.Lock()
	defer formatCache.Unlock()
	if cached, ok := formatCache.entries[input]; ok {
		return cached
	}
	formatCache.entries[input] = nodes
	return nodes
}

func scanFormat(input string) []Node {
	var nodes []Node
	i := 0

	for i < len(input) {
		if input[i] == '\'' {
			value, next := readQuotedLiteral(input, i+1)
			nodes = append(nodes, Node{Literal: value})
			i = next
			continue
		}

		if token, ok := matchToken(input, i); ok {
			nodes = append(nodes, Node{Token: token})
			i += len(token)
			continue
		}

		value, next := readUnquotedLiteral(input, i)
		nodes = append(nodes, Node{Literal: value})
		i = next
	}

	return nodes
}

func readQuotedLiteral(input string, start int) (string, int) {
	var b strings.Builder
	i := start

	for i < len(input) {
		if input[i] == '\'' {
			if i+1 < len(input) && input[i+1] == '\'' {
				b.WriteByte('\'')
				i += 2
				continue
			}
			i++
			break
		}
		b.WriteByte(input[i])
		i++
	}

	return b.String(), i
}

func readUnquotedLiteral(input string, start int) (string, int) {
	var b strings.Builder
	i := start

	for i < len(input) {
		if input[i] == '\'' {
			break
		}
		if _, ok := matchToken(input, i); ok {
			break
		}
		b.WriteByte(input[i])
		i++
	}

	return b.String(), i
}

func matchToken(input string, start int) (Token, bool) {
	for _, token := range knownTokens {
		if strings.HasPrefix(input[start:], string(token)) {
			return token, true
		}
	}
	return "", false
}
