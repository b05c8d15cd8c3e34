package hypothesis

import (
	"fmt"
	"strconv"
	"strings"
)

// token is one piece of a hypothesis template: either literal text or a
// {name} placeholder.
type token struct {
	text        string
	placeholder bool
}

// tokenize splits a template into literal and placeholder tokens in a single
// pass, so substitution is order-independent and unresolved placeholders are
// detected deterministically. A brace with no well-formed placeholder after
// it is treated as literal text.
func tokenize(template string) []token {
	var tokens []token
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			tokens = append(tokens, token{text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(template); {
		c := template[i]
		if c != '{' {
			lit.WriteByte(c)
			i++
			continue
		}
		end := strings.IndexByte(template[i:], '}')
		if end < 0 {
			lit.WriteString(template[i:])
			break
		}
		name := template[i+1 : i+end]
		if !validPlaceholderName(name) {
			lit.WriteByte(c)
			i++
			continue
		}
		flush()
		tokens = append(tokens, token{text: name, placeholder: true})
		i += end + 1
	}
	flush()
	return tokens
}

func validPlaceholderName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_':
		default:
			return false
		}
	}
	return true
}

// formatValue renders a parameter value as template text.
func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
