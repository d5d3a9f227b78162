package ui

import (
	"os"
	"strings"
)

// ParseCSSFile reads and parses a stylesheet from disk.
func ParseCSSFile(path string) (*Stylesheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCSS(string(data))
}

// ParseCSS parses a primitive stylesheet: selectors ".class" or "#id" followed by
// a block of "key: value;" declarations. No combinators, no @rules. Blocks with
// unsupported selectors are skipped. Later rules override earlier ones for the
// same selector.
func ParseCSS(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	s := stripComments(content)
	for {
		open := strings.Index(s, "{")
		if open == -1 {
			break
		}
		close := matchingBrace(s, open)
		if close == -1 {
			break
		}
		selector := strings.TrimSpace(s[:open])
		body := s[open+1 : close]
		s = s[close+1:]
		if len(selector) < 2 || (selector[0] != '.' && selector[0] != '#') {
			continue
		}
		sheet.Rules = append(sheet.Rules, Rule{Selector: selector, Props: parseDeclarations(body)})
	}
	return sheet, nil
}

func stripComments(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); {
		if i+1 < len(s) && s[i] == '/' && s[i+1] == '*' {
			end := strings.Index(s[i+2:], "*/")
			if end == -1 {
				break
			}
			i += 2 + end + 2
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

func matchingBrace(s string, open int) int {
	depth := 1
	for i := open + 1; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func parseDeclarations(body string) map[string]string {
	props := make(map[string]string)
	for _, part := range strings.Split(body, ";") {
		part = strings.TrimSpace(part)
		colon := strings.Index(part, ":")
		if colon <= 0 {
			continue
		}
		k := strings.TrimSpace(part[:colon])
		v := strings.TrimSpace(part[colon+1:])
		if k != "" {
			props[k] = v
		}
	}
	return props
}
