package csonh

import (
	"strconv"
	"strings"
)

// decodeTripleQuoted implements the string post-processor of spec.md §4.3:
// auto-dedent based on the closing delimiter's indentation, followed by
// lenient escape decoding. It never fails — an unrecognized escape is
// emitted verbatim as spec.md §4.3 and the original reference
// implementation both specify, unlike the strict single-line decoder in
// lexer.go's readEscape.
func decodeTripleQuoted(raw string) string {
	return decodeEscapesLenient(dedentTripleQuoted(raw))
}

// dedentTripleQuoted trims a leading blank line and strips the closing
// delimiter's indentation from every remaining line. The leading-blank trim
// is only applied when a closing indent was also detected — that's what
// the reference implementation does, and spec.md's silence on the
// interaction leaves it as the authority.
func dedentTripleQuoted(content string) string {
	hasFirst := strings.HasPrefix(content, "\n") ||
		(content != "" && strings.TrimSpace(firstLineSegment(content)) == "")
	hasLast := strings.HasSuffix(content, "\n") ||
		(content != "" && strings.TrimSpace(lastLineSegment(content)) == "")

	if !hasLast {
		return content
	}

	if hasFirst && strings.Contains(content, "\n") {
		_, rest, _ := strings.Cut(content, "\n")
		content = rest
	}

	if !strings.Contains(content, "\n") {
		return content
	}

	lastNL := strings.LastIndexByte(content, '\n')
	closing := content[lastNL+1:]
	if strings.TrimSpace(closing) != "" {
		return content
	}

	closingIndent := len(closing)
	content = content[:lastNL]
	if closingIndent == 0 {
		return content
	}

	lines := strings.Split(content, "\n")
	spacePrefix := strings.Repeat(" ", closingIndent)
	tabPrefix := strings.Repeat("\t", closingIndent)
	for i, line := range lines {
		switch {
		case line == "":
			// preserved as-is
		case strings.HasPrefix(line, spacePrefix):
			lines[i] = line[closingIndent:]
		case strings.HasPrefix(line, tabPrefix):
			lines[i] = line[closingIndent:]
		}
	}
	return strings.Join(lines, "\n")
}

func firstLineSegment(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}

func lastLineSegment(s string) string {
	if idx := strings.LastIndexByte(s, '\n'); idx >= 0 {
		return s[idx+1:]
	}
	return s
}

// decodeEscapesLenient applies the same escape table as single-line
// strings, but an unrecognized escape (or a malformed \u run) is emitted
// verbatim instead of failing.
func decodeEscapesLenient(content string) string {
	if !strings.ContainsRune(content, '\\') {
		return content
	}

	runes := []rune(content)
	var sb strings.Builder
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if c != '\\' {
			sb.WriteRune(c)
			continue
		}
		i++
		if i >= len(runes) {
			break
		}
		esc := runes[i]
		switch esc {
		case 'n':
			sb.WriteRune('\n')
		case 'r':
			sb.WriteRune('\r')
		case 't':
			sb.WriteRune('\t')
		case '\\':
			sb.WriteRune('\\')
		case '\'':
			sb.WriteRune('\'')
		case '"':
			sb.WriteRune('"')
		case 'u':
			if i+4 < len(runes) {
				hex := string(runes[i+1 : i+5])
				if v, err := strconv.ParseInt(hex, 16, 32); err == nil {
					i += 4
					if v >= 0xD800 && v <= 0xDBFF && i+6 < len(runes) && runes[i+1] == '\\' && runes[i+2] == 'u' {
						if lo, err := strconv.ParseInt(string(runes[i+3:i+7]), 16, 32); err == nil && lo >= 0xDC00 && lo <= 0xDFFF {
							v = 0x10000 + (v-0xD800)*0x400 + (lo - 0xDC00)
							i += 6
						}
					}
					sb.WriteRune(rune(v))
				} else {
					sb.WriteString("\\u")
					sb.WriteString(hex)
					i += 4
				}
			} else {
				sb.WriteString("\\u")
			}
		default:
			sb.WriteByte('\\')
			sb.WriteRune(esc)
		}
	}
	return sb.String()
}
