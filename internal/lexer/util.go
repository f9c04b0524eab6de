package lexer

import (
	"fmt"
	"strings"
)

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || isDec(b)
}

func isDec(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHex(b byte) bool {
	return isDec(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func quoteByte(b byte) string {
	if b >= 0x20 && b < 0x7F {
		return fmt.Sprintf("'%c'", b)
	}
	return fmt.Sprintf("0x%02X", b)
}

// cleanDocComment strips the /** ... */ markers and the leading ` * ` gutters
// of a javadoc-style comment, returning the trimmed body.
func cleanDocComment(raw string) string {
	body := strings.TrimPrefix(raw, "/**")
	body = strings.TrimSuffix(body, "*/")

	lines := strings.Split(body, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "*")
		line = strings.TrimSpace(line)
		if line == "" && len(out) == 0 {
			continue
		}
		out = append(out, line)
	}
	// Drop trailing blank lines left by the closing marker.
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}
