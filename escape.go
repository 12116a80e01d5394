package main

import (
	"fmt"
	"strconv"
	"strings"
)

// escapeBytes encodes raw artifact bytes as the body of a Rust byte-string
// literal. Printable ASCII passes through; the double quote and the
// backslash get dedicated escapes so the literal re-parses to the original
// bytes; every other byte becomes \xHH with lowercase hex digits.
func escapeBytes(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data))
	for _, v := range data {
		switch {
		case v == '"':
			sb.WriteString(`\"`)
		case v == '\\':
			sb.WriteString(`\\`)
		case v >= 0x20 && v <= 0x7e:
			sb.WriteByte(v)
		default:
			fmt.Fprintf(&sb, `\x%02x`, v)
		}
	}
	return sb.String()
}

// decodeByteString reverses escapeBytes. It understands exactly the escapes
// escapeBytes produces: \", \\ and \xHH.
func decodeByteString(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c != '\\' {
			out = append(out, c)
			i++
			continue
		}
		if i+1 >= len(s) {
			return nil, fmt.Errorf("truncated escape at offset %d", i)
		}
		switch s[i+1] {
		case '"', '\\':
			out = append(out, s[i+1])
			i += 2
		case 'x':
			if i+4 > len(s) {
				return nil, fmt.Errorf("truncated \\x escape at offset %d", i)
			}
			v, err := strconv.ParseUint(s[i+2:i+4], 16, 8)
			if err != nil {
				return nil, fmt.Errorf("bad \\x escape at offset %d: %w", i, err)
			}
			out = append(out, byte(v))
			i += 4
		default:
			return nil, fmt.Errorf("unknown escape \\%c at offset %d", s[i+1], i)
		}
	}
	return out, nil
}
