// Package properties reads key=value properties files such as key.properties
package properties

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var errMalformedEscape = errors.New("malformed \\uXXXX escape")

// Properties implements a koanf parser for the Java properties file format.
// Lines that cannot be parsed are skipped rather than reported.
type Properties struct{}

// Parser returns a properties parser
func Parser() *Properties {
	return &Properties{}
}

// Unmarshal parses the given properties bytes into a flat map of string values
func (p *Properties) Unmarshal(b []byte) (map[string]interface{}, error) {
	content, err := decode(b)
	if err != nil {
		return nil, fmt.Errorf("failed to decode properties content: %w", err)
	}

	values := map[string]interface{}{}
	for _, line := range logicalLines(content) {
		key, value, ok := parseLine(line)
		if !ok {
			continue
		}

		values[key] = value
	}

	return values, nil
}

// Marshal writes the map as sorted key=value lines that Unmarshal reads back unchanged.
// Values are formatted with fmt when they are not strings.
func (p *Properties) Marshal(o map[string]interface{}) ([]byte, error) {
	keys := make([]string, 0, len(o))
	for key := range o {
		if len(key) == 0 {
			return nil, errors.New("properties cannot contain an empty key")
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, key := range keys {
		var value string
		switch v := o[key].(type) {
		case string:
			value = v
		case nil:
			value = ""
		default:
			value = fmt.Sprint(v)
		}

		sb.WriteString(escape(key, true))
		sb.WriteByte('=')
		sb.WriteString(escape(value, false))
		sb.WriteByte('\n')
	}

	return []byte(sb.String()), nil
}

func decode(b []byte) (string, error) {
	if utf8.Valid(b) {
		return string(b), nil
	}

	// the format predates UTF-8 and defaults to Latin-1
	return charmap.ISO8859_1.NewDecoder().String(string(b))
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\f'
}

// logicalLines joins continuation lines and drops blank and comment lines
func logicalLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	natural := strings.Split(content, "\n")

	lines := make([]string, 0, len(natural))

	var sb strings.Builder
	continuing := false
	for _, raw := range natural {
		line := strings.TrimLeft(raw, " \t\f")

		if !continuing && (len(line) == 0 || line[0] == '#' || line[0] == '!') {
			continue
		}

		if trailingBackslashes(line)%2 == 1 {
			sb.WriteString(line[:len(line)-1])
			continuing = true
			continue
		}

		sb.WriteString(line)
		lines = append(lines, sb.String())
		sb.Reset()
		continuing = false
	}

	if continuing {
		lines = append(lines, sb.String())
	}

	return lines
}

func trailingBackslashes(line string) int {
	count := 0
	for i := len(line) - 1; i >= 0 && line[i] == '\\'; i-- {
		count++
	}
	return count
}

// parseLine splits a logical line into an unescaped key and value
func parseLine(line string) (string, string, bool) {
	end := -1
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == '\\' {
			i++
			continue
		}
		if c == '=' || c == ':' || isBlank(c) {
			end = i
			break
		}
	}

	// no separator, or nothing before it
	if end <= 0 {
		return "", "", false
	}

	rest := strings.TrimLeft(line[end:], " \t\f")
	if len(rest) > 0 && (rest[0] == '=' || rest[0] == ':') {
		rest = strings.TrimLeft(rest[1:], " \t\f")
	}

	key, err := unescape(line[:end])
	if err != nil || len(key) == 0 {
		return "", "", false
	}

	value, err := unescape(rest)
	if err != nil {
		return "", "", false
	}

	return key, value, true
}

func unescape(s string) (string, error) {
	if !strings.Contains(s, "\\") {
		return s, nil
	}

	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i == len(s)-1 {
			sb.WriteByte(c)
			continue
		}

		i++
		switch s[i] {
		case 't':
			sb.WriteByte('\t')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 'f':
			sb.WriteByte('\f')
		case 'u':
			r, err := parseCodeUnit(s, i+1)
			if err != nil {
				return "", err
			}
			i += 4

			// a high surrogate followed by an escaped low surrogate is one supplementary character
			if utf16.IsSurrogate(r) && r < 0xdc00 && i+6 < len(s) && s[i+1] == '\\' && s[i+2] == 'u' {
				low, err := parseCodeUnit(s, i+3)
				if err == nil && low >= 0xdc00 && low <= 0xdfff {
					r = utf16.DecodeRune(r, low)
					i += 6
				}
			}

			// unpaired surrogates are written as U+FFFD
			sb.WriteRune(r)
		default:
			sb.WriteByte(s[i])
		}
	}

	return sb.String(), nil
}

// parseCodeUnit reads the four hex digits of a \uXXXX escape starting at start
func parseCodeUnit(s string, start int) (rune, error) {
	if start+4 > len(s) {
		return 0, errMalformedEscape
	}

	code, err := strconv.ParseUint(s[start:start+4], 16, 16)
	if err != nil {
		return 0, errMalformedEscape
	}

	return rune(code), nil
}

func escape(s string, isKey bool) string {
	var sb strings.Builder
	for i, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '\t':
			sb.WriteString(`\t`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\f':
			sb.WriteString(`\f`)
		case '=', ':', '#', '!':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case ' ':
			if isKey || i == 0 {
				sb.WriteByte('\\')
			}
			sb.WriteRune(r)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
