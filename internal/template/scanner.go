package template

import (
	"bytes"
	"strings"

	m "tidyvue.dev/pkg/tidyvue/internal/model"
)

// ScanElements tokenizes every element open tag inside the region and
// returns one Element per tag that carries props. Prop spans are
// absolute within src. Comments, closing tags, and raw <script>/<style>
// content are skipped.
func ScanElements(src []byte, region Region) []m.Element {
	var elements []m.Element

	end := region.End
	if end > len(src) {
		end = len(src)
	}

	for i := region.Start; i >= 0 && i < end; {
		lt := bytes.IndexByte(src[i:end], '<')
		if lt < 0 {
			break
		}

		i += lt

		switch {
		case bytes.HasPrefix(src[i:end], []byte("<!--")):
			i = skipComment(src, i)
		case bytes.HasPrefix(src[i:end], []byte("</")), bytes.HasPrefix(src[i:end], []byte("<!")):
			i = skipPast(src, i, '>')
		case i+1 < end && isNameStart(src[i+1]):
			name, next := scanTagName(src, i+1, end)

			props, next := scanProps(src, next, end)
			if len(props) > 0 {
				elements = append(elements, m.Element{Props: props})
			}

			i = next
			if isRawText(name) {
				i = skipRawText(src, i, name)
			}
		default:
			i++
		}
	}

	return elements
}

func isNameStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isTagNameChar(c byte) bool {
	return isNameStart(c) || c >= '0' && c <= '9' || c == '-' || c == ':'
}

func scanTagName(src []byte, i, end int) (string, int) {
	start := i
	for i < end && isTagNameChar(src[i]) {
		i++
	}

	return string(src[start:i]), i
}

// isRawText reports whether the tag's content is raw text that must not
// be scanned for elements.
func isRawText(name string) bool {
	lower := strings.ToLower(name)
	return lower == "script" || lower == "style"
}

func skipRawText(src []byte, i int, name string) int {
	idx := bytes.Index(bytes.ToLower(src[i:]), []byte("</"+strings.ToLower(name)))
	if idx < 0 {
		return len(src)
	}

	return skipPast(src, i+idx, '>')
}

// scanProps consumes the attribute block of an open tag up to and
// including its '>' and returns the parsed props.
func scanProps(src []byte, i, end int) ([]m.Prop, int) {
	var props []m.Prop

	for i < end {
		i = skipSpace(src, i, end)
		if i >= end {
			break
		}

		switch {
		case src[i] == '>':
			return props, i + 1
		case src[i] == '/' && i+1 < end && src[i+1] == '>':
			return props, i + 2
		case src[i] == '/', src[i] == '=':
			// Stray punctuation between props; not attributable to anything.
			i++
		default:
			var prop m.Prop

			prop, i = scanProp(src, i, end)
			props = append(props, prop)
		}
	}

	return props, end
}

func skipSpace(src []byte, i, end int) int {
	for i < end {
		switch src[i] {
		case ' ', '\t', '\n', '\r':
			i++
		default:
			return i
		}
	}

	return end
}

// scanProp consumes a single attribute or directive starting at i and
// returns it with its exact source span.
func scanProp(src []byte, i, end int) (m.Prop, int) {
	start := i
	name, i := scanPropName(src, i, end)

	var (
		value    string
		quote    byte
		hasValue bool
	)

	if i < end && src[i] == '=' {
		hasValue = true
		i++

		if i < end && (src[i] == '\'' || src[i] == '"') {
			quote = src[i]
			i++

			valStart := i
			for i < end && src[i] != quote {
				i++
			}

			value = string(src[valStart:i])
			if i < end {
				i++ // closing quote
			}
		} else {
			valStart := i
			for i < end && !isSpaceByte(src[i]) && src[i] != '>' {
				i++
			}

			value = string(src[valStart:i])
		}
	}

	span := m.Span{Start: start, End: i}
	text := string(src[start:i])

	return classifyProp(name, value, hasValue, quote, text, span), i
}

// scanPropName reads a prop name, keeping dynamic-argument brackets
// intact so ':[a.b]' is one name even though it contains a dot.
func scanPropName(src []byte, i, end int) (string, int) {
	start := i
	bracketDepth := 0

	for i < end {
		c := src[i]

		switch {
		case c == '[':
			bracketDepth++
		case c == ']':
			if bracketDepth > 0 {
				bracketDepth--
			}
		case isSpaceByte(c), c == '>':
			return string(src[start:i]), i
		case c == '=' && bracketDepth == 0:
			return string(src[start:i]), i
		case c == '/' && i+1 < end && src[i+1] == '>' && bracketDepth == 0:
			return string(src[start:i]), i
		}

		i++
	}

	return string(src[start:i]), i
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// classifyProp decides between the attribute and directive variants and
// decomposes directive names into kind, argument, and modifiers.
func classifyProp(name, value string, hasValue bool, quote byte, text string, span m.Span) m.Prop {
	switch {
	case strings.HasPrefix(name, ":"):
		return directiveProp("bind", name[1:], value, hasValue, text, span)
	case strings.HasPrefix(name, "@"):
		return directiveProp("on", name[1:], value, hasValue, text, span)
	case strings.HasPrefix(name, "#"):
		return directiveProp("slot", name[1:], value, hasValue, text, span)
	case strings.HasPrefix(name, "v-"):
		rest := name[2:]
		if idx := strings.IndexByte(rest, ':'); idx >= 0 {
			return directiveProp(rest[:idx], rest[idx+1:], value, hasValue, text, span)
		}

		// Bare directive: modifiers may still follow (v-model.lazy), but
		// there is no argument to attach them to an argument part.
		dirName, mods := splitModifiers(rest)

		return m.Directive{
			Name:          dirName,
			Modifiers:     mods,
			HasExpression: hasValue,
			Expression:    value,
			Text:          text,
			Range:         span,
		}
	default:
		return m.Attribute{
			Name:     name,
			Value:    value,
			HasValue: hasValue,
			Quote:    quote,
			Text:     text,
			Range:    span,
		}
	}
}

// directiveProp builds a directive with an argument part, separating a
// dynamic [expr] argument from its modifier chain.
func directiveProp(kind, argPart, value string, hasValue bool, text string, span m.Span) m.Prop {
	arg := argPart
	dynamic := false

	var mods []string

	if strings.HasPrefix(argPart, "[") {
		if close := strings.IndexByte(argPart, ']'); close >= 0 {
			arg = argPart[1:close]
			dynamic = true
			_, mods = splitModifiers(argPart[close+1:])
		}
	} else {
		arg, mods = splitModifiers(argPart)
	}

	return m.Directive{
		Name:          kind,
		Arg:           arg,
		DynamicArg:    dynamic,
		Modifiers:     mods,
		HasExpression: hasValue,
		Expression:    value,
		Text:          text,
		Range:         span,
	}
}

// splitModifiers splits "click.stop.prevent" into the head and the
// modifier chain in original order.
func splitModifiers(s string) (string, []string) {
	parts := strings.Split(s, ".")
	if len(parts) == 1 {
		return s, nil
	}

	mods := make([]string, 0, len(parts)-1)

	for _, part := range parts[1:] {
		if part != "" {
			mods = append(mods, part)
		}
	}

	return parts[0], mods
}
