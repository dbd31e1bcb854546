// Package template locates template regions in markup documents and
// tokenizes element attribute blocks into model props carrying absolute
// byte spans. Scanning is best-effort and never fails: constructs the
// scanner cannot make sense of are skipped or degrade to plain
// attributes.
package template

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Region is the half-open byte range of a document that is scanned for
// elements. Offsets are absolute within the document; callers never
// translate them.
type Region struct {
	Start int
	End   int
}

const templateTag = "template"

// FindRegion locates the scannable region of the document. For .vue
// single-file components it is the content of the top-level <template>
// block (nested <template> tags are tracked by depth); any other markup
// file is scanned whole. ok is false when a .vue file has no template
// block.
func FindRegion(path string, src []byte) (Region, bool) {
	if strings.ToLower(filepath.Ext(path)) != ".vue" {
		return Region{Start: 0, End: len(src)}, true
	}

	depth := 0
	start := -1

	for i := 0; i < len(src); {
		lt := bytes.IndexByte(src[i:], '<')
		if lt < 0 {
			break
		}

		i += lt

		switch {
		case bytes.HasPrefix(src[i:], []byte("<!--")):
			i = skipComment(src, i)
		case isTagAt(src, i+2, templateTag) && bytes.HasPrefix(src[i:], []byte("</")):
			if depth > 0 {
				depth--
				if depth == 0 {
					return Region{Start: start, End: i}, true
				}
			}

			i = skipPast(src, i, '>')
		case isTagAt(src, i+1, templateTag):
			end, selfClosed := openTagEnd(src, i)
			if !selfClosed {
				depth++
				if depth == 1 {
					start = end
				}
			}

			i = end
		default:
			i++
		}
	}

	return Region{}, false
}

// isTagAt reports whether name occurs at offset i followed by a tag-name
// boundary character.
func isTagAt(src []byte, i int, name string) bool {
	if i < 0 || i+len(name) > len(src) {
		return false
	}

	if !bytes.EqualFold(src[i:i+len(name)], []byte(name)) {
		return false
	}

	if i+len(name) == len(src) {
		return true
	}

	switch src[i+len(name)] {
	case ' ', '\t', '\n', '\r', '>', '/':
		return true
	}

	return false
}

// openTagEnd returns the offset just past the open tag's '>' and whether
// the tag was self-closing. Quoted attribute values may contain '>'.
func openTagEnd(src []byte, i int) (int, bool) {
	selfClosed := false

	for ; i < len(src); i++ {
		switch src[i] {
		case '\'', '"':
			i = skipQuoted(src, i)
		case '/':
			if i+1 < len(src) && src[i+1] == '>' {
				selfClosed = true
			}
		case '>':
			return i + 1, selfClosed
		}
	}

	return len(src), selfClosed
}

// skipQuoted returns the offset of the closing quote matching the quote
// at i, or the last offset when unterminated.
func skipQuoted(src []byte, i int) int {
	quote := src[i]

	for j := i + 1; j < len(src); j++ {
		if src[j] == quote {
			return j
		}
	}

	return len(src) - 1
}

func skipComment(src []byte, i int) int {
	end := bytes.Index(src[i:], []byte("-->"))
	if end < 0 {
		return len(src)
	}

	return i + end + len("-->")
}

func skipPast(src []byte, i int, c byte) int {
	idx := bytes.IndexByte(src[i:], c)
	if idx < 0 {
		return len(src)
	}

	return i + idx + 1
}
