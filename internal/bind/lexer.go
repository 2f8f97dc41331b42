package bind

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

type (
	positionalArg struct{}
	numericArg    int
	namedArg      string
)

type sqlLexer struct {
	src   string
	start int
	pos   int
	style Style
	parts []interface{}
}

type stateFn func(*sqlLexer) stateFn

func lex(style Style, sql string) []interface{} {
	l := &sqlLexer{
		src:   sql,
		style: style,
	}
	for stateFn := rawState; stateFn != nil; {
		stateFn = stateFn(l)
	}

	return l.parts
}

func (l *sqlLexer) next() (r rune, width int) {
	r, width = utf8.DecodeRuneInString(l.src[l.pos:])
	l.pos += width

	return r, width
}

func (l *sqlLexer) peek() rune {
	r, _ := utf8.DecodeRuneInString(l.src[l.pos:])

	return r
}

// flush emits the raw text up to end and moves start past the token.
func (l *sqlLexer) flush(end int) {
	if end > l.start {
		l.parts = append(l.parts, l.src[l.start:end])
	}
	l.start = end
}

func (l *sqlLexer) eof() stateFn {
	l.flush(len(l.src))

	return nil
}

func rawState(l *sqlLexer) stateFn {
	for {
		r, width := l.next()

		switch r {
		case '`':
			return quoteState('`')
		case '\'':
			return quoteState('\'')
		case '"':
			return quoteState('"')
		case '-':
			if l.peek() == '-' {
				l.pos++

				return oneLineCommentState
			}
		case '/':
			if l.peek() == '*' {
				l.pos++

				return multilineCommentState
			}
		case ':':
			if l.peek() == ':' {
				l.pos++

				continue
			}
			if l.inWord(l.pos - width) {
				continue
			}
			switch {
			case l.style == Numeric && isNumber(l.peek()):
				l.flush(l.pos - width)

				return numericArgState
			case l.style == Named && isIdentStart(l.peek()):
				l.flush(l.pos - width)

				return namedArgState
			}
		case '?':
			if l.style == QMark {
				l.flush(l.pos - width)
				l.parts = append(l.parts, positionalArg{})
				l.start = l.pos
			}
		case '%':
			if l.style == Format || l.style == PyFormat {
				if next := l.percentArg(width); next != nil {
					return next
				}
			}
		case utf8.RuneError:
			if width == 0 {
				return l.eof()
			}
		}
	}
}

// percentArg handles a '%' already consumed in format and pyformat styles.
func (l *sqlLexer) percentArg(width int) stateFn {
	switch l.peek() {
	case '%':
		l.escapedPercent(width)
	case 's':
		if l.style == Format {
			l.flush(l.pos - width)
			l.pos++
			l.parts = append(l.parts, positionalArg{})
			l.start = l.pos
		}
	case '(':
		if l.style == PyFormat {
			end := l.pos + 1
			for end < len(l.src) && l.src[end] != ')' {
				end++
			}
			if end+1 < len(l.src) && l.src[end+1] == 's' && end > l.pos+1 {
				l.flush(l.pos - width)
				l.parts = append(l.parts, namedArg(l.src[l.pos+1:end]))
				l.pos = end + 2
				l.start = l.pos
			}
		}
	}

	return nil
}

// inWord reports whether the text before end continues a word or a literal,
// as in the time 09:30:00 or the dictionary lookup d.k:v.
func (l *sqlLexer) inWord(end int) bool {
	r, _ := utf8.DecodeLastRuneInString(l.src[:end])

	return r == '.' || isIdentStart(r) || isNumber(r)
}

// escapedPercent collapses a %% already consumed up to its first '%'.
func (l *sqlLexer) escapedPercent(width int) {
	l.flush(l.pos - width)
	l.parts = append(l.parts, "%")
	l.pos++
	l.start = l.pos
}

func quoteState(quote rune) stateFn {
	return func(l *sqlLexer) stateFn {
		for {
			r, width := l.next()

			switch r {
			case quote:
				if l.peek() != quote {
					return rawState
				}
				l.pos += width
			case '%':
				if (l.style == Format || l.style == PyFormat) && l.peek() == '%' {
					l.escapedPercent(width)
				}
			case utf8.RuneError:
				if width == 0 {
					return l.eof()
				}
			}
		}
	}
}

func oneLineCommentState(l *sqlLexer) stateFn {
	for {
		r, width := l.next()

		switch r {
		case '\n', '\r':
			return rawState
		case utf8.RuneError:
			if width == 0 {
				return l.eof()
			}
		}
	}
}

func multilineCommentState(l *sqlLexer) stateFn {
	for {
		r, width := l.next()

		switch r {
		case '*':
			if l.peek() == '/' {
				l.pos++

				return rawState
			}
		case utf8.RuneError:
			if width == 0 {
				return l.eof()
			}
		}
	}
}

func numericArgState(l *sqlLexer) stateFn {
	begin := l.pos
	for isNumber(l.peek()) {
		l.pos++
	}
	i, err := strconv.Atoi(l.src[begin:l.pos])
	if err != nil {
		i = -1
	}
	l.parts = append(l.parts, numericArg(i))
	l.start = l.pos

	return rawState
}

func namedArgState(l *sqlLexer) stateFn {
	begin := l.pos
	for {
		r := l.peek()
		if !isIdentStart(r) && !isNumber(r) {
			break
		}
		l.pos += utf8.RuneLen(r)
	}
	l.parts = append(l.parts, namedArg(l.src[begin:l.pos]))
	l.start = l.pos

	return rawState
}

func isNumber(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}
