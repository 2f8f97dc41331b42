package log

import "strings"

type Level int

const (
	TRACE = Level(iota)
	DEBUG
	INFO
	WARN
	ERROR
	FATAL

	QUIET
)

var levelLabels = [...]string{
	TRACE: "TRACE",
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
	FATAL: "FATAL",
	QUIET: "QUIET",
}

const colorReset = "\033[0m"

var (
	levelColors = [...]string{
		TRACE: "\033[38m",
		DEBUG: "\033[37m",
		INFO:  "\033[36m",
		WARN:  "\033[33m",
		ERROR: "\033[31m",
		FATAL: "\033[41m",
		QUIET: colorReset,
	}
	levelBoldColors = [...]string{
		TRACE: "\033[47m",
		DEBUG: "\033[100m",
		INFO:  "\033[106m",
		WARN:  "\u001B[30m\033[103m",
		ERROR: "\033[101m",
		FATAL: "\033[101m",
		QUIET: "",
	}
)

func (l Level) valid() bool {
	return l >= TRACE && l <= QUIET
}

func (l Level) String() string {
	if !l.valid() {
		return levelLabels[QUIET]
	}

	return levelLabels[l]
}

func (l Level) Color() string {
	if !l.valid() {
		return levelColors[QUIET]
	}

	return levelColors[l]
}

func (l Level) BoldColor() string {
	if !l.valid() {
		return levelBoldColors[QUIET]
	}

	return levelBoldColors[l]
}

// FromString parses a level label case-insensitively. Unknown labels are QUIET.
func FromString(s string) Level {
	for lvl, label := range levelLabels {
		if strings.EqualFold(label, s) {
			return Level(lvl)
		}
	}

	return QUIET
}
