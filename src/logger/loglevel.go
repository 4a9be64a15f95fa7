package logger

import "strings"

type Loglevel int

const (
	CRITICAL Loglevel = iota
	ERROR
	WARNING
	INFO
	DEBUG
	TEST
)

var loglevelNames = map[Loglevel]string{
	CRITICAL: "CRITICAL",
	ERROR:    "ERROR",
	WARNING:  "WARNING",
	INFO:     "INFO",
	DEBUG:    "DEBUG",
	TEST:     "TEST",
}

func (l Loglevel) String() string {
	if name, ok := loglevelNames[l]; ok {
		return name
	}
	return "UNKNOWN"
}

// Parse a loglevel name, case insensitive.
//
// Unknown names fall back to INFO.
func LoglevelFromString(s string) Loglevel {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CRITICAL":
		return CRITICAL
	case "ERROR":
		return ERROR
	case "WARNING", "WARN":
		return WARNING
	case "DEBUG":
		return DEBUG
	case "TEST":
		return TEST
	}
	return INFO
}
