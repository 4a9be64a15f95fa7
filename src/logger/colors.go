package logger

const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Purple = "\033[35m"
	Cyan   = "\033[36m"
	Gray   = "\033[37m"
)

func Colorize(msg string, color string) string {
	return color + msg + Reset
}

func getLogLevelColor(level Loglevel) string {
	switch level {
	case CRITICAL, ERROR:
		return Red
	case WARNING:
		return Yellow
	case INFO:
		return Green
	case DEBUG:
		return Blue
	}
	return Purple
}
