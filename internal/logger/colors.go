package logger

// Terminal color codes using ANSI escape sequences
const (
	resetColor  = "\033[0m"
	redColor    = "\033[31m" // For errors
	greenColor  = "\033[32m" // For success/completion
	yellowColor = "\033[33m" // For warnings
	blueColor   = "\033[34m" // For info
	cyanColor   = "\033[36m" // For debug
)

func colored(text string, color string) string {
	return color + text + resetColor
}
