package util

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

/*
 * a small leveled logger. lines go to a file when one is configured,
 * to stderr otherwise.
 */
const (
	Error   = 1
	Warning = 2
	Info    = 4

	AllModes = Error | Warning | Info

	RedColor    = "\033[31m"
	YellowColor = "\033[33m"
	CyanColor   = "\033[36m"
	ResetColor  = "\033[0m"
)

type LoggerInfo struct {
	Filename  string `yaml:"filename"`
	IsColored bool   `yaml:"is_colored"`
	SaveTime  bool   `yaml:"save_time"`
	Mode      uint8  `yaml:"mode"`
}

type Logger struct {
	li      *LoggerInfo
	colored bool
	mtx     sync.Mutex
}

func NewLogger(li *LoggerInfo) *Logger {
	if li == nil {
		li = &LoggerInfo{}
	}
	colored := li.IsColored && li.Filename == "" &&
		term.IsTerminal(int(os.Stderr.Fd()))
	return &Logger{
		li:      li,
		colored: colored,
	}
}

// NopLogger drops everything.
func NopLogger() *Logger {
	return NewLogger(&LoggerInfo{Mode: 0})
}

func (l *Logger) colorize(line string, color string) string {
	if l.colored {
		return color + line + ResetColor
	}
	return line
}

func (l *Logger) prepareString(str string, clr string) string {
	toWrite := l.colorize(str, clr) + " "
	if l.li.SaveTime {
		toWrite += time.Now().Format(time.DateTime) + " "
	}
	return toWrite
}

func (l *Logger) LogString(s string) {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	var out io.Writer = os.Stderr
	if l.li.Filename != "" {
		f, err := os.OpenFile(l.li.Filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			// nowhere else to report it
			return
		}
		defer f.Close()
		out = f
	}
	fmt.Fprintln(out, s)
}

func (l *Logger) LogError(err error) {
	if l.li.Mode&Error == Error {
		l.LogString(l.prepareString("[ERROR]", RedColor) + err.Error())
	}
}

func (l *Logger) LogWarning(warning string) {
	if l.li.Mode&Warning == Warning {
		l.LogString(l.prepareString("[WARNING]", YellowColor) + warning)
	}
}

func (l *Logger) LogInfo(info string) {
	if l.li.Mode&Info == Info {
		l.LogString(l.prepareString("[INFO]", CyanColor) + info)
	}
}

func (l *Logger) LogInfof(format string, args ...any) {
	l.LogInfo(fmt.Sprintf(format, args...))
}
