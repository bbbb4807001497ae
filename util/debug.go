package util

import (
	"log"
)

const (
	DebugMode = false
)

func DebugPrintln(args ...any) {
	if DebugMode {
		log.Println(append([]any{"[adamant]"}, args...)...)
	}
}

func DebugPrintf(format string, args ...any) {
	if DebugMode {
		log.Printf("[adamant] "+format, args...)
	}
}
