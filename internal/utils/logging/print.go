package logging

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"tubaudio/internal/domain/consts"

	"github.com/rs/zerolog"
)

// E prints an error message if l is within the current debug level.
func E(l int, format string, args ...any) string {
	if l > Level {
		return ""
	}
	return emit(zerolog.ErrorLevel, consts.RedError, false, format, args...)
}

// S prints a success message if l is within the current debug level.
func S(l int, format string, args ...any) string {
	if l > Level {
		return ""
	}
	return emit(zerolog.InfoLevel, consts.GreenSuccess, false, format, args...)
}

// D prints a debug message with caller information if l is within the current debug level.
func D(l int, format string, args ...any) string {
	if l > Level {
		return ""
	}
	return emit(zerolog.DebugLevel, consts.YellowDebug, true, format, args...)
}

// I prints an info message.
func I(format string, args ...any) string {
	return emit(zerolog.InfoLevel, consts.BlueInfo, false, format, args...)
}

// P prints a plain message.
func P(format string, args ...any) string {
	return emit(zerolog.InfoLevel, "", false, format, args...)
}

func emit(level zerolog.Level, tag string, withCaller bool, format string, args ...any) string {
	mu.Lock()
	defer mu.Unlock()

	var b strings.Builder
	b.Grow(len(tag) + len(format) + (len(args) * 32))
	b.WriteString(tag)

	// Write formatted message
	if len(args) != 0 {
		fmt.Fprintf(&b, format, args...)
	} else {
		b.WriteString(format)
	}

	if withCaller {
		pc, file, line, _ := runtime.Caller(2)
		b.WriteString(" [")
		b.WriteString(consts.ColorBlue)
		b.WriteString("Function: ")
		b.WriteString(consts.ColorReset)
		b.WriteString(filepath.Base(runtime.FuncForPC(pc).Name()))
		b.WriteString(" - ")
		b.WriteString(consts.ColorBlue)
		b.WriteString("File: ")
		b.WriteString(consts.ColorReset)
		b.WriteString(filepath.Base(file))
		b.WriteString(" : ")
		b.WriteString(consts.ColorBlue)
		b.WriteString("Line: ")
		b.WriteString(consts.ColorReset)
		b.WriteString(strconv.Itoa(line))
		b.WriteString("]")
	}
	b.WriteString("\n")

	msg := b.String()
	fmt.Fprint(Console, msg)
	writeLog(level, msg)

	return msg
}
