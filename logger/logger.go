// Package logger builds per-component logrus loggers that print lines in the
// "[COMPONENT] [LEVEL] message key=value" layout used across the service.
package logger

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// ComponentField is the entry field carrying the component name.
const ComponentField = "component"

// ANSI colors used for the level tag.
const (
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorReset  = "\033[0m"
)

// New returns a logger tagged with component that writes to out at the given
// level ("debug", "info", "warn", ...). colors enables ANSI level tags.
func New(component, level string, colors bool, out io.Writer) (*logrus.Entry, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(lvl)
	l.SetFormatter(&Formatter{Colors: colors})

	return l.WithField(ComponentField, strings.ToUpper(component)), nil
}

// Formatter renders entries as "[COMPONENT] [LEVEL] message k=v ...".
type Formatter struct {
	// Colors wraps the level tag in ANSI colors.
	Colors bool
}

// Format implements logrus.Formatter.
func (f *Formatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer

	if c, ok := e.Data[ComponentField]; ok {
		fmt.Fprintf(&b, "[%v] ", c)
	}

	level := strings.ToUpper(e.Level.String())
	if f.Colors {
		fmt.Fprintf(&b, "%s[%s]%s ", levelColor(e.Level), level, colorReset)
	} else {
		fmt.Fprintf(&b, "[%s] ", level)
	}
	b.WriteString(e.Message)

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		if k != ComponentField {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.Data[k])
	}
	b.WriteByte('\n')

	return b.Bytes(), nil
}

func levelColor(l logrus.Level) string {
	switch l {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return colorRed
	case logrus.WarnLevel:
		return colorYellow
	case logrus.InfoLevel:
		return colorGreen
	default:
		return colorCyan
	}
}
