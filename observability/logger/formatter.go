package logger

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// TextFormatter writes "[LEVEL] name: message key=value" lines.
// With Verbose set the line becomes
// "timestamp - [LEVEL] - name - func:line - message key=value".
type TextFormatter struct {
	Verbose bool
}

// Format implements logrus.Formatter.
func (f *TextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer

	level := strings.ToUpper(entry.Level.String())
	name, _ := entry.Data[NameField].(string)

	if f.Verbose {
		fmt.Fprintf(&b, "%s - [%s] - %s - %s - %s",
			entry.Time.Format("2006-01-02 15:04:05.000"), level, name, callSite(entry), entry.Message)
	} else {
		fmt.Fprintf(&b, "[%s] %s: %s", level, name, entry.Message)
	}

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		switch k {
		case NameField, funcField, lineField:
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, entry.Data[k])
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

func callSite(entry *logrus.Entry) string {
	fn, ok := entry.Data[funcField].(string)
	if !ok {
		return "?:0"
	}
	return fmt.Sprintf("%s:%v", fn, entry.Data[lineField])
}
