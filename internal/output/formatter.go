package output

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

// Formatter renders log entries as "<Label>: message key=value ...".
// Fields are printed sorted by key; "component" is omitted.
type Formatter struct{}

// levelLabel returns the label and style for a log level.
func levelLabel(level logrus.Level) (string, lipgloss.Style) {
	switch level {
	case logrus.TraceLevel, logrus.DebugLevel:
		return "Debug:", DebugText
	case logrus.InfoLevel:
		return "Info:", Label
	case logrus.WarnLevel:
		return "Warning:", WarningText
	default:
		return "Error:", ErrorText
	}
}

// Format implements logrus.Formatter.
func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer

	label, style := levelLabel(entry.Level)
	b.WriteString(style.Render(label))
	b.WriteByte(' ')
	b.WriteString(entry.Message)

	if len(entry.Data) > 0 {
		keys := make([]string, 0, len(entry.Data))
		for k := range entry.Data {
			if k == "component" {
				continue
			}
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteByte(' ')
			b.WriteString(MutedText.Render(fmt.Sprintf("%s=%v", k, entry.Data[k])))
		}
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}
