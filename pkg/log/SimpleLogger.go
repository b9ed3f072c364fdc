// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package log

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

const (
	FormatText  = "text"
	FormatJSONL = "jsonl"
)

// SimpleLogger writes one event per line, either as human-readable
// key=value text or as jsonl.
type SimpleLogger struct {
	writer io.Writer
	format string
}

func (l *SimpleLogger) Log(msg string, fields ...map[string]interface{}) error {
	merged := map[string]interface{}{}
	for _, m := range fields {
		for k, v := range m {
			merged[k] = v
		}
	}

	if l.format == FormatJSONL {
		merged["msg"] = msg
		merged["ts"] = time.Now().Format(time.RFC3339)
		b, err := json.Marshal(merged)
		if err != nil {
			return fmt.Errorf("error marshaling log event: %w", err)
		}
		_, err = fmt.Fprintln(l.writer, string(b))
		return err
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys)+1)
	parts = append(parts, msg)
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, merged[k]))
	}
	_, err := fmt.Fprintln(l.writer, strings.Join(parts, " "))
	return err
}

func NewSimpleLogger(w io.Writer) *SimpleLogger {
	return &SimpleLogger{
		writer: w,
		format: FormatText,
	}
}

func NewSimpleLoggerWithFormat(w io.Writer, format string) *SimpleLogger {
	if format != FormatJSONL {
		format = FormatText
	}
	return &SimpleLogger{
		writer: w,
		format: format,
	}
}
