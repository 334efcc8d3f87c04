package logtail

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Entry is one parsed line of the structured log.
type Entry struct {
	Time       time.Time
	Level      string
	Logger     string
	Message    string
	Error      string
	RequestID  string
	Fields     map[string]string
	Raw        string
	Structured bool
}

var reservedKeys = map[string]bool{
	"ts":         true,
	"level":      true,
	"logger":     true,
	"msg":        true,
	"caller":     true,
	"error":      true,
	"request_id": true,
	"stacktrace": true,
}

// Parse decodes a JSON log line. Lines that are not JSON objects come back
// unstructured with the whole line as the message.
func Parse(line string) Entry {
	entry := Entry{Raw: line, Message: strings.TrimSpace(line)}

	var payload map[string]any
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		return entry
	}

	entry.Structured = true
	entry.Level = strings.ToUpper(stringField(payload, "level"))
	entry.Logger = stringField(payload, "logger")
	entry.Message = stringField(payload, "msg")
	entry.Error = stringField(payload, "error")
	entry.RequestID = stringField(payload, "request_id")
	entry.Time = parseTime(payload["ts"])

	for key, value := range payload {
		if reservedKeys[key] {
			continue
		}
		if entry.Fields == nil {
			entry.Fields = make(map[string]string)
		}
		entry.Fields[key] = formatValue(value)
	}
	return entry
}

// Format renders the entry as a single plain-text line.
func (e Entry) Format() string {
	if !e.Structured {
		return e.Raw
	}
	var b strings.Builder
	if !e.Time.IsZero() {
		b.WriteString(e.Time.Local().Format("15:04:05"))
		b.WriteByte(' ')
	}
	if e.Level != "" {
		fmt.Fprintf(&b, "%-5s ", e.Level)
	}
	if e.Logger != "" {
		fmt.Fprintf(&b, "[%s] ", e.Logger)
	}
	b.WriteString(e.Message)

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%s", k, e.Fields[k])
	}
	if e.Error != "" {
		fmt.Fprintf(&b, " error=%q", e.Error)
	}
	return b.String()
}

// IsProblem reports whether the entry is a warning or worse.
func (e Entry) IsProblem() bool {
	switch e.Level {
	case "WARN", "ERROR", "DPANIC", "PANIC", "FATAL":
		return true
	}
	return false
}

func stringField(payload map[string]any, key string) string {
	v, ok := payload[key].(string)
	if !ok {
		return ""
	}
	return v
}

func parseTime(v any) time.Time {
	switch ts := v.(type) {
	case string:
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.000Z0700"} {
			if t, err := time.Parse(layout, ts); err == nil {
				return t
			}
		}
	case float64:
		sec := int64(ts)
		nsec := int64((ts - float64(sec)) * float64(time.Second))
		return time.Unix(sec, nsec)
	}
	return time.Time{}
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%g", val)
	case nil:
		return "null"
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	}
}
