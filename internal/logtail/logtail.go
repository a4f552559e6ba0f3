package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. A missing file yields no lines.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var all []string
		for scanner.Scan() {
			all = append(all, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return all, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Entry is one decoded slog JSON record.
type Entry struct {
	Time    time.Time
	Level   string
	Message string
	Attrs   map[string]any
	Raw     string
}

// Parse decodes a JSON log line. Lines that are not JSON come back with only
// Raw and Message set.
func Parse(line string) Entry {
	entry := Entry{Raw: line, Message: strings.TrimSpace(line)}
	var record map[string]any
	if err := json.Unmarshal([]byte(line), &record); err != nil {
		return entry
	}
	if ts, ok := record["time"].(string); ok {
		if parsed, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			entry.Time = parsed
		}
	}
	if lvl, ok := record["level"].(string); ok {
		entry.Level = strings.ToUpper(lvl)
	}
	if msg, ok := record["msg"].(string); ok {
		entry.Message = msg
	}
	delete(record, "time")
	delete(record, "level")
	delete(record, "msg")
	if len(record) > 0 {
		entry.Attrs = record
	}
	return entry
}

// String renders the entry as "15:04:05 LEVEL message key=value ...", with
// attributes sorted by key.
func (e Entry) String() string {
	return e.format(func(s string) string { return s }, func(s string) string { return s })
}

// Colorize renders the entry like String with the level and timestamp colored.
func (e Entry) Colorize() string {
	faint := color.New(color.Faint).SprintFunc()
	return e.format(func(s string) string { return faint(s) }, levelColor(e.Level))
}

func (e Entry) format(ts func(string) string, lvl func(string) string) string {
	parts := make([]string, 0, 3+len(e.Attrs))
	if !e.Time.IsZero() {
		parts = append(parts, ts(e.Time.Local().Format("15:04:05")))
	}
	if e.Level != "" {
		parts = append(parts, lvl(fmt.Sprintf("%-5s", e.Level)))
	}
	if e.Message != "" {
		parts = append(parts, e.Message)
	}
	keys := make([]string, 0, len(e.Attrs))
	for k := range e.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, e.Attrs[k]))
	}
	return strings.Join(parts, " ")
}

func levelColor(level string) func(string) string {
	var c *color.Color
	switch level {
	case "ERROR":
		c = color.New(color.FgRed, color.Bold)
	case "WARN":
		c = color.New(color.FgYellow, color.Bold)
	case "DEBUG":
		c = color.New(color.FgCyan)
	default:
		c = color.New(color.FgGreen)
	}
	sprint := c.SprintFunc()
	return func(s string) string { return sprint(s) }
}
