package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// DebugLogger logs TUI events to a file when --debug is set.
type DebugLogger struct {
	mu      sync.Mutex
	file    *os.File
	enabled bool
	seq     int
}

// Global debug logger instance
var debugger *DebugLogger

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "roomgrid-debug.log"

// InitDebugLogger initializes the debug logger if debug mode is enabled.
func InitDebugLogger(enabled bool) error {
	if !enabled {
		debugger = &DebugLogger{enabled: false}
		return nil
	}

	f, err := os.Create(DebugLogPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	debugger = &DebugLogger{
		file:    f,
		enabled: true,
	}

	debugger.log("DEBUG_START", map[string]any{
		"log_file": DebugLogPath,
		"time":     time.Now().Format(time.RFC3339),
	})

	return nil
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	if debugger != nil && debugger.file != nil {
		debugger.log("DEBUG_END", map[string]any{
			"time": time.Now().Format(time.RFC3339),
		})
		_ = debugger.file.Close()
	}
}

// log writes a structured log entry.
func (d *DebugLogger) log(event string, data map[string]any) {
	if d == nil || !d.enabled || d.file == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	entry := map[string]any{
		"seq":   d.seq,
		"ts":    time.Now().Format("15:04:05.000"),
		"event": event,
	}
	for k, v := range data {
		entry[k] = v
	}

	b, _ := json.Marshal(entry)
	_, _ = fmt.Fprintf(d.file, "%s\n", b)
}

// debugLog records a free-form event, mainly mouse and drag traces.
func debugLog(format string, args ...any) {
	if debugger == nil || !debugger.enabled {
		return
	}
	debugger.log("TRACE", map[string]any{
		"msg": fmt.Sprintf(format, args...),
	})
}
