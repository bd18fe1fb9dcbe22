package debug

import (
	"fmt"
	"sync"
	"time"
)

// Logger is a circular-buffer event log shared by every emulator
// subsystem. Entries are opt-in per Component and filtered by a minimum
// level before they ever reach the buffer, so a disabled subsystem pays
// only the cost of a map lookup to stay quiet.
type Logger struct {
	mu         sync.RWMutex
	entries    []LogEntry
	maxEntries int
	writeIndex int
	entryCount int

	componentEnabled map[Component]bool
	minLevel         LogLevel

	logChan  chan LogEntry
	shutdown chan struct{}
	wg       sync.WaitGroup
}

// NewLogger creates a logger with room for maxEntries (floored at 100)
// and starts its background writer goroutine. All components start
// disabled; callers opt components in with SetComponentEnabled.
func NewLogger(maxEntries int) *Logger {
	if maxEntries < 100 {
		maxEntries = 100
	}

	l := &Logger{
		entries:          make([]LogEntry, maxEntries),
		maxEntries:       maxEntries,
		componentEnabled: make(map[Component]bool),
		minLevel:         LogLevelInfo,
		logChan:          make(chan LogEntry, 1000),
		shutdown:         make(chan struct{}),
	}

	l.wg.Add(1)
	go l.run()

	return l
}

// run drains logChan into the circular buffer until Shutdown closes
// the shutdown channel, at which point it flushes whatever remains.
func (l *Logger) run() {
	defer l.wg.Done()
	for {
		select {
		case entry := <-l.logChan:
			l.store(entry)
		case <-l.shutdown:
			for {
				select {
				case entry := <-l.logChan:
					l.store(entry)
				default:
					return
				}
			}
		}
	}
}

func (l *Logger) store(entry LogEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries[l.writeIndex] = entry
	l.writeIndex = (l.writeIndex + 1) % l.maxEntries
	if l.entryCount < l.maxEntries {
		l.entryCount++
	}
}

// Log records a message for component if that component is enabled and
// level clears the logger's minimum level. A full logChan drops the
// entry rather than block the caller.
func (l *Logger) Log(component Component, level LogLevel, message string, data map[string]interface{}) {
	if !l.IsComponentEnabled(component) || level > l.GetMinLevel() {
		return
	}

	select {
	case l.logChan <- LogEntry{Timestamp: time.Now(), Component: component, Level: level, Message: message, Data: data}:
	default:
	}
}

// Logf is Log with fmt.Sprintf-style formatting.
func (l *Logger) Logf(component Component, level LogLevel, format string, args ...interface{}) {
	l.Log(component, level, fmt.Sprintf(format, args...), nil)
}

// For returns a ComponentLogger bound to component, so a subsystem can
// hold a small value that already knows who it is instead of repeating
// its Component at every call site. Safe to call on a nil *Logger —
// the returned ComponentLogger is then a no-op, letting callers skip a
// "logger != nil" check wherever logging is optional.
func (l *Logger) For(component Component) ComponentLogger {
	return ComponentLogger{logger: l, component: component}
}

// GetEntries returns a copy of all buffered entries, oldest first.
func (l *Logger) GetEntries() []LogEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.entryCount == 0 {
		return []LogEntry{}
	}

	entries := make([]LogEntry, l.entryCount)
	if l.entryCount < l.maxEntries {
		copy(entries, l.entries[:l.entryCount])
		return entries
	}
	for i := 0; i < l.entryCount; i++ {
		entries[i] = l.entries[(l.writeIndex+i)%l.maxEntries]
	}
	return entries
}

// GetRecentEntries returns at most the last count entries.
func (l *Logger) GetRecentEntries(count int) []LogEntry {
	all := l.GetEntries()
	if count >= len(all) {
		return all
	}
	return all[len(all)-count:]
}

// Clear empties the circular buffer without reallocating it.
func (l *Logger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entryCount = 0
	l.writeIndex = 0
}

// SetComponentEnabled toggles whether component's log calls are kept.
func (l *Logger) SetComponentEnabled(component Component, enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.componentEnabled[component] = enabled
}

// IsComponentEnabled reports whether component is currently enabled.
func (l *Logger) IsComponentEnabled(component Component) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.componentEnabled[component]
}

// SetMinLevel sets the floor below which entries are discarded.
func (l *Logger) SetMinLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minLevel = level
}

// GetMinLevel returns the current minimum level.
func (l *Logger) GetMinLevel() LogLevel {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.minLevel
}

// Shutdown stops the writer goroutine once logChan has been drained.
func (l *Logger) Shutdown() {
	close(l.shutdown)
	l.wg.Wait()
}

// ComponentLogger is a Logger bound to one Component, handed out by
// Logger.For so a subsystem can log through a plain value instead of
// naming its component and nil-checking the logger at every call.
type ComponentLogger struct {
	logger    *Logger
	component Component
}

// Log records a message under the bound component. A zero-value
// ComponentLogger (nil logger) is a no-op.
func (cl ComponentLogger) Log(level LogLevel, message string, data map[string]interface{}) {
	if cl.logger == nil {
		return
	}
	cl.logger.Log(cl.component, level, message, data)
}

// Logf is Log with fmt.Sprintf-style formatting.
func (cl ComponentLogger) Logf(level LogLevel, format string, args ...interface{}) {
	if cl.logger == nil {
		return
	}
	cl.logger.Log(cl.component, level, fmt.Sprintf(format, args...), nil)
}
