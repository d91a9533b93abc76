package diagnostics

import "sync"

// Context is a passive, append-only collector of decode diagnostics. It is
// thread-safe for concurrent writes, which matters for a CLI that fans a
// single large binary out across multiple disassembly workers.
//
// Create one exclusively through New(). Pass it by reference; every worker
// records into the same Context.
type Context struct {
	source  string
	stage   string
	entries []*Entry
	mu      sync.Mutex
}

// New returns a Context for the given input source name, with no entries
// and no current stage.
func New(source string) *Context {
	return &Context{source: source, entries: make([]*Entry, 0)}
}

// SetStage sets the current pipeline stage (e.g. "prefix-scan", "dispatch",
// "finish"). Subsequent entries are tagged with this stage until changed.
func (c *Context) SetStage(name string) {
	c.mu.Lock()
	c.stage = name
	c.mu.Unlock()
}

func (c *Context) Stage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stage
}

// Loc builds a Location rooted at this Context's source.
func (c *Context) Loc(address uint64, offset int64) Location {
	return Loc(c.source, address, offset)
}

func (c *Context) record(severity string, location Location, message string) *Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := &Entry{
		severity: severity,
		stage:    c.stage,
		message:  message,
		location: location,
	}
	c.entries = append(c.entries, entry)
	return entry
}

func (c *Context) Error(location Location, message string) *Entry {
	return c.record(SeverityError, location, message)
}

func (c *Context) Warning(location Location, message string) *Entry {
	return c.record(SeverityWarning, location, message)
}

func (c *Context) Info(location Location, message string) *Entry {
	return c.record(SeverityInfo, location, message)
}

// Entries returns a snapshot of all recorded entries, in insertion order.
func (c *Context) Entries() []*Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// HasErrors reports whether any entry was recorded at SeverityError.
func (c *Context) HasErrors() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.entries {
		if e.severity == SeverityError {
			return true
		}
	}
	return false
}
