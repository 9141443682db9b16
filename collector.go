package finskema

// Collector accumulates issues in evaluation order. It never deduplicates:
// two rules failing on the same path both keep their entry.
//
// A Collector is owned by a single parse call and must not be shared.
type Collector struct {
	issues Issues
}

// Add appends issues as-is.
func (c *Collector) Add(more ...Issue) {
	if len(more) == 0 {
		return
	}
	c.issues = AppendIssues(c.issues, more...)
}

// AddUnder appends issues produced by a child schema, rebasing their paths
// under base ("/" -> base, "/x" -> base+"/x").
func (c *Collector) AddUnder(base string, child Issues) {
	for _, it := range child {
		it.Path = Rebase(base, it.Path)
		c.issues = AppendIssues(c.issues, it)
	}
}

// AddErr records err under path. Issues keep their own paths (rebased under
// path); any other error becomes a parse_error.
func (c *Collector) AddErr(path string, err error) {
	if err == nil {
		return
	}
	if iss, ok := AsIssues(err); ok {
		c.AddUnder(path, iss)
		return
	}
	c.Add(Issue{Path: path, Code: CodeParseError, Message: err.Error(), Cause: err})
}

// Failed reports whether any rule failed.
func (c *Collector) Failed() bool { return len(c.issues) > 0 }

// Len returns the number of collected issues.
func (c *Collector) Len() int { return len(c.issues) }

// Issues returns the collected issues in order.
func (c *Collector) Issues() Issues { return c.issues }

// Err returns the collected Issues as an error, or nil when nothing failed.
func (c *Collector) Err() error {
	if len(c.issues) == 0 {
		return nil
	}
	return c.issues
}
