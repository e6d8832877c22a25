package walk

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gobwas/glob"
)

// Pattern matches file base names against a glob such as "*.log" or
// "report-??.{csv,txt}". The empty pattern, "*" and "*.*" match every name.
type Pattern struct {
	raw      string
	match    glob.Glob
	foldCase bool
}

// CompilePattern parses a glob. Matching is case-insensitive on Windows and
// macOS, whose default filesystems are.
func CompilePattern(expr string) (*Pattern, error) {
	p := &Pattern{
		raw:      expr,
		foldCase: runtime.GOOS == "darwin" || runtime.GOOS == "windows",
	}

	switch expr {
	case "", "*", "*.*":
		return p, nil
	}

	if p.foldCase {
		expr = strings.ToLower(expr)
	}

	g, err := glob.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid file pattern %q: %w", p.raw, err)
	}

	p.match = g

	return p, nil
}

// Match reports whether name is selected. A nil Pattern matches everything.
func (p *Pattern) Match(name string) bool {
	if p == nil || p.match == nil {
		return true
	}

	if p.foldCase {
		name = strings.ToLower(name)
	}

	return p.match.Match(name)
}

func (p *Pattern) String() string {
	if p == nil || p.raw == "" {
		return "*"
	}

	return p.raw
}
