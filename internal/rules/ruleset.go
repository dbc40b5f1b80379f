package rules

import (
	"bufio"
	"os"
	"strings"

	"github.com/rnozawa/fanbox-dl/internal/model"
)

// RuleSet holds the include (override) and exclude patterns, in file
// order. The zero value skips nothing.
type RuleSet struct {
	Include []string
	Exclude []string
}

// Load reads a rule file. A missing file yields an empty rule set and a
// nil error; other read failures are reported.
func Load(path string) (*RuleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &RuleSet{}, nil
		}
		return nil, err
	}
	defer f.Close()

	rs := &RuleSet{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if rest, ok := strings.CutPrefix(line, "!"); ok {
			rs.Include = append(rs.Include, strings.TrimSpace(rest))
			continue
		}
		rs.Exclude = append(rs.Exclude, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return rs, nil
}

// Match reports whether a single identifier matches a pattern.
func Match(pattern, s string) bool {
	switch {
	case pattern == "*":
		return true
	case strings.HasPrefix(pattern, "*") && strings.HasSuffix(pattern, "*"):
		return strings.Contains(s, pattern[1:len(pattern)-1])
	case strings.HasPrefix(pattern, "*"):
		return strings.HasSuffix(s, pattern[1:])
	case strings.HasSuffix(pattern, "*"):
		return strings.HasPrefix(s, pattern[:len(pattern)-1])
	default:
		return s == pattern
	}
}

// Skip decides whether the artist is excluded from processing.
//
// Includes override everything: one matching include pattern keeps the
// artist no matter what the exclude list says. After that, a literal "*"
// exclude skips every remaining artist, then individual exclude patterns
// apply.
func (rs *RuleSet) Skip(artist *model.Artist) bool {
	ids := artist.Identifiers()

	for _, pattern := range rs.Include {
		for _, id := range ids {
			if Match(pattern, id) {
				return false
			}
		}
	}

	for _, pattern := range rs.Exclude {
		if pattern == "*" {
			return true
		}
	}

	for _, pattern := range rs.Exclude {
		for _, id := range ids {
			if Match(pattern, id) {
				return true
			}
		}
	}

	return false
}
