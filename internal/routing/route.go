// Package routing provides a handler-free routing table supporting reverse
// URL building by endpoint name. Tables hold only (pattern, endpoint) pairs,
// so nothing can ever be dispatched through one.
package routing

import (
	"fmt"
	"strings"
)

// Rule is a single (pattern, endpoint) pair. Patterns are slash-separated
// templates where a `:name` segment is a named parameter placeholder:
//
//	/records/:id
//	/communities/:id/members
//
// An empty Methods slice means the rule answers for any method hint.
type Rule struct {
	Pattern  string
	Endpoint string
	Methods  []string
}

// String returns a string representation of a Rule.
func (r Rule) String() string {
	if len(r.Methods) == 0 {
		return fmt.Sprintf("Rule{Pattern: %s, Endpoint: %s}", r.Pattern, r.Endpoint)
	}
	return fmt.Sprintf("Rule{Pattern: %s, Endpoint: %s, Methods: %v}", r.Pattern, r.Endpoint, r.Methods)
}

// Clone returns a deep copy of the Rule.
func (r Rule) Clone() Rule {
	clone := Rule{
		Pattern:  r.Pattern,
		Endpoint: r.Endpoint,
	}
	if r.Methods != nil {
		clone.Methods = make([]string, len(r.Methods))
		copy(clone.Methods, r.Methods)
	}
	return clone
}

// segment is one compiled piece of a pattern: either a literal or a
// named parameter (param != "").
type segment struct {
	literal string
	param   string
}

// compiledRule pairs a Rule with its parsed segments.
type compiledRule struct {
	rule     Rule
	segments []segment
	methods  map[string]bool // uppercased; nil means any
}

// compilePattern parses a pattern into segments. Patterns must begin with a
// slash, parameter names must be non-empty and unique within the pattern.
func compilePattern(pattern string) ([]segment, error) {
	if pattern == "" || pattern[0] != '/' {
		return nil, fmt.Errorf("%w: %q must begin with '/'", ErrInvalidPattern, pattern)
	}

	parts := strings.Split(pattern[1:], "/")
	segments := make([]segment, 0, len(parts))
	seen := make(map[string]bool, len(parts))

	for _, part := range parts {
		if !strings.HasPrefix(part, ":") {
			segments = append(segments, segment{literal: part})
			continue
		}

		name := part[1:]
		if name == "" {
			return nil, fmt.Errorf("%w: %q has an unnamed parameter", ErrInvalidPattern, pattern)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: %q repeats parameter %q", ErrInvalidPattern, pattern, name)
		}
		seen[name] = true
		segments = append(segments, segment{param: name})
	}

	return segments, nil
}

// compileRule validates and compiles a Rule for table storage.
func compileRule(r Rule) (*compiledRule, error) {
	if r.Endpoint == "" {
		return nil, fmt.Errorf("%w: rule for pattern %q has an empty endpoint", ErrInvalidPattern, r.Pattern)
	}

	segments, err := compilePattern(r.Pattern)
	if err != nil {
		return nil, err
	}

	cr := &compiledRule{
		rule:     r.Clone(),
		segments: segments,
	}

	if len(r.Methods) > 0 {
		cr.methods = make(map[string]bool, len(r.Methods))
		for _, m := range r.Methods {
			cr.methods[strings.ToUpper(m)] = true
		}
	}

	return cr, nil
}

// allowsMethod reports whether the rule answers for the given method hint.
// An empty hint matches any rule; a rule with no methods matches any hint.
func (cr *compiledRule) allowsMethod(method string) bool {
	if method == "" || cr.methods == nil {
		return true
	}
	return cr.methods[strings.ToUpper(method)]
}
