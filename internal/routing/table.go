package routing

import (
	"fmt"
	"net/url"
	"strings"
)

// Table is an ordered collection of rules indexed by endpoint name. It is
// assembled single-threaded before serving, then frozen; a frozen table is
// immutable and safe for unsynchronized concurrent reads.
type Table struct {
	rules  []*compiledRule
	index  map[string][]*compiledRule
	frozen bool
}

// NewTable creates a Table from the given rules. The returned table is not
// frozen; callers freeze it once assembly is complete.
func NewTable(rules ...Rule) (*Table, error) {
	t := &Table{
		index: make(map[string][]*compiledRule),
	}
	for _, r := range rules {
		if err := t.Add(r); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Add registers a rule. Two rules may share an endpoint only if their method
// sets do not overlap, so that a (endpoint, method) pair always resolves to
// one pattern.
func (t *Table) Add(r Rule) error {
	if t.frozen {
		return fmt.Errorf("%w: cannot add rule for endpoint %q", ErrFrozenTable, r.Endpoint)
	}

	cr, err := compileRule(r)
	if err != nil {
		return err
	}

	for _, existing := range t.index[r.Endpoint] {
		if methodsOverlap(existing, cr) {
			return fmt.Errorf("%w: %q", ErrDuplicateEndpoint, r.Endpoint)
		}
	}

	t.rules = append(t.rules, cr)
	t.index[r.Endpoint] = append(t.index[r.Endpoint], cr)
	return nil
}

// Freeze seals the table. Add returns ErrFrozenTable afterwards.
func (t *Table) Freeze() {
	t.frozen = true
}

// Frozen reports whether the table has been sealed.
func (t *Table) Frozen() bool {
	return t.frozen
}

// Len returns the number of rules in the table.
func (t *Table) Len() int {
	return len(t.rules)
}

// Rules returns a copy of every rule, in registration order.
func (t *Table) Rules() []Rule {
	rules := make([]Rule, 0, len(t.rules))
	for _, cr := range t.rules {
		rules = append(rules, cr.rule.Clone())
	}
	return rules
}

// Build produces the relative path for an endpoint by substituting values
// into the first rule matching the endpoint name and method hint. Values not
// consumed by path parameters are appended as query parameters, sorted by
// key. All failures are reported as a *BuildError.
func (t *Table) Build(endpoint string, values map[string]string, method string) (string, error) {
	candidates, ok := t.index[endpoint]
	if !ok {
		return "", &BuildError{Endpoint: endpoint, Method: method, Err: ErrEndpointNotFound}
	}

	var lastErr error
	for _, cr := range candidates {
		if !cr.allowsMethod(method) {
			lastErr = ErrMethodNotAllowed
			continue
		}

		path, err := cr.build(values)
		if err != nil {
			lastErr = err
			continue
		}
		return path, nil
	}

	return "", &BuildError{Endpoint: endpoint, Method: method, Err: lastErr}
}

// build substitutes values into the rule's segments and encodes leftovers as
// a query string.
func (cr *compiledRule) build(values map[string]string) (string, error) {
	var sb strings.Builder
	used := make(map[string]bool, len(cr.segments))

	for _, seg := range cr.segments {
		sb.WriteByte('/')
		if seg.param == "" {
			sb.WriteString(seg.literal)
			continue
		}

		v, ok := values[seg.param]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrMissingValue, seg.param)
		}
		sb.WriteString(url.PathEscape(v))
		used[seg.param] = true
	}

	if len(values) > len(used) {
		query := url.Values{}
		for k, v := range values {
			if !used[k] {
				query.Set(k, v)
			}
		}
		sb.WriteByte('?')
		sb.WriteString(query.Encode())
	}

	return sb.String(), nil
}

// Match resolves a concrete request path to an endpoint name, extracting
// parameter values. First matching rule wins, in registration order. The ok
// result is false when no rule matches.
func (t *Table) Match(method, path string) (endpoint string, params map[string]string, ok bool) {
	trimmed := strings.TrimPrefix(path, "/")
	var parts []string
	if trimmed != "" || path == "/" {
		parts = strings.Split(trimmed, "/")
	}

	for _, cr := range t.rules {
		if !cr.allowsMethod(method) {
			continue
		}
		if p, matched := cr.match(parts); matched {
			return cr.rule.Endpoint, p, true
		}
	}
	return "", nil, false
}

// match compares concrete path parts against the rule's segments.
func (cr *compiledRule) match(parts []string) (map[string]string, bool) {
	if len(parts) != len(cr.segments) {
		return nil, false
	}

	var params map[string]string
	for i, seg := range cr.segments {
		if seg.param == "" {
			if parts[i] != seg.literal {
				return nil, false
			}
			continue
		}

		v, err := url.PathUnescape(parts[i])
		if err != nil {
			v = parts[i]
		}
		if params == nil {
			params = make(map[string]string, len(cr.segments))
		}
		params[seg.param] = v
	}
	return params, true
}

// methodsOverlap reports whether two rules could answer the same
// (endpoint, method) pair.
func methodsOverlap(a, b *compiledRule) bool {
	if a.methods == nil || b.methods == nil {
		return true
	}
	for m := range a.methods {
		if b.methods[m] {
			return true
		}
	}
	return false
}
