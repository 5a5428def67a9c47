package element

import "strings"

// InlineStyle is the ordered property map of a style attribute. Setting an
// existing property replaces its value in place, so reapplying the same
// values leaves the serialized form unchanged.
type InlineStyle struct {
	names  []string
	values map[string]string
}

// ParseInlineStyle reads a style attribute value. Declarations without a
// colon are ignored. Values must not contain semicolons.
func ParseInlineStyle(s string) *InlineStyle {
	st := &InlineStyle{values: map[string]string{}}
	for _, decl := range strings.Split(s, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		st.SetProperty(strings.TrimSpace(name), strings.TrimSpace(value))
	}
	return st
}

// SetProperty sets name to value. An empty value removes the property.
func (s *InlineStyle) SetProperty(name, value string) {
	if name == "" {
		return
	}
	if value == "" {
		s.RemoveProperty(name)
		return
	}
	if _, ok := s.values[name]; !ok {
		s.names = append(s.names, name)
	}
	s.values[name] = value
}

// GetPropertyValue returns the value of name, or "".
func (s *InlineStyle) GetPropertyValue(name string) string {
	return s.values[name]
}

// RemoveProperty deletes name.
func (s *InlineStyle) RemoveProperty(name string) {
	if _, ok := s.values[name]; !ok {
		return
	}
	delete(s.values, name)
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			break
		}
	}
}

// Len returns the number of properties.
func (s *InlineStyle) Len() int { return len(s.names) }

// String serializes the map as a style attribute value.
func (s *InlineStyle) String() string {
	var b strings.Builder
	for i, name := range s.names {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(s.values[name])
		b.WriteByte(';')
	}
	return b.String()
}
