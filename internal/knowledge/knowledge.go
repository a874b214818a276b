// Package knowledge holds the campus facility directory the responder
// answers location and opening-hours questions from.
package knowledge

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// minPartialToken is the shortest captured token allowed to match as a
// fragment of a longer facility term ("librar" -> "library").
const minPartialToken = 4

// Base is an immutable, ordered facility directory.
type Base struct {
	facilities []Facility
	index      map[string]int
}

// New validates the given facilities and returns a Base holding a private
// copy of them. Facility order is preserved.
func New(facilities []Facility) (*Base, error) {
	b := &Base{
		facilities: make([]Facility, 0, len(facilities)),
		index:      make(map[string]int, len(facilities)),
	}
	for i, f := range facilities {
		if err := validateFacility(f); err != nil {
			return nil, fmt.Errorf("facility %d (%q): %w", i, f.Key, err)
		}
		if _, dup := b.index[f.Key]; dup {
			return nil, fmt.Errorf("facility %d: duplicate key %q", i, f.Key)
		}
		b.index[f.Key] = len(b.facilities)
		b.facilities = append(b.facilities, cloneFacility(f))
	}
	if len(b.facilities) == 0 {
		return nil, fmt.Errorf("knowledge base has no facilities")
	}
	return b, nil
}

// Default returns the built-in campus directory.
func Default() *Base {
	b, err := New(defaultFacilities)
	if err != nil {
		panic(fmt.Sprintf("knowledge: invalid built-in facilities: %v", err))
	}
	return b
}

func validateFacility(f Facility) error {
	if f.Key == "" {
		return fmt.Errorf("key is required")
	}
	if f.Key != strings.ToLower(strings.TrimSpace(f.Key)) {
		return fmt.Errorf("key must be lowercase without surrounding spaces")
	}
	for _, a := range f.Aliases {
		if a == "" || a != strings.ToLower(strings.TrimSpace(a)) {
			return fmt.Errorf("alias %q must be non-empty and lowercase", a)
		}
	}
	if len(f.Responses) == 0 {
		return fmt.Errorf("at least one response is required")
	}
	for j, r := range f.Responses {
		if strings.TrimSpace(r) == "" {
			return fmt.Errorf("response %d is empty", j)
		}
	}
	return nil
}

func cloneFacility(f Facility) Facility {
	f.Aliases = append([]string(nil), f.Aliases...)
	f.Responses = append([]string(nil), f.Responses...)
	return f
}

// Len returns the number of facilities.
func (b *Base) Len() int { return len(b.facilities) }

// Facilities returns a copy of the facilities in table order.
func (b *Base) Facilities() []Facility {
	out := make([]Facility, len(b.facilities))
	for i, f := range b.facilities {
		out[i] = cloneFacility(f)
	}
	return out
}

// Get returns the facility with the exact key.
func (b *Base) Get(key string) (Facility, bool) {
	i, ok := b.index[key]
	if !ok {
		return Facility{}, false
	}
	return cloneFacility(b.facilities[i]), true
}

// Resolve maps a token captured from a directed query ("where is the X")
// to a facility. A term matches when it occurs inside the token
// ("coffee shop" -> coffee) or, for tokens of at least four characters,
// when the token occurs inside the term ("librar" -> library). Facilities
// are tried in table order, key before aliases.
func (b *Base) Resolve(token string) (Facility, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return Facility{}, false
	}
	for _, f := range b.facilities {
		for _, term := range f.Terms() {
			if strings.Contains(token, term) {
				return cloneFacility(f), true
			}
			if len(token) >= minPartialToken && strings.Contains(term, token) {
				return cloneFacility(f), true
			}
		}
	}
	return Facility{}, false
}

// FindIn returns the first facility, in table order, whose key or one of
// whose aliases occurs anywhere in text. text is expected lowercase.
func (b *Base) FindIn(text string) (Facility, bool) {
	for _, f := range b.facilities {
		for _, term := range f.Terms() {
			if strings.Contains(text, term) {
				return cloneFacility(f), true
			}
		}
	}
	return Facility{}, false
}

// HoursAnswer is the reply to "when does X open/close". It is empty when
// the facility has no hours on record.
func HoursAnswer(f Facility) string {
	hours := strings.TrimSpace(f.Hours)
	if hours == "" {
		return ""
	}
	if startsWithDigit(hours) {
		return fmt.Sprintf("The %s is open from %s.", f.DisplayName(), hours)
	}
	return fmt.Sprintf("The %s is %s.", f.DisplayName(), lowerFirst(hours))
}

// Summary assembles a one-paragraph description from the structured
// fields: location, hours and details.
func Summary(f Facility) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The %s is located in %s.", f.DisplayName(), f.Location)
	if h := HoursAnswer(f); h != "" {
		b.WriteString(" ")
		b.WriteString(strings.Replace(h, "The "+f.DisplayName()+" is", "It's", 1))
	}
	if f.Details != "" {
		b.WriteString(" ")
		b.WriteString(f.Details)
	}
	return b.String()
}

func startsWithDigit(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsDigit(r)
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
