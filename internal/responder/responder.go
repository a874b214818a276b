// Package responder picks a canned reply for a free-text utterance by
// running it through an ordered list of intent stages: directed facility
// queries, bare facility keywords, then the generic intent rules, with a
// fallback pool when nothing matches.
package responder

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ziadkadry99/campusbot/internal/knowledge"
)

var (
	// "where is the library", "where's the coffee shop"
	wherePattern = regexp.MustCompile(wordStart + `where(?:'s|\s+is|\s+are)?(?:\s+the)?\s+(\w+(?:\s+\w+)?)`)
	// "when does the gym close", "when is the library open and close"
	whenPattern = regexp.MustCompile(wordStart + `when(?:\s+does|\s+do|\s+is)?(?:\s+the)?\s+(\w+(?:\s+\w+)?)\s+(?:open\s+and\s+close|open|close)`)
)

// Match is the outcome of classifying one utterance.
type Match struct {
	Category Category `json:"category"`
	// Facility is the facility key when a facility stage fired.
	Facility string   `json:"facility,omitempty"`
	Reply    string   `json:"reply"`
	Pool     []string `json:"-"`
}

// Responder classifies utterances and selects replies. It is read-only
// after construction and safe for concurrent use when its Chooser is.
type Responder struct {
	kb       *knowledge.Base
	rules    []compiledRule
	fallback []string
	chooser  Chooser
}

// Option configures a Responder.
type Option func(*options)

type options struct {
	chooser  Chooser
	rules    []IntentRule
	fallback []string
}

// WithChooser sets the randomness source used to pick among candidates.
func WithChooser(c Chooser) Option {
	return func(o *options) { o.chooser = c }
}

// WithRules replaces the generic intent table.
func WithRules(rules []IntentRule) Option {
	return func(o *options) { o.rules = cloneRules(rules) }
}

// WithFallback replaces the pool used when nothing matches.
func WithFallback(pool []string) Option {
	return func(o *options) { o.fallback = append([]string(nil), pool...) }
}

// New compiles the rule table against kb. A nil kb uses the built-in
// campus directory. Any invalid rule is reported here; Respond never fails.
func New(kb *knowledge.Base, opts ...Option) (*Responder, error) {
	o := options{
		chooser:  globalChooser{},
		rules:    DefaultRules(),
		fallback: append([]string(nil), DefaultFallback...),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if kb == nil {
		kb = knowledge.Default()
	}
	if o.chooser == nil {
		o.chooser = globalChooser{}
	}
	if len(o.fallback) == 0 {
		return nil, fmt.Errorf("fallback pool is empty")
	}
	if err := checkPool(o.fallback); err != nil {
		return nil, fmt.Errorf("fallback pool: %w", err)
	}

	r := &Responder{
		kb:       kb,
		fallback: o.fallback,
		chooser:  o.chooser,
		rules:    make([]compiledRule, 0, len(o.rules)),
	}
	for _, rule := range o.rules {
		cr, err := compileRule(rule)
		if err != nil {
			return nil, err
		}
		r.rules = append(r.rules, cr)
	}
	return r, nil
}

// MustNew is like New but panics on error.
func MustNew(kb *knowledge.Base, opts ...Option) *Responder {
	r, err := New(kb, opts...)
	if err != nil {
		panic(fmt.Sprintf("responder: %v", err))
	}
	return r
}

// Knowledge returns the facility directory the responder answers from.
func (r *Responder) Knowledge() *knowledge.Base { return r.kb }

// Rules returns a copy of the generic intent table in evaluation order.
func (r *Responder) Rules() []IntentRule {
	out := make([]IntentRule, len(r.rules))
	for i, cr := range r.rules {
		out[i] = cr.rule
	}
	return cloneRules(out)
}

// Fallback returns a copy of the fallback pool.
func (r *Responder) Fallback() []string {
	return append([]string(nil), r.fallback...)
}

// Respond returns a reply for utterance. It never returns an empty string.
func (r *Responder) Respond(utterance string) string {
	return r.Match(utterance).Reply
}

// Match classifies utterance and picks a reply from the winning pool.
func (r *Responder) Match(utterance string) Match {
	text := normalize(utterance)

	if m, ok := r.matchDirected(text); ok {
		return m
	}
	if f, ok := r.kb.FindIn(text); ok {
		return r.pick(CategoryFacilityKeyword, f.Key, f.Responses)
	}
	for _, cr := range r.rules {
		if cr.re.MatchString(text) {
			return r.pick(cr.rule.Category, "", cr.rule.Responses)
		}
	}
	return r.pick(CategoryFallback, "", r.fallback)
}

// matchDirected handles "where is X" and "when does X open/close". A
// captured name that is not in the directory is not a match.
func (r *Responder) matchDirected(text string) (Match, bool) {
	if sm := wherePattern.FindStringSubmatch(text); sm != nil {
		if f, ok := r.resolveCapture(sm[1]); ok {
			return r.pick(CategoryFacilityLocation, f.Key, f.Responses), true
		}
	}
	if sm := whenPattern.FindStringSubmatch(text); sm != nil {
		if f, ok := r.resolveCapture(sm[1]); ok {
			if answer := knowledge.HoursAnswer(f); answer != "" {
				return Match{
					Category: CategoryFacilityHours,
					Facility: f.Key,
					Reply:    answer,
					Pool:     []string{answer},
				}, true
			}
			return r.pick(CategoryFacilityHours, f.Key, f.Responses), true
		}
	}
	return Match{}, false
}

// resolveCapture resolves a captured name, retrying with just its first
// word when a two-word capture such as "admin office" names nothing.
func (r *Responder) resolveCapture(name string) (knowledge.Facility, bool) {
	if f, ok := r.kb.Resolve(name); ok {
		return f, true
	}
	if first, _, found := strings.Cut(name, " "); found {
		return r.kb.Resolve(first)
	}
	return knowledge.Facility{}, false
}

func (r *Responder) pick(cat Category, facility string, pool []string) Match {
	i := r.chooser.IntN(len(pool))
	if i < 0 || i >= len(pool) {
		i = 0
	}
	return Match{
		Category: cat,
		Facility: facility,
		Reply:    pool[i],
		Pool:     append([]string(nil), pool...),
	}
}

// AgentName returns a random assistant name using the responder's Chooser.
func (r *Responder) AgentName() string {
	return RandomAgentName(r.chooser)
}

// RandomAgentName picks one of AgentNames. A nil Chooser uses the shared
// random source.
func RandomAgentName(c Chooser) string {
	if c == nil {
		c = globalChooser{}
	}
	i := c.IntN(len(AgentNames))
	if i < 0 || i >= len(AgentNames) {
		i = 0
	}
	return AgentNames[i]
}

func normalize(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "’", "'"))
}
