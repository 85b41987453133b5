// Package moderation implements the keyword gate every user-authored
// text passes through before it may mutate feed or chat state.
package moderation

import "strings"

// Surface is the context a text was submitted in. The public feed and
// private conversations carry different keyword lists and different
// rejection severities.
type Surface int

const (
	SurfaceFeed Surface = iota
	SurfaceConversation
)

func (s Surface) String() string {
	switch s {
	case SurfaceFeed:
		return "feed"
	case SurfaceConversation:
		return "conversation"
	default:
		return "unknown"
	}
}

type Verdict int

const (
	Allowed Verdict = iota
	Rejected
)

func (v Verdict) String() string {
	if v == Rejected {
		return "rejected"
	}
	return "allowed"
}

// RuleSet is a named keyword list owned by one surface. Keywords are
// matched as plain substrings of the lowercased text, so a benign word
// containing a listed substring is rejected too. That over-block is the
// documented behavior, not a bug to fix here.
type RuleSet struct {
	Name     string
	Keywords []string
}

// Built-in rule sets. Config may override either list.
var (
	FeedForbiddenTopics = RuleSet{
		Name:     "feed_forbidden_topics",
		Keywords: []string{"война", "политика", "казино", "18+", "ставки"},
	}
	ConversationExtremeContent = RuleSet{
		Name:     "conversation_extreme_content",
		Keywords: []string{"извращ", "порн", "секс втроем", "групповой"},
	}
)

type Engine struct {
	rules map[Surface]RuleSet
}

// New builds an engine with explicit rule sets per surface.
// Tests and config overrides inject alternate lists through here.
func New(feed, conversation RuleSet) *Engine {
	return &Engine{rules: map[Surface]RuleSet{
		SurfaceFeed:         feed,
		SurfaceConversation: conversation,
	}}
}

func Default() *Engine {
	return New(FeedForbiddenTopics, ConversationExtremeContent)
}

// Classify reports whether text is allowed on the given surface.
// Matching is case-insensitive substring containment; the first hit
// short-circuits. Deterministic and side-effect free.
func (e *Engine) Classify(text string, surface Surface) Verdict {
	lower := strings.ToLower(text)
	for _, word := range e.rules[surface].Keywords {
		if strings.Contains(lower, word) {
			return Rejected
		}
	}
	return Allowed
}

// Rules returns the rule set bound to a surface.
func (e *Engine) Rules(surface Surface) RuleSet {
	return e.rules[surface]
}
