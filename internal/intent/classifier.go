// Package intent maps inbound free-text replies to a closed action
// vocabulary. Classification is a single pass over an ordered rule table;
// the trigger sets are disjoint by construction, which must be preserved
// when adding triggers.
package intent

import (
	"strings"

	"github.com/rmaldonado/sapo/internal/domain"
)

type rule struct {
	action   domain.Action
	triggers []string
}

// Triggers are matched as prefixes: single-word triggers against the first
// whitespace-delimited token (so "listo!" still matches), multi-word
// triggers against the whole lowercased body.
var rules = []rule{
	{domain.ActionComplete, []string{"1", "listo", "hecho", "ok", "completado"}},
	{domain.ActionPostpone, []string{"2", "luego", "tarde", "posponer", "despues"}},
	{domain.ActionSkip, []string{"3", "no", "saltar", "no puedo"}},
}

// Classify maps a raw message body to an action plus the trailing free-text
// note (everything after the first token). An unrecognized body yields
// ActionNone, which callers treat as a no-op rather than an error.
func Classify(raw string) (domain.Action, string) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return domain.ActionNone, ""
	}

	token := trimmed
	note := ""
	if i := strings.IndexAny(trimmed, " \t\n"); i >= 0 {
		token = trimmed[:i]
		note = strings.TrimSpace(trimmed[i:])
	}
	token = strings.ToLower(token)
	body := strings.ToLower(trimmed)

	for _, r := range rules {
		for _, trigger := range r.triggers {
			if strings.Contains(trigger, " ") {
				if strings.HasPrefix(body, trigger) {
					return r.action, note
				}
				continue
			}
			if strings.HasPrefix(token, trigger) {
				return r.action, note
			}
		}
	}
	return domain.ActionNone, ""
}
