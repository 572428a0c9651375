package intent

import (
	"testing"

	"github.com/rmaldonado/sapo/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		action   domain.Action
		note     string
	}{
		{"digit complete", "1", domain.ActionComplete, ""},
		{"keyword complete", "listo", domain.ActionComplete, ""},
		{"complete with punctuation", "listo!", domain.ActionComplete, ""},
		{"uppercase", "HECHO", domain.ActionComplete, ""},
		{"ok", "ok", domain.ActionComplete, ""},
		{"completado", "completado", domain.ActionComplete, ""},
		{"complete with note", "1 me costó pero salió", domain.ActionComplete, "me costó pero salió"},
		{"digit postpone", "2", domain.ActionPostpone, ""},
		{"postpone with note", "2 en 10 minutos", domain.ActionPostpone, "en 10 minutos"},
		{"luego", "luego", domain.ActionPostpone, ""},
		{"despues", "despues te aviso", domain.ActionPostpone, "te aviso"},
		{"digit skip", "3", domain.ActionSkip, ""},
		{"no", "no", domain.ActionSkip, ""},
		{"no puedo", "no puedo hoy", domain.ActionSkip, "puedo hoy"},
		{"saltar", "saltar", domain.ActionSkip, ""},
		{"leading whitespace", "  listo  ", domain.ActionComplete, ""},
		{"unrecognized", "hola que tal", domain.ActionNone, ""},
		{"empty", "", domain.ActionNone, ""},
		{"whitespace only", "   ", domain.ActionNone, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, note := Classify(tt.raw)
			assert.Equal(t, tt.action, action)
			assert.Equal(t, tt.note, note)
		})
	}
}

func TestClassify_TriggerSetsDisjoint(t *testing.T) {
	seen := map[string]domain.Action{}
	for _, r := range rules {
		for _, trigger := range r.triggers {
			if prev, ok := seen[trigger]; ok {
				t.Fatalf("trigger %q appears for both %s and %s", trigger, prev, r.action)
			}
			seen[trigger] = r.action
		}
	}
}
