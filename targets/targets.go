// Package targets lists the languages bridgegen emits bindings for,
// and parses target selections from the command line.
package targets

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arbovm/levenshtein"
)

type Target string

const (
	TypeScript Target = "ts"
	JavaScript Target = "js"
	Java       Target = "java"
	ObjectiveC Target = "objc"
	CHeader    Target = "cpp"
)

const idSeparator = ","

// All lists every supported target, in generation order
var All = []Target{
	TypeScript,
	JavaScript,
	Java,
	ObjectiveC,
	CHeader,
}

type info struct {
	name      string
	extension string
}

var infos = map[Target]info{
	TypeScript: {"TypeScript", ".d.ts"},
	JavaScript: {"JavaScript", ".js"},
	Java:       {"Java", ".java"},
	ObjectiveC: {"Objective-C", ".h"},
	CHeader:    {"C/C++", ".hpp"},
}

// Valid returns true for supported targets
func (t Target) Valid() bool {
	_, ok := infos[t]
	return ok
}

// Name is the human-readable language name
func (t Target) Name() string {
	return infos[t].name
}

// Filename is the basename the target is written to,
// e.g. "JsBridge.d.ts" for TypeScript.
func (t Target) Filename(bridge string) string {
	return bridge + infos[t].extension
}

// SupportedList is the comma-separated list of supported ids
func SupportedList() string {
	return Join(All)
}

// Join formats targets the way --lang expects them
func Join(ts []Target) string {
	var ids []string
	for _, t := range ts {
		ids = append(ids, string(t))
	}
	return strings.Join(ids, idSeparator)
}

// UnsupportedTargetError is returned when --lang names targets we
// don't know about.
type UnsupportedTargetError struct {
	Invalid []string
}

func (e *UnsupportedTargetError) Error() string {
	msg := fmt.Sprintf("unsupported target(s): %s (supported: %s)", strings.Join(e.Invalid, idSeparator), SupportedList())
	var hints []string
	for _, id := range e.Invalid {
		if s := Suggest(id); s != "" {
			hints = append(hints, fmt.Sprintf("%s -> %s", id, s))
		}
	}
	if len(hints) > 0 {
		msg += fmt.Sprintf("; did you mean %s?", strings.Join(hints, ", "))
	}
	return msg
}

// Select resolves --lang and --all into a target set. --all, or an
// empty --lang, selects every target. Duplicates are dropped and the
// result is in generation order.
func Select(lang string, all bool) ([]Target, error) {
	if all || strings.TrimSpace(lang) == "" {
		return append([]Target(nil), All...), nil
	}

	requested := make(map[Target]bool)
	var invalid []string
	for _, raw := range strings.Split(lang, idSeparator) {
		id := strings.TrimSpace(raw)
		if id == "" {
			continue
		}
		t := Target(id)
		if !t.Valid() {
			invalid = append(invalid, id)
			continue
		}
		requested[t] = true
	}

	if len(invalid) > 0 {
		return nil, &UnsupportedTargetError{Invalid: invalid}
	}

	var res []Target
	for _, t := range All {
		if requested[t] {
			res = append(res, t)
		}
	}
	if len(res) == 0 {
		return append([]Target(nil), All...), nil
	}
	return res, nil
}

const maxSuggestDistance = 2

// Suggest returns the closest supported id, or "" if nothing is close
func Suggest(id string) string {
	type candidate struct {
		t    Target
		dist int
	}
	var candidates []candidate
	for _, t := range All {
		d := levenshtein.Distance(strings.ToLower(id), string(t))
		if d <= maxSuggestDistance && d < len(id) {
			candidates = append(candidates, candidate{t, d})
		}
	}
	if len(candidates) == 0 {
		return ""
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})
	return string(candidates[0].t)
}
