// Package ui holds helpers shared by the HTML components.
package ui

import (
	"slices"
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
)

// MergeClasses joins class values and resolves conflicting Tailwind
// utilities so the later class wins ("p-2", "p-4" gives "p-4").
//
// Accepted values are the ones templ.Classes understands (string, []string,
// map[string]bool, templ.KV pairs, templ.CSSClasses) plus []any, which is
// flattened. nil and bool values are skipped so conditional expressions
// like `active && "bg-gray-800"` translate to plain Go arguments.
//
// The result keeps input order: each surviving class sits at its last
// occurrence.
func MergeClasses(values ...any) string {
	flat := flatten(make([]any, 0, len(values)), values)
	if len(flat) == 0 {
		return ""
	}
	joined := templ.Classes(flat...).String()
	return inInputOrder(strings.Fields(joined), strings.Fields(twmerge.Merge(joined)))
}

// inInputOrder returns the tokens present in kept, ordered by their last
// position in tokens. twmerge only decides which classes survive; its
// output order is not stable between processes.
func inInputOrder(tokens, kept []string) string {
	survivors := make(map[string]bool, len(kept))
	for _, k := range kept {
		survivors[k] = true
	}

	out := make([]string, 0, len(kept))
	for i := len(tokens) - 1; i >= 0; i-- {
		t := tokens[i]
		if !survivors[t] {
			continue
		}
		out = append(out, t)
		delete(survivors, t)
	}
	slices.Reverse(out)
	return strings.Join(out, " ")
}

func flatten(dst []any, values []any) []any {
	for _, v := range values {
		switch c := v.(type) {
		case nil, bool:
			continue
		case []any:
			dst = flatten(dst, c)
		case string:
			if c != "" {
				dst = append(dst, c)
			}
		default:
			dst = append(dst, c)
		}
	}
	return dst
}

// When returns class if cond holds and an empty string otherwise.
func When(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}
