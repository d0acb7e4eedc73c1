package jsonpatch

import (
	"reflect"
	"sort"
	"strings"
)

// Op is a single RFC 6902 patch operation.
type Op struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value,omitempty"`
}

// Diff computes the patch that transforms a into b. Both sides should be
// the result of json.Unmarshal into any. Objects diff key by key, in
// sorted order so output is deterministic; arrays and scalars replace
// wholesale. Path is "" for the root document.
func Diff(a, b any, path string) []Op {
	if a == nil && b == nil {
		return nil
	}

	aMap, aIsMap := a.(map[string]any)
	bMap, bIsMap := b.(map[string]any)
	if aIsMap && bIsMap {
		return diffObjects(aMap, bMap, path)
	}

	if reflect.DeepEqual(a, b) {
		return nil
	}
	return []Op{{Op: "replace", Path: path, Value: b}}
}

func diffObjects(a, b map[string]any, path string) []Op {
	keys := make([]string, 0, len(a)+len(b))
	seen := make(map[string]bool, len(a)+len(b))
	for k := range a {
		keys = append(keys, k)
		seen[k] = true
	}
	for k := range b {
		if !seen[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var ops []Op
	for _, k := range keys {
		childPath := path + "/" + escapeKey(k)
		av, inA := a[k]
		bv, inB := b[k]
		switch {
		case !inB:
			ops = append(ops, Op{Op: "remove", Path: childPath})
		case !inA:
			ops = append(ops, Op{Op: "add", Path: childPath, Value: bv})
		default:
			ops = append(ops, Diff(av, bv, childPath)...)
		}
	}
	return ops
}

// escapeKey applies RFC 6901 token escaping.
func escapeKey(k string) string {
	k = strings.ReplaceAll(k, "~", "~0")
	return strings.ReplaceAll(k, "/", "~1")
}
