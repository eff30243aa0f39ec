// Package diff implements the recursive structure-aware comparison of two
// decoded configuration trees.
//
// Trees are the native Go shapes produced by the decoders in pkg/parsers:
// map[string]any for mappings, []any for sequences, and nil, bool, int64,
// float64 or string for scalars. The engine never mutates its inputs and
// never fails; it reports every difference as a flat, deterministically
// ordered list of models.ChangeEntry records.
package diff

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/sdejongh/configdiff/pkg/logging"
	"github.com/sdejongh/configdiff/pkg/models"
)

// valueKind is the dynamic type tag used for the type-mismatch check.
// Integer and float are deliberately distinct: 10 vs 10.0 is reported as a
// type change even though the two are numerically equal.
type valueKind int

const (
	kindNull valueKind = iota
	kindBool
	kindInt
	kindFloat
	kindString
	kindMapping
	kindList
	kindOther
)

func kindOf(v any) valueKind {
	switch v.(type) {
	case nil:
		return kindNull
	case bool:
		return kindBool
	case int64:
		return kindInt
	case float64:
		return kindFloat
	case string:
		return kindString
	case map[string]any:
		return kindMapping
	case []any:
		return kindList
	default:
		return kindOther
	}
}

// Compare walks two decoded config trees and returns every difference.
//
// ignoreOrder switches list comparison to an order-insensitive mode: both
// sides are sorted (on private copies) by a canonical string key before the
// positional walk. metadata is attached to the result unmodified.
//
// For a fixed pair of inputs and a fixed ignoreOrder flag the entry order
// is identical across runs: mapping keys are processed in sorted order and
// list elements by index, so no map iteration order leaks into the output.
func Compare(before, after map[string]any, ignoreOrder bool, metadata map[string]any) *models.DiffResult {
	logger := logging.GetLogger("diff")
	logger.Debug().Bool("ignore_order", ignoreOrder).Msg("starting comparison")

	entries := walk(before, after, "", ignoreOrder)
	if metadata == nil {
		metadata = map[string]any{}
	}

	logger.Debug().Int("changes", len(entries)).Msg("comparison finished")
	return &models.DiffResult{Entries: entries, Metadata: metadata}
}

// walk dispatches on the type tags of both sides. A tag mismatch always
// wins over structural recursion: a mapping compared to a list yields one
// type_changed entry, never a key-by-key diff.
func walk(before, after any, path string, ignoreOrder bool) []models.ChangeEntry {
	bk, ak := kindOf(before), kindOf(after)
	if bk != ak || (bk == kindOther && reflect.TypeOf(before) != reflect.TypeOf(after)) {
		return []models.ChangeEntry{{
			Path:     path,
			Kind:     models.KindTypeChanged,
			OldValue: before,
			NewValue: after,
		}}
	}

	switch bk {
	case kindMapping:
		return walkMappings(before.(map[string]any), after.(map[string]any), path, ignoreOrder)
	case kindList:
		return walkLists(before.([]any), after.([]any), path, ignoreOrder)
	}

	if !scalarEqual(before, after) {
		return []models.ChangeEntry{{
			Path:     path,
			Kind:     models.KindModified,
			OldValue: before,
			NewValue: after,
		}}
	}

	return nil
}

// walkMappings compares two mappings over the sorted union of their keys.
// Keys present on one side only are reported as a single added or removed
// entry for the whole subtree, without expansion.
func walkMappings(before, after map[string]any, path string, ignoreOrder bool) []models.ChangeEntry {
	keys := unionKeys(before, after)

	var entries []models.ChangeEntry
	for _, key := range keys {
		childPath := key
		if path != "" {
			childPath = path + "." + key
		}

		oldValue, inBefore := before[key]
		newValue, inAfter := after[key]

		switch {
		case !inBefore:
			entries = append(entries, models.ChangeEntry{
				Path:     childPath,
				Kind:     models.KindAdded,
				NewValue: newValue,
			})
		case !inAfter:
			entries = append(entries, models.ChangeEntry{
				Path:     childPath,
				Kind:     models.KindRemoved,
				OldValue: oldValue,
			})
		default:
			entries = append(entries, walk(oldValue, newValue, childPath, ignoreOrder)...)
		}
	}

	return entries
}

// walkLists compares two lists index by index up to the longer length.
// This is positional, not content-aware: inserting an element at the front
// shifts every later index and reports each shifted element as modified.
// That is a documented trade-off, not an oversight.
func walkLists(before, after []any, path string, ignoreOrder bool) []models.ChangeEntry {
	if ignoreOrder {
		before = sortedCopy(before)
		after = sortedCopy(after)
	}

	maxLen := len(before)
	if len(after) > maxLen {
		maxLen = len(after)
	}

	var entries []models.ChangeEntry
	for i := 0; i < maxLen; i++ {
		childPath := path + "[" + strconv.Itoa(i) + "]"

		switch {
		case i >= len(before):
			entries = append(entries, models.ChangeEntry{
				Path:     childPath,
				Kind:     models.KindAdded,
				NewValue: after[i],
			})
		case i >= len(after):
			entries = append(entries, models.ChangeEntry{
				Path:     childPath,
				Kind:     models.KindRemoved,
				OldValue: before[i],
			})
		default:
			entries = append(entries, walk(before[i], after[i], childPath, ignoreOrder)...)
		}
	}

	return entries
}

// unionKeys returns the sorted union of the keys of both mappings
func unionKeys(before, after map[string]any) []string {
	seen := make(map[string]struct{}, len(before)+len(after))
	keys := make([]string, 0, len(before)+len(after))

	for key := range before {
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	for key := range after {
		if _, ok := seen[key]; !ok {
			keys = append(keys, key)
		}
	}

	sort.Strings(keys)
	return keys
}

// sortedCopy returns a stable-sorted copy of list, leaving the caller's
// slice untouched. Sorting by the canonical string form gives a
// deterministic order for heterogeneous element types without assuming any
// semantic ordering between, say, a mapping and a scalar.
func sortedCopy(list []any) []any {
	sorted := append([]any(nil), list...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sortKey(sorted[i]) < sortKey(sorted[j])
	})
	return sorted
}

// sortKey produces the canonical string form of an element. fmt prints map
// contents in sorted key order, so the key is deterministic even for
// nested containers.
func sortKey(v any) string {
	return fmt.Sprintf("%v", v)
}

// scalarEqual compares two scalars of the same type tag
func scalarEqual(before, after any) bool {
	switch b := before.(type) {
	case nil:
		return true
	case bool:
		return b == after.(bool)
	case int64:
		return b == after.(int64)
	case float64:
		return b == after.(float64)
	case string:
		return b == after.(string)
	default:
		// Decoder-specific scalars (e.g. TOML datetimes) fall back to
		// deep equality.
		return reflect.DeepEqual(before, after)
	}
}
