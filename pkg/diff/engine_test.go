package diff

import (
	"reflect"
	"testing"

	"github.com/sdejongh/configdiff/pkg/models"
)

// ============== Identity ==============

func TestCompareIdentity(t *testing.T) {
	tests := []struct {
		name string
		tree map[string]any
	}{
		{"empty mapping", map[string]any{}},
		{"flat scalars", map[string]any{
			"name":    "app",
			"port":    int64(8080),
			"ratio":   0.5,
			"debug":   true,
			"comment": nil,
		}},
		{"nested mappings", map[string]any{
			"server": map[string]any{
				"tls": map[string]any{"enabled": true},
			},
		}},
		{"mixed-type sequence", map[string]any{
			"items": []any{int64(1), "two", 3.0, nil, map[string]any{"k": "v"}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Compare(tt.tree, tt.tree, false, nil)

			if result.HasChanges() {
				t.Errorf("Compare(X, X) found %d changes, want 0", len(result.Entries))
			}
		})
	}
}

// ============== Kind classification ==============

func TestCompareKinds(t *testing.T) {
	tests := []struct {
		name     string
		before   map[string]any
		after    map[string]any
		wantPath string
		wantKind models.ChangeKind
	}{
		{
			name:     "added key",
			before:   map[string]any{"a": int64(1)},
			after:    map[string]any{"a": int64(1), "b": int64(2)},
			wantPath: "b",
			wantKind: models.KindAdded,
		},
		{
			name:     "removed key",
			before:   map[string]any{"a": int64(1), "b": int64(2)},
			after:    map[string]any{"a": int64(1)},
			wantPath: "b",
			wantKind: models.KindRemoved,
		},
		{
			name:     "modified scalar",
			before:   map[string]any{"a": int64(1)},
			after:    map[string]any{"a": int64(2)},
			wantPath: "a",
			wantKind: models.KindModified,
		},
		{
			name:     "mapping vs scalar",
			before:   map[string]any{"x": map[string]any{"nested": int64(1)}},
			after:    map[string]any{"x": "flat"},
			wantPath: "x",
			wantKind: models.KindTypeChanged,
		},
		{
			name:     "mapping vs list",
			before:   map[string]any{"x": map[string]any{"a": int64(1)}},
			after:    map[string]any{"x": []any{int64(1)}},
			wantPath: "x",
			wantKind: models.KindTypeChanged,
		},
		{
			name:     "string vs integer",
			before:   map[string]any{"x": "42"},
			after:    map[string]any{"x": int64(42)},
			wantPath: "x",
			wantKind: models.KindTypeChanged,
		},
		{
			name:     "integer vs float despite numeric equality",
			before:   map[string]any{"x": int64(10)},
			after:    map[string]any{"x": 10.0},
			wantPath: "x",
			wantKind: models.KindTypeChanged,
		},
		{
			name:     "null vs string",
			before:   map[string]any{"x": nil},
			after:    map[string]any{"x": ""},
			wantPath: "x",
			wantKind: models.KindTypeChanged,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Compare(tt.before, tt.after, false, nil)

			if len(result.Entries) != 1 {
				t.Fatalf("got %d entries, want 1: %+v", len(result.Entries), result.Entries)
			}

			entry := result.Entries[0]
			if entry.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", entry.Path, tt.wantPath)
			}
			if entry.Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", entry.Kind, tt.wantKind)
			}
		})
	}
}

func TestTypeChangePrecedence(t *testing.T) {
	before := map[string]any{"x": map[string]any{"nested": int64(1)}}
	after := map[string]any{"x": "flat"}

	result := Compare(before, after, false, nil)

	if len(result.Entries) != 1 {
		t.Fatalf("got %d entries, want exactly 1 (no recursion into mismatched subtree)", len(result.Entries))
	}

	entry := result.Entries[0]
	if entry.Kind != models.KindTypeChanged {
		t.Errorf("Kind = %q, want %q", entry.Kind, models.KindTypeChanged)
	}
	if !reflect.DeepEqual(entry.OldValue, map[string]any{"nested": int64(1)}) {
		t.Errorf("OldValue = %v, want the whole subtree", entry.OldValue)
	}
	if entry.NewValue != "flat" {
		t.Errorf("NewValue = %v, want \"flat\"", entry.NewValue)
	}
}

func TestAddedSubtreeNotExpanded(t *testing.T) {
	before := map[string]any{"a": int64(1)}
	after := map[string]any{
		"a": int64(1),
		"b": map[string]any{"c": int64(2), "d": []any{int64(3)}},
	}

	result := Compare(before, after, false, nil)

	if len(result.Entries) != 1 {
		t.Fatalf("got %d entries, want 1 (added subtree reported as a single entry)", len(result.Entries))
	}
	if result.Entries[0].Path != "b" {
		t.Errorf("Path = %q, want %q", result.Entries[0].Path, "b")
	}
}

// ============== Paths ==============

func TestComparePaths(t *testing.T) {
	tests := []struct {
		name      string
		before    map[string]any
		after     map[string]any
		wantPaths []string
	}{
		{
			name:      "nested mapping path",
			before:    map[string]any{"top": map[string]any{"mid": map[string]any{"deep": "old"}}},
			after:     map[string]any{"top": map[string]any{"mid": map[string]any{"deep": "new"}}},
			wantPaths: []string{"top.mid.deep"},
		},
		{
			name: "list of mappings positional",
			before: map[string]any{"items": []any{
				map[string]any{"id": int64(1), "val": "a"},
				map[string]any{"id": int64(2), "val": "b"},
			}},
			after: map[string]any{"items": []any{
				map[string]any{"id": int64(1), "val": "a"},
				map[string]any{"id": int64(2), "val": "changed"},
			}},
			wantPaths: []string{"items[1].val"},
		},
		{
			name:      "list element index",
			before:    map[string]any{"a": []any{int64(1)}},
			after:     map[string]any{"a": []any{int64(1), int64(2)}},
			wantPaths: []string{"a[1]"},
		},
		{
			name:      "nested list in mapping in list",
			before:    map[string]any{"spec": []any{map[string]any{"ports": []any{int64(80)}}}},
			after:     map[string]any{"spec": []any{map[string]any{"ports": []any{int64(81)}}}},
			wantPaths: []string{"spec[0].ports[0]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Compare(tt.before, tt.after, false, nil)

			var paths []string
			for _, entry := range result.Entries {
				paths = append(paths, entry.Path)
			}

			if !reflect.DeepEqual(paths, tt.wantPaths) {
				t.Errorf("paths = %v, want %v", paths, tt.wantPaths)
			}
		})
	}
}

func TestEveryEntryHasPathAndKnownKind(t *testing.T) {
	before := map[string]any{
		"a": int64(1),
		"b": []any{int64(1), "x", nil},
		"c": map[string]any{"d": true},
		"e": "gone",
	}
	after := map[string]any{
		"a": int64(2),
		"b": []any{int64(1), "y"},
		"c": []any{int64(5)},
		"f": "fresh",
	}

	known := map[models.ChangeKind]bool{
		models.KindAdded:       true,
		models.KindRemoved:     true,
		models.KindModified:    true,
		models.KindTypeChanged: true,
	}

	result := Compare(before, after, false, nil)
	if !result.HasChanges() {
		t.Fatal("expected changes")
	}

	for _, entry := range result.Entries {
		if entry.Path == "" {
			t.Errorf("entry %+v has empty path", entry)
		}
		if !known[entry.Kind] {
			t.Errorf("entry %+v has unknown kind %q", entry, entry.Kind)
		}
	}
}

// ============== Ordering ==============

func TestEntriesSortedByKey(t *testing.T) {
	before := map[string]any{"zebra": int64(1), "apple": int64(1), "mango": int64(1)}
	after := map[string]any{"zebra": int64(2), "apple": int64(2), "mango": int64(2)}

	result := Compare(before, after, false, nil)

	wantPaths := []string{"apple", "mango", "zebra"}
	for i, entry := range result.Entries {
		if entry.Path != wantPaths[i] {
			t.Errorf("entry %d path = %q, want %q", i, entry.Path, wantPaths[i])
		}
	}
}

func TestCompareDeterminism(t *testing.T) {
	before := map[string]any{
		"b": []any{"x", int64(2), nil},
		"a": map[string]any{"k1": int64(1), "k2": int64(2), "k3": int64(3)},
		"c": "scalar",
	}
	after := map[string]any{
		"b": []any{"y", int64(2)},
		"a": map[string]any{"k1": int64(9), "k4": int64(4)},
		"d": "other",
	}

	first := Compare(before, after, false, nil)
	for i := 0; i < 20; i++ {
		next := Compare(before, after, false, nil)
		if !reflect.DeepEqual(first.Entries, next.Entries) {
			t.Fatalf("run %d produced different entries:\nfirst: %+v\nnext:  %+v",
				i, first.Entries, next.Entries)
		}
	}
}

// ============== Symmetry ==============

func TestCompareSymmetry(t *testing.T) {
	tests := []struct {
		name   string
		a      map[string]any
		b      map[string]any
	}{
		{
			name: "adds and removes",
			a:    map[string]any{"x": int64(1), "y": int64(2)},
			b:    map[string]any{"y": int64(3), "z": int64(4)},
		},
		{
			name: "type changes and lists",
			a:    map[string]any{"l": []any{int64(1), int64(2), int64(3)}, "t": "str"},
			b:    map[string]any{"l": []any{int64(1)}, "t": int64(7)},
		},
		{
			name: "identical",
			a:    map[string]any{"same": true},
			b:    map[string]any{"same": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forward := Compare(tt.a, tt.b, false, nil)
			backward := Compare(tt.b, tt.a, false, nil)

			if len(forward.Entries) != len(backward.Entries) {
				t.Errorf("len(A,B) = %d, len(B,A) = %d, want equal",
					len(forward.Entries), len(backward.Entries))
			}

			fs, bs := forward.Summary(), backward.Summary()
			if fs[models.KindAdded] != bs[models.KindRemoved] {
				t.Errorf("added(A,B) = %d, removed(B,A) = %d, want swap",
					fs[models.KindAdded], bs[models.KindRemoved])
			}
			if fs[models.KindModified] != bs[models.KindModified] {
				t.Errorf("modified counts differ under swap: %d vs %d",
					fs[models.KindModified], bs[models.KindModified])
			}
			if fs[models.KindTypeChanged] != bs[models.KindTypeChanged] {
				t.Errorf("type_changed counts differ under swap: %d vs %d",
					fs[models.KindTypeChanged], bs[models.KindTypeChanged])
			}
		})
	}
}

// ============== List comparison ==============

func TestListOrderSensitivity(t *testing.T) {
	before := map[string]any{"a": []any{int64(1), int64(2), int64(3)}}
	after := map[string]any{"a": []any{int64(1), int64(3), int64(2)}}

	t.Run("order-sensitive", func(t *testing.T) {
		result := Compare(before, after, false, nil)

		if len(result.Entries) != 2 {
			t.Fatalf("got %d entries, want 2: %+v", len(result.Entries), result.Entries)
		}
		if result.Entries[0].Path != "a[1]" || result.Entries[1].Path != "a[2]" {
			t.Errorf("paths = %q, %q, want a[1], a[2]",
				result.Entries[0].Path, result.Entries[1].Path)
		}
		for _, entry := range result.Entries {
			if entry.Kind != models.KindModified {
				t.Errorf("Kind = %q, want %q", entry.Kind, models.KindModified)
			}
		}
	})

	t.Run("ignore-order", func(t *testing.T) {
		result := Compare(before, after, true, nil)

		if result.HasChanges() {
			t.Errorf("got %d entries with ignoreOrder, want 0: %+v",
				len(result.Entries), result.Entries)
		}
	})
}

func TestIgnoreOrderHeterogeneous(t *testing.T) {
	before := map[string]any{"mix": []any{
		map[string]any{"id": int64(1)},
		"text",
		int64(42),
	}}
	after := map[string]any{"mix": []any{
		int64(42),
		map[string]any{"id": int64(1)},
		"text",
	}}

	result := Compare(before, after, true, nil)
	if result.HasChanges() {
		t.Errorf("permuted heterogeneous list reported %d changes with ignoreOrder: %+v",
			len(result.Entries), result.Entries)
	}
}

func TestIgnoreOrderDoesNotMutateInputs(t *testing.T) {
	beforeList := []any{int64(3), int64(1), int64(2)}
	afterList := []any{int64(2), int64(3), int64(1)}
	before := map[string]any{"a": beforeList}
	after := map[string]any{"a": afterList}

	Compare(before, after, true, nil)

	if !reflect.DeepEqual(beforeList, []any{int64(3), int64(1), int64(2)}) {
		t.Errorf("before list was mutated: %v", beforeList)
	}
	if !reflect.DeepEqual(afterList, []any{int64(2), int64(3), int64(1)}) {
		t.Errorf("after list was mutated: %v", afterList)
	}
}

func TestListLengthDifference(t *testing.T) {
	tests := []struct {
		name     string
		before   map[string]any
		after    map[string]any
		wantKind models.ChangeKind
		wantPath string
	}{
		{
			name:     "after longer",
			before:   map[string]any{"a": []any{int64(1), int64(2)}},
			after:    map[string]any{"a": []any{int64(1), int64(2), int64(3)}},
			wantKind: models.KindAdded,
			wantPath: "a[2]",
		},
		{
			name:     "before longer",
			before:   map[string]any{"a": []any{int64(1), int64(2), int64(3)}},
			after:    map[string]any{"a": []any{int64(1), int64(2)}},
			wantKind: models.KindRemoved,
			wantPath: "a[2]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Compare(tt.before, tt.after, false, nil)

			if len(result.Entries) != 1 {
				t.Fatalf("got %d entries, want 1", len(result.Entries))
			}
			if result.Entries[0].Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", result.Entries[0].Kind, tt.wantKind)
			}
			if result.Entries[0].Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", result.Entries[0].Path, tt.wantPath)
			}
		})
	}
}

// FrontInsertionShiftsIndices documents the positional trade-off: an
// element prepended to a list is not recognized as a single insertion.
func TestFrontInsertionShiftsIndices(t *testing.T) {
	before := map[string]any{"a": []any{"x", "y"}}
	after := map[string]any{"a": []any{"new", "x", "y"}}

	result := Compare(before, after, false, nil)

	summary := result.Summary()
	if summary[models.KindModified] != 2 || summary[models.KindAdded] != 1 {
		t.Errorf("summary = %v, want 2 modified (shifted) and 1 added (tail)", summary)
	}
}

// ============== Metadata ==============

func TestCompareMetadataPassthrough(t *testing.T) {
	metadata := map[string]any{"before": "a.json", "after": "b.json", "format": "json"}

	result := Compare(map[string]any{}, map[string]any{}, false, metadata)

	if !reflect.DeepEqual(result.Metadata, metadata) {
		t.Errorf("Metadata = %v, want %v", result.Metadata, metadata)
	}

	t.Run("nil metadata becomes empty map", func(t *testing.T) {
		result := Compare(map[string]any{}, map[string]any{}, false, nil)
		if result.Metadata == nil {
			t.Error("Metadata is nil, want empty map")
		}
	})
}

// ============== Summary consistency ==============

func TestSummaryMatchesEntries(t *testing.T) {
	before := map[string]any{
		"removed":  int64(1),
		"modified": "old",
		"typed":    int64(5),
		"kept":     true,
	}
	after := map[string]any{
		"added":    int64(2),
		"modified": "new",
		"typed":    "five",
		"kept":     true,
	}

	result := Compare(before, after, false, nil)
	summary := result.Summary()

	for _, kind := range models.Kinds {
		count := 0
		for _, entry := range result.Entries {
			if entry.Kind == kind {
				count++
			}
		}
		if summary[kind] != count {
			t.Errorf("summary[%s] = %d, want %d", kind, summary[kind], count)
		}
	}
}
