package fetcher

import (
	"encoding/json"
	"fmt"
	"sort"

	"nbu-dashboard/internal/domain/entity"
	"nbu-dashboard/internal/usecase/dataset"
)

// collectionKeys are the well-known names a JSON object uses for its
// record list, checked in order before falling back to the first
// qualifying key in sorted order. This keeps nested-list detection
// deterministic for any given payload.
var collectionKeys = []string{"data", "items", "results", "records", "rows"}

// Normalize converts a decoded JSON payload into tabular form:
//
//   - a top-level array of objects: each object is one record;
//   - a top-level empty array: a zero-record table (feeds legitimately
//     publish empty lists when nothing matches the query period);
//   - a top-level object: the first nested array of objects (preferred
//     collection keys first, then sorted key order) is the record list;
//   - a top-level object with no nested list: a single one-record table.
//
// Field order is the sorted union of record keys. Nested objects are
// flattened one level with dotted keys; nested arrays are kept as
// compact JSON strings. Anything else is a shape error.
func Normalize(payload any) ([]string, []entity.Record, error) {
	switch v := payload.(type) {
	case []any:
		if len(v) == 0 {
			return nil, nil, nil
		}
		return normalizeList(v)
	case map[string]any:
		if list, ok := findNestedList(v); ok {
			return normalizeList(list)
		}
		return normalizeList([]any{v})
	default:
		return nil, nil, fmt.Errorf("%w: top-level %T is not an array or object", dataset.ErrShape, payload)
	}
}

// findNestedList locates an array-of-objects value inside a top-level
// object. Preferred collection keys win; otherwise the first qualifying
// key in sorted order is used.
func findNestedList(obj map[string]any) ([]any, bool) {
	for _, key := range collectionKeys {
		if list, ok := asObjectList(obj[key]); ok {
			return list, true
		}
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if list, ok := asObjectList(obj[k]); ok {
			return list, true
		}
	}
	return nil, false
}

// asObjectList reports whether v is a non-empty array whose elements
// are all objects.
func asObjectList(v any) ([]any, bool) {
	list, ok := v.([]any)
	if !ok || len(list) == 0 {
		return nil, false
	}
	for _, item := range list {
		if _, isObj := item.(map[string]any); !isObj {
			return nil, false
		}
	}
	return list, true
}

// normalizeList converts a non-empty record list. Callers handle the
// empty-list case: an empty top-level array is a zero-record table, and
// findNestedList never selects an empty array.
func normalizeList(list []any) ([]string, []entity.Record, error) {
	records := make([]entity.Record, 0, len(list))
	seen := make(map[string]bool)
	var fields []string

	for i, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, nil, fmt.Errorf("%w: element %d is %T, not an object", dataset.ErrShape, i, item)
		}
		rec := make(entity.Record, len(obj))
		flattenInto(rec, "", obj)
		for k := range rec {
			if !seen[k] {
				seen[k] = true
				fields = append(fields, k)
			}
		}
		records = append(records, rec)
	}

	sort.Strings(fields)
	return fields, records, nil
}

// flattenInto writes obj's entries into rec, flattening nested objects
// one level with dotted keys. Deeper nesting and arrays are serialized
// to compact JSON strings so every record value stays scalar.
func flattenInto(rec entity.Record, prefix string, obj map[string]any) {
	for k, v := range obj {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			if prefix == "" {
				flattenInto(rec, key, val)
				continue
			}
			rec[key] = toJSONString(val)
		case []any:
			rec[key] = toJSONString(val)
		default:
			rec[key] = val
		}
	}
}

func toJSONString(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
