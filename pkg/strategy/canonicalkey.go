package strategy

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// CanonicalKey resolves the §9 open question ("whether a canonical sort
// is required for cross-implementation equivalence is unspecified"): it
// fixes a deterministic string key for any template or reified value
// built out of the primitive universe this module understands (nil,
// bool, int, int32, int64, uint64, float64, string, and nested []any).
// The set strategies use it both to order elements deterministically
// (spec design note "deterministic set ordering") and, since nested
// tuple templates are Go slices and therefore not comparable with ==, as
// the dedup/equality surrogate for everything that needs it. Map keys
// are not ordered by it; Map sorts them as plain strings.
//
// A leaf strategy's own template type only needs to produce consistent
// output from CanonicalKey's default branch (fmt.Sprintf) to participate
// correctly; pkg/leaf's templates are already one of the handled
// primitive kinds.
func CanonicalKey(v any) string {
	switch x := v.(type) {
	case nil:
		return "n"
	case bool:
		if x {
			return "b:1"
		}
		return "b:0"
	case int:
		return "i:" + strconv.FormatInt(int64(x), 10)
	case int32:
		return "i:" + strconv.FormatInt(int64(x), 10)
	case int64:
		return "i:" + strconv.FormatInt(x, 10)
	case uint64:
		return "u:" + strconv.FormatUint(x, 10)
	case float64:
		return "f:" + strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		return "s:" + strconv.Quote(x)
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = CanonicalKey(e)
		}
		return "t" + strconv.Itoa(len(x)) + "(" + strings.Join(parts, ",") + ")"
	default:
		return fmt.Sprintf("?:%T:%v", x, x)
	}
}

// SortAndDedup returns items sorted by CanonicalKey with duplicate keys
// collapsed to their first occurrence, giving the deterministic,
// deduplicated traversal order the set strategy's template invariant
// requires.
func SortAndDedup(items []Template) []Template {
	type keyed struct {
		key  string
		item Template
	}
	ks := make([]keyed, len(items))
	for i, it := range items {
		ks[i] = keyed{CanonicalKey(it), it}
	}
	// Stable sort by key so equal-key duplicates keep their first
	// occurrence adjacent and in original relative order.
	sort.SliceStable(ks, func(i, j int) bool { return ks[i].key < ks[j].key })
	out := make([]Template, 0, len(ks))
	var lastKey string
	haveLast := false
	for _, k := range ks {
		if haveLast && k.key == lastKey {
			continue
		}
		out = append(out, k.item)
		lastKey = k.key
		haveLast = true
	}
	return out
}
