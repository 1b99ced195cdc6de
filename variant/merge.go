package variant

import (
	"github.com/joshuapare/varkit/internal/logger"
)

// Merge layers the Dict src onto the Dict v. For each entry of src:
//
//   - a Dict whose key also holds a Dict in v is merged recursively;
//   - anything else is deep-copied into v, replacing an existing value
//     under the same key in place, so the key keeps its position.
//
// Lists are replaced, never concatenated. src is not modified and v shares
// no storage with it afterwards. Merge reports false, changing nothing, if
// either value is not a Dict.
func (v *Variant) Merge(src *Variant) bool {
	if v.kind != KindDict || src.kind != KindDict {
		return false
	}
	v.Reserve(len(src.vals))
	for i := range src.vals {
		sc := &src.vals[i]
		key := sc.key.view()

		if sc.kind == KindNone {
			logger.L().Debug("merge: skipping uninitialized value", "key", string(key))
			continue
		}

		if sc.kind == KindDict {
			if j := v.dictIndex(key); j >= 0 && v.vals[j].kind == KindDict {
				v.vals[j].Merge(sc)
				continue
			}
		}

		dst := v.dictSlot(key)
		k := dst.key
		*dst = sc.cloneValue()
		dst.key = k
	}
	return true
}
