package variant

import (
	"strconv"
	"strings"

	"github.com/joshuapare/varkit/pkg/types"
)

// PathSep separates the segments accepted by Find.
const PathSep = "/"

// Find follows a PathSep-separated path from v. Dictionary segments are
// keys; list segments are decimal indices. An empty path returns v.
func (v *Variant) Find(path string) (*Variant, error) {
	cur := v
	if path == "" {
		return cur, nil
	}
	for _, seg := range strings.Split(strings.Trim(path, PathSep), PathSep) {
		switch cur.kind {
		case KindDict:
			next := cur.DictFind(seg)
			if next == nil {
				return nil, &types.Error{Kind: types.ErrKindNotFound, Msg: "no key " + strconv.Quote(seg) + " in " + strconv.Quote(path), Offset: types.NoOffset}
			}
			cur = next
		case KindList:
			i, err := strconv.Atoi(seg)
			if err != nil {
				return nil, &types.Error{Kind: types.ErrKindType, Msg: "list index " + strconv.Quote(seg) + " is not a number", Offset: types.NoOffset}
			}
			next := cur.ListChild(i)
			if next == nil {
				return nil, &types.Error{Kind: types.ErrKindNotFound, Msg: "index " + seg + " out of range in " + strconv.Quote(path), Offset: types.NoOffset}
			}
			cur = next
		default:
			return nil, &types.Error{Kind: types.ErrKindType, Msg: "cannot descend into " + cur.kind.String() + " at " + strconv.Quote(seg), Offset: types.NoOffset}
		}
	}
	return cur, nil
}
