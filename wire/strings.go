package wire

import (
	"sort"

	"github.com/justapithecus/sluice/stream"
)

// WriteStrings encodes ss as a count followed by each string in order.
func WriteStrings(dst stream.Sink, ss []string) error {
	if err := WriteUint64(dst, uint64(len(ss))); err != nil {
		return err
	}
	for _, s := range ss {
		if err := WriteString(dst, s); err != nil {
			return err
		}
	}
	return nil
}

// WriteStringSet encodes set as a count followed by each member in
// sorted order, so set encodes are deterministic.
func WriteStringSet(dst stream.Sink, set map[string]struct{}) error {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return WriteStrings(dst, keys)
}

// ReadStrings decodes a string collection as an order-preserving
// sequence. Strings are read one at a time, so a hostile count cannot
// force an up-front allocation.
func ReadStrings(src stream.Source) ([]string, error) {
	count, err := ReadUint32(src)
	if err != nil {
		return nil, err
	}
	var out []string
	for i := uint32(0); i < count; i++ {
		s, err := ReadString(src)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// ReadStringSet decodes a string collection as a set, silently
// deduplicating repeated members.
func ReadStringSet(src stream.Source) (map[string]struct{}, error) {
	count, err := ReadUint32(src)
	if err != nil {
		return nil, err
	}
	out := make(map[string]struct{})
	for i := uint32(0); i < count; i++ {
		s, err := ReadString(src)
		if err != nil {
			return nil, err
		}
		out[s] = struct{}{}
	}
	return out, nil
}
