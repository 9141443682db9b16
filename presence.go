package finskema

// Presence is the bit flag collected by WithMeta APIs.
type Presence uint8

const (
	PresenceSeen           Presence = 1 << iota // Field appeared in the input.
	PresenceWasNull                             // Field value was null.
	PresenceDefaultApplied                      // Default value was applied.
	PresenceEmptyAbsent                         // Empty string collapsed to absent.
)

// PresenceMap maps JSON Pointers to Presence flags.
type PresenceMap map[string]Presence

// Supplied reports whether the caller provided a usable value at path:
// seen, and not collapsed to absent.
func (pm PresenceMap) Supplied(path string) bool {
	p := pm[path]
	return p&PresenceSeen != 0 && p&PresenceEmptyAbsent == 0
}

// Defaulted reports whether path was filled by a declared default.
func (pm PresenceMap) Defaulted(path string) bool {
	return pm[path]&PresenceDefaultApplied != 0
}

// Decoded carries the parsed value along with presence metadata.
type Decoded[T any] struct {
	Value    T
	Presence PresenceMap
}

// mergePresenceMaps returns a new PresenceMap that is the bitwise-OR merge of a and b.
func mergePresenceMaps(a, b PresenceMap) PresenceMap {
	if a == nil && b == nil {
		return nil
	}
	out := make(PresenceMap, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] |= v
	}
	return out
}

// MergePresence folds a child presence map under base into dst.
func MergePresence(dst PresenceMap, base string, child PresenceMap) PresenceMap {
	rebased := make(PresenceMap, len(child))
	for k, v := range child {
		rebased[Rebase(base, k)] = v
	}
	return mergePresenceMaps(dst, rebased)
}
