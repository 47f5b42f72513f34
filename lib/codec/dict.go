package codec

// --------------------------------------------------------------------------
// Encoder-Side Dictionary
// --------------------------------------------------------------------------

// dictCacheSize is the capacity of the direct-indexed cache that fronts the
// overflow map. The first dictCacheSize distinct entries are found by a
// linear scan, everything beyond that by an amortized O(1) map lookup.
const dictCacheSize = 20

// writeDict tracks the dictionary IDs the encoder has assigned to one kind
// of entry (types or strings). IDs are assigned strictly in first-seen order
// starting at zero, and entries are never evicted: the dictionary grows
// monotonically for the lifetime of its channel wrap.
type writeDict struct {
	nextID uint32

	// last emitted entry, enables the 1-opcode "same as previous" shortcut
	lastKey string
	lastID  uint32
	hasLast bool

	// fixed-capacity direct cache, scanned linearly
	cacheKeys [dictCacheSize]string
	cacheIDs  [dictCacheSize]uint32
	cacheLen  int

	// overflow map, created lazily once the cache is full
	overflow map[string]uint32
}

// lookup resolves a key to its assigned ID. The scan priority is
// last-emitted slot, then direct cache, then overflow map. On a hit the
// last-emitted slot is updated. same reports whether the hit came from the
// last-emitted slot.
func (d *writeDict) lookup(key string) (id uint32, same bool, found bool) {
	if d.hasLast && d.lastKey == key {
		return d.lastID, true, true
	}
	for i := 0; i < d.cacheLen; i++ {
		if d.cacheKeys[i] == key {
			d.setLast(key, d.cacheIDs[i])
			return d.cacheIDs[i], false, true
		}
	}
	if d.overflow != nil {
		if id, ok := d.overflow[key]; ok {
			d.setLast(key, id)
			return id, false, true
		}
	}
	return 0, false, false
}

// insert assigns the next free ID to a key that lookup did not find
func (d *writeDict) insert(key string) uint32 {
	id := d.nextID
	d.nextID++

	if d.cacheLen < dictCacheSize {
		d.cacheKeys[d.cacheLen] = key
		d.cacheIDs[d.cacheLen] = id
		d.cacheLen++
	} else {
		if d.overflow == nil {
			d.overflow = make(map[string]uint32)
		}
		d.overflow[key] = id
	}

	d.setLast(key, id)
	return id
}

// setLast records the most recently emitted entry
func (d *writeDict) setLast(key string, id uint32) {
	d.lastKey = key
	d.lastID = id
	d.hasLast = true
}
