package codec

import (
	"fmt"
	"testing"
)

// TestDictMonotonicIDs checks that IDs are assigned in strict first-seen order
func TestDictMonotonicIDs(t *testing.T) {
	var d writeDict

	for i := 0; i < 100; i++ {
		key := fmt.Sprintf("entry-%d", i)
		if _, _, found := d.lookup(key); found {
			t.Fatalf("entry %d found before insert", i)
		}
		if id := d.insert(key); id != uint32(i) {
			t.Fatalf("insert(%q) = %d; want %d", key, id, i)
		}
	}

	// every entry must still resolve to its original ID, including the ones
	// that overflowed past the direct cache
	for i := 0; i < 100; i++ {
		key := fmt.Sprintf("entry-%d", i)
		id, _, found := d.lookup(key)
		if !found {
			t.Fatalf("entry %d not found after insert", i)
		}
		if id != uint32(i) {
			t.Errorf("lookup(%q) = %d; want %d", key, id, i)
		}
	}
}

// TestDictSameAsLast checks the last-emitted shortcut detection
func TestDictSameAsLast(t *testing.T) {
	var d writeDict

	d.insert("a")
	if _, same, found := d.lookup("a"); !found || !same {
		t.Errorf("lookup right after insert: same=%v found=%v; want both true", same, found)
	}

	d.insert("b")
	if _, same, found := d.lookup("a"); !found || same {
		t.Errorf("lookup after other insert: same=%v found=%v; want found, not same", same, found)
	}
	// the previous lookup made "a" the last emitted entry again
	if _, same, _ := d.lookup("a"); !same {
		t.Error("repeated lookup did not update the last-emitted slot")
	}
}

// TestDictCacheOverflow checks the transition from direct cache to overflow map
func TestDictCacheOverflow(t *testing.T) {
	var d writeDict

	for i := 0; i < dictCacheSize+5; i++ {
		d.insert(fmt.Sprintf("k%d", i))
	}

	if d.cacheLen != dictCacheSize {
		t.Errorf("cacheLen = %d; want %d", d.cacheLen, dictCacheSize)
	}
	if len(d.overflow) != 5 {
		t.Errorf("overflow holds %d entries; want 5", len(d.overflow))
	}

	// cache and overflow entries both resolve
	if id, _, found := d.lookup("k3"); !found || id != 3 {
		t.Errorf("cache lookup = %d, %v; want 3, true", id, found)
	}
	if id, _, found := d.lookup(fmt.Sprintf("k%d", dictCacheSize+2)); !found || id != uint32(dictCacheSize+2) {
		t.Errorf("overflow lookup = %d, %v; want %d, true", id, found, dictCacheSize+2)
	}
}
