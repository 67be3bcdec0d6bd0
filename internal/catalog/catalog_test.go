package catalog_test

import (
	"testing"

	"matcha_map/internal/catalog"
	"matcha_map/internal/domain"
)

func TestAll_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range catalog.All() {
		if c.ID == "" || c.Name == "" {
			t.Fatalf("cafe missing identity: %+v", c)
		}
		if seen[c.ID] {
			t.Fatalf("duplicate cafe id %s", c.ID)
		}
		seen[c.ID] = true
	}
	if len(seen) != catalog.Len() {
		t.Fatalf("All returned %d cafes, catalog has %d", len(seen), catalog.Len())
	}
}

func TestByID_HandsOutCopies(t *testing.T) {
	c, ok := catalog.ByID("luxxe")
	if !ok {
		t.Fatal("luxxe missing from catalog")
	}
	if c.Hours == nil {
		t.Fatal("luxxe should carry an hours table")
	}

	// The catalog is read-only: mutating a returned record must not
	// leak back into later lookups.
	c.Hours["monday"] = domain.Closed
	c2, _ := catalog.ByID("luxxe")
	if c2.Hours["monday"] == domain.Closed {
		t.Fatal("ByID leaked a shared hours map")
	}
}

func TestByID_Unknown(t *testing.T) {
	if _, ok := catalog.ByID("no-such-cafe"); ok {
		t.Fatal("unknown id should not resolve")
	}
}

func TestCatalog_AreasAreKnownTags(t *testing.T) {
	for _, c := range catalog.All() {
		switch c.Area {
		case "", domain.AreaCBD, domain.AreaOutside:
		default:
			t.Fatalf("cafe %s has unknown area tag %q", c.ID, c.Area)
		}
	}
}
