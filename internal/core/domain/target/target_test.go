package target

import "testing"

func TestCatalog(t *testing.T) {
	catalog := Catalog()

	wantOrder := []string{All, Unit, Integration, Fast, Coverage, File, Watch}
	if len(catalog) != len(wantOrder) {
		t.Fatalf("Catalog() returned %d targets, want %d", len(catalog), len(wantOrder))
	}
	for i, name := range wantOrder {
		if catalog[i].Name != name {
			t.Errorf("Catalog()[%d].Name = %q, want %q", i, catalog[i].Name, name)
		}
	}

	t.Run("only the single-file target requires a file", func(t *testing.T) {
		for _, tgt := range catalog {
			wantRequires := tgt.Name == File
			if tgt.RequiresFile != wantRequires {
				t.Errorf("target %q RequiresFile = %v, want %v", tgt.Name, tgt.RequiresFile, wantRequires)
			}
		}
	})

	t.Run("mutating the returned slice does not affect the catalog", func(t *testing.T) {
		mutated := Catalog()
		mutated[0].Name = "mutated"
		if fresh := Catalog(); fresh[0].Name != All {
			t.Errorf("Catalog()[0].Name = %q after external mutation, want %q", fresh[0].Name, All)
		}
	})
}

func TestLookup(t *testing.T) {
	t.Run("known target", func(t *testing.T) {
		tgt, ok := Lookup(Coverage)
		if !ok {
			t.Fatalf("Lookup(%q) not found", Coverage)
		}
		if tgt.Name != Coverage {
			t.Errorf("Lookup(%q).Name = %q", Coverage, tgt.Name)
		}
	})

	t.Run("unknown target", func(t *testing.T) {
		if _, ok := Lookup("test-everything"); ok {
			t.Error("Lookup(\"test-everything\") found a target, want none")
		}
	})
}
