package enum

import (
	"testing"
)

func TestCatalogRegisterAndLookup(t *testing.T) {
	c := NewCatalog()

	colors := Declare("color", V("RED", "red"))
	if err := c.Register(colors); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	got, ok := c.Lookup("color")
	if !ok {
		t.Fatal("Lookup(color) not found")
	}
	if got.Name() != "color" {
		t.Errorf("Lookup(color).Name() = %q, want color", got.Name())
	}

	if _, ok := c.Lookup("missing"); ok {
		t.Error("Lookup(missing) should not be found")
	}
}

func TestCatalogRejectsDuplicates(t *testing.T) {
	c := NewCatalog()

	if err := c.Register(Declare("color", V("RED", "red"))); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}
	if err := c.Register(Declare("color", V("BLUE", "blue"))); err == nil {
		t.Error("second Register() should fail for duplicate name")
	}
}

func TestCatalogRejectsNilAndUnnamed(t *testing.T) {
	c := NewCatalog()

	if err := c.Register(nil); err == nil {
		t.Error("Register(nil) should fail")
	}
	if err := c.Register(Declare[int]("")); err == nil {
		t.Error("Register of unnamed set should fail")
	}
}

func TestCatalogListOrder(t *testing.T) {
	c := NewCatalog()

	names := []string{"third", "first", "second"}
	for _, name := range names {
		if err := c.Register(Declare(name, V("A", 1))); err != nil {
			t.Fatalf("Register(%s) error = %v", name, err)
		}
	}

	list := c.List()
	if len(list) != len(names) {
		t.Fatalf("List() returned %d sets, want %d", len(list), len(names))
	}
	for i, set := range list {
		if set.Name() != names[i] {
			t.Errorf("List()[%d].Name() = %q, want %q", i, set.Name(), names[i])
		}
	}
}

func TestVariantsBoxesValues(t *testing.T) {
	s := Declare("status", V("OK", 0), V("ERROR", 1))

	variants := s.Variants()
	if len(variants) != 2 {
		t.Fatalf("Variants() returned %d entries, want 2", len(variants))
	}
	if variants[0].Name != "OK" || variants[0].Value != 0 {
		t.Errorf("Variants()[0] = %+v, want {OK 0}", variants[0])
	}
	if variants[1].Name != "ERROR" || variants[1].Value != 1 {
		t.Errorf("Variants()[1] = %+v, want {ERROR 1}", variants[1])
	}
}
