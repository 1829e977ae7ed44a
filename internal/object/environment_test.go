package object

import "testing"

func TestEnvironmentGetSet(t *testing.T) {
	env := NewEnvironment()
	env.Set("x", &Integer{Value: 5})

	val, ok := env.Get("x")
	if !ok {
		t.Fatal("expected x to be bound")
	}
	if val.(*Integer).Value != 5 {
		t.Errorf("got %d, want 5", val.(*Integer).Value)
	}

	if _, ok := env.Get("y"); ok {
		t.Error("expected y to be unbound")
	}
}

func TestEnclosedEnvironmentFallsBackToOuter(t *testing.T) {
	outer := NewEnvironment()
	outer.Set("x", &Integer{Value: 1})
	inner := NewEnclosedEnvironment(outer)

	val, ok := inner.Get("x")
	if !ok {
		t.Fatal("expected inner to resolve x via outer")
	}
	if val.(*Integer).Value != 1 {
		t.Errorf("got %d, want 1", val.(*Integer).Value)
	}
}

func TestSetNeverWritesToOuter(t *testing.T) {
	outer := NewEnvironment()
	outer.Set("x", &Integer{Value: 1})
	inner := NewEnclosedEnvironment(outer)
	inner.Set("x", &Integer{Value: 2})

	innerVal, _ := inner.Get("x")
	outerVal, _ := outer.Get("x")
	if innerVal.(*Integer).Value != 2 {
		t.Errorf("inner x = %d, want 2", innerVal.(*Integer).Value)
	}
	if outerVal.(*Integer).Value != 1 {
		t.Errorf("outer x = %d, want 1 (should be unaffected)", outerVal.(*Integer).Value)
	}
}

func TestExportedHashPreservesInsertionOrder(t *testing.T) {
	env := NewEnvironment()
	env.Set("c", &Integer{Value: 3})
	env.Set("a", &Integer{Value: 1})
	env.Set("b", &Integer{Value: 2})

	hash := env.ExportedHash()
	if len(hash.Keys) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(hash.Keys))
	}

	want := []string{"c", "a", "b"}
	for i, name := range want {
		pair := hash.Pairs[hash.Keys[i]]
		if pair.Key.(*String).Value != name {
			t.Errorf("entry %d = %q, want %q", i, pair.Key.(*String).Value, name)
		}
	}
}

func TestExportedHashReassignmentKeepsOriginalPosition(t *testing.T) {
	env := NewEnvironment()
	env.Set("a", &Integer{Value: 1})
	env.Set("b", &Integer{Value: 2})
	env.Set("a", &Integer{Value: 99})

	hash := env.ExportedHash()
	if len(hash.Keys) != 2 {
		t.Fatalf("expected 2 entries after reassignment, got %d", len(hash.Keys))
	}
	first := hash.Pairs[hash.Keys[0]]
	if first.Key.(*String).Value != "a" {
		t.Errorf("first entry = %q, want %q", first.Key.(*String).Value, "a")
	}
	if first.Value.(*Integer).Value != 99 {
		t.Errorf("a's value = %d, want 99 (reassignment should update in place)", first.Value.(*Integer).Value)
	}
}

func TestExportedHashExcludesOuterScope(t *testing.T) {
	outer := NewEnvironment()
	outer.Set("fromOuter", &Integer{Value: 1})
	inner := NewEnclosedEnvironment(outer)
	inner.Set("fromInner", &Integer{Value: 2})

	hash := inner.ExportedHash()
	if len(hash.Keys) != 1 {
		t.Fatalf("expected only inner's own binding, got %d entries", len(hash.Keys))
	}
	if hash.Pairs[hash.Keys[0]].Key.(*String).Value != "fromInner" {
		t.Error("expected only fromInner in the exported hash")
	}
}
