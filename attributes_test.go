package gfxtools

import "testing"

func TestAttributesInsertionOrder(t *testing.T) {
	a := NewAttributes()
	a.Insert("tag", "basic")
	a.Insert("note", "x")
	a.Insert("tag", "refseq")

	if got := a.Keys(); len(got) != 2 || got[0] != "tag" || got[1] != "note" {
		t.Fatalf("got keys %v, want [tag note]", got)
	}
	if got := a.GetAll("tag"); len(got) != 2 || got[0] != "basic" || got[1] != "refseq" {
		t.Fatalf("got values %v, want [basic refseq]", got)
	}
	if v, ok := a.Get("tag"); !ok || v != "basic" {
		t.Fatalf("got %q, ok=%v, want first-inserted value", v, ok)
	}
	if _, ok := a.Get("missing"); ok {
		t.Fatal("expected missing key to report false")
	}
}

func TestAttributesClone(t *testing.T) {
	a := NewAttributes()
	a.Insert("k", "v1")
	clone := a.Clone()
	clone.Insert("k", "v2")

	if a.Len() != 1 || len(a.GetAll("k")) != 1 {
		t.Fatal("original attributes mutated by clone")
	}
	if len(clone.GetAll("k")) != 2 {
		t.Fatal("expected clone to carry both values")
	}
}
