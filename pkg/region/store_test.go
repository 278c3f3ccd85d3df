package region

import "testing"

func TestStore_LinkageSymmetry(t *testing.T) {
	nf := &NormalizedFile{
		Path:             "a.go",
		CodeLines:        []string{"func first() int {", "return 1 + 2", "}"},
		OriginalLineNums: []int{1, 2, 3},
	}

	var shingleSets []map[string]struct{}
	for _, l := range nf.CodeLines {
		shingleSets = append(shingleSets, Shingles(l, ShingleSize))
	}
	vocab := NewVocabulary(shingleSets)
	perms := newPermutationTable(10, vocab.Len(), DefaultSeed)

	store := NewStore()
	ids := store.AddFile(nf, vocab, perms, ShingleSize)
	if len(ids) == 0 {
		t.Fatal("expected signed lines, got none")
	}

	for _, id := range ids {
		rec := store.Get(id)
		if rec.HasNext() {
			next := store.Get(rec.Next)
			if next.Prev != id {
				t.Errorf("record %d has next %d, but %d.prev = %d, want %d", id, rec.Next, rec.Next, next.Prev, id)
			}
			if next.File != rec.File {
				t.Errorf("linked records span different files: %s vs %s", rec.File, next.File)
			}
		}
		if rec.HasPrev() {
			prev := store.Get(rec.Prev)
			if prev.Next != id {
				t.Errorf("record %d has prev %d, but %d.next = %d, want %d", id, rec.Prev, rec.Prev, prev.Next, id)
			}
		}
	}

	// First and last signed lines have no prev/next respectively.
	if store.Get(ids[0]).HasPrev() {
		t.Error("first signed line should have no prev")
	}
	if store.Get(ids[len(ids)-1]).HasNext() {
		t.Error("last signed line should have no next")
	}
}

func TestStore_MultipleFilesDoNotCrossLink(t *testing.T) {
	files := []*NormalizedFile{
		{Path: "a.go", CodeLines: []string{"line one here", "line two here"}, OriginalLineNums: []int{1, 2}},
		{Path: "b.go", CodeLines: []string{"line three here", "line four here"}, OriginalLineNums: []int{1, 2}},
	}

	var shingleSets []map[string]struct{}
	for _, nf := range files {
		for _, l := range nf.CodeLines {
			shingleSets = append(shingleSets, Shingles(l, ShingleSize))
		}
	}
	vocab := NewVocabulary(shingleSets)
	perms := newPermutationTable(10, vocab.Len(), DefaultSeed)

	store := NewStore()
	idsA := store.AddFile(files[0], vocab, perms, ShingleSize)
	idsB := store.AddFile(files[1], vocab, perms, ShingleSize)

	lastA := store.Get(idsA[len(idsA)-1])
	if lastA.HasNext() {
		t.Error("last signed line of file A should not link into file B")
	}
	firstB := store.Get(idsB[0])
	if firstB.HasPrev() {
		t.Error("first signed line of file B should not link into file A")
	}
}
