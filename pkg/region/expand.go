package region

// ProgressFunc is an optional progress callback invoked during the
// longer-running phases of a run (signature construction, region
// expansion). May be nil. Mirrors the batch-progress logging the
// source implementation performed during expansion.
type ProgressFunc func(phase string, done, total int)

// pairKey is an ordered pair of fingerprint ids used as a visited-set
// member.
type pairKey struct{ a, b FingerprintID }

// ExpandRegions walks every candidate edge in deterministic order
// (graph node order, then each node's neighbor order) and grows each
// unvisited cross-file edge into a maximal contiguous region using the
// per-file prev/next linkage. strictDiagonalOnly narrows the
// visited-set marking to only the ids actually walked in lockstep
// instead of the full cross-product the source implementation used;
// the default (false) retains the source's wider marking for parity,
// per the design notes' configuration-switch callout.
func ExpandRegions(store *Store, g *Graph, lineThreshold float64, strictDiagonalOnly bool, progress ProgressFunc) []Region {
	visited := make(map[pairKey]bool)
	var regions []Region

	total := 0
	for _, x := range g.Nodes() {
		total += len(g.Neighbors(x))
	}
	done := 0

	for _, x := range g.Nodes() {
		for _, y := range g.Neighbors(x) {
			done++
			if progress != nil && total > 0 && done%progressBatchSize == 0 {
				progress("expand", done, total)
			}

			xr, yr := store.Get(x), store.Get(y)
			if xr.File == yr.File {
				continue
			}
			if visited[pairKey{x, y}] || visited[pairKey{y, x}] {
				continue
			}

			sim := Jaccard(xr.Signature, yr.Signature)
			if sim < lineThreshold {
				continue
			}

			region, walkedA, walkedB := expandOne(store, x, y, lineThreshold)

			if strictDiagonalOnly {
				n := len(walkedA)
				if len(walkedB) < n {
					n = len(walkedB)
				}
				for i := 0; i < n; i++ {
					visited[pairKey{walkedA[i], walkedB[i]}] = true
					visited[pairKey{walkedB[i], walkedA[i]}] = true
				}
			} else {
				// Full cross-product of traversed ids, retained for
				// parity with the source implementation (see design
				// notes): wider than the contiguous diagonal actually
				// matched, which can suppress legitimate, non-
				// overlapping future regions.
				for _, a := range walkedA {
					for _, b := range walkedB {
						visited[pairKey{a, b}] = true
						visited[pairKey{b, a}] = true
					}
				}
			}

			regions = append(regions, region)
		}
	}

	if progress != nil && total > 0 {
		progress("expand", total, total)
	}

	return regions
}

// expandOne grows the single candidate pair (x, y) into its maximal
// contiguous region. Returns the region plus the full ordered lists of
// fingerprint ids traversed on each side (ascending original-line
// order), used for visited-set marking.
func expandOne(store *Store, x, y FingerprintID, lineThreshold float64) (Region, []FingerprintID, []FingerprintID) {
	// Grow upward along prev links, in lockstep.
	upA := []FingerprintID{x}
	upB := []FingerprintID{y}
	curA, curB := x, y
	for {
		ra, rb := store.Get(curA), store.Get(curB)
		if !ra.HasPrev() || !rb.HasPrev() {
			break
		}
		pa, pb := ra.Prev, rb.Prev
		if Jaccard(store.Get(pa).Signature, store.Get(pb).Signature) < lineThreshold {
			break
		}
		curA, curB = pa, pb
		upA = append(upA, curA)
		upB = append(upB, curB)
	}

	// Grow downward along next links, in lockstep, from the original seed.
	downA := []FingerprintID{x}
	downB := []FingerprintID{y}
	curA, curB = x, y
	for {
		ra, rb := store.Get(curA), store.Get(curB)
		if !ra.HasNext() || !rb.HasNext() {
			break
		}
		na, nb := ra.Next, rb.Next
		if Jaccard(store.Get(na).Signature, store.Get(nb).Signature) < lineThreshold {
			break
		}
		curA, curB = na, nb
		downA = append(downA, curA)
		downB = append(downB, curB)
	}

	// Ascending order: reverse(upA) ++ downA[1:] (x/y appear once, at
	// the junction between the two halves).
	allA := reverseAppend(upA, downA)
	allB := reverseAppend(upB, downB)

	ra := store.Get(allA[0])
	raEnd := store.Get(allA[len(allA)-1])
	rb := store.Get(allB[0])
	rbEnd := store.Get(allB[len(allB)-1])

	region := Region{
		FileA:  ra.File,
		FileB:  rb.File,
		AStart: ra.OrigLine,
		AEnd:   raEnd.OrigLine,
		BStart: rb.OrigLine,
		BEnd:   rbEnd.OrigLine,
	}
	return region, allA, allB
}

// reverseAppend builds the ascending-order id list from an upward walk
// (seed-first, growing toward earlier lines) and a downward walk
// (seed-first, growing toward later lines).
func reverseAppend(up, down []FingerprintID) []FingerprintID {
	out := make([]FingerprintID, 0, len(up)+len(down)-1)
	for i := len(up) - 1; i >= 0; i-- {
		out = append(out, up[i])
	}
	out = append(out, down[1:]...)
	return out
}
