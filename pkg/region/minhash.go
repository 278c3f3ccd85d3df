package region

import (
	"math/rand/v2"
	"sort"
)

// Vocabulary assigns a stable, dense index to every distinct shingle
// observed across a run. Indexing order is deterministic for a given
// input (insertion order over a single pass, each set's shingles taken
// in sorted order).
type Vocabulary struct {
	index map[string]uint32
}

// NewVocabulary builds a vocabulary from a sequence of shingle sets,
// visited in the given order.
func NewVocabulary(shingleSets []map[string]struct{}) *Vocabulary {
	v := &Vocabulary{index: make(map[string]uint32)}
	for _, set := range shingleSets {
		keys := make([]string, 0, len(set))
		for s := range set {
			keys = append(keys, s)
		}
		sort.Strings(keys)
		for _, s := range keys {
			if _, ok := v.index[s]; !ok {
				v.index[s] = uint32(len(v.index))
			}
		}
	}
	return v
}

// Len returns V, the vocabulary size.
func (v *Vocabulary) Len() int { return len(v.index) }

// IndexOf returns the dense index for shingle s and true, or (0, false)
// if s was never observed during vocabulary construction.
func (v *Vocabulary) IndexOf(s string) (uint32, bool) {
	idx, ok := v.index[s]
	return idx, ok
}

// permutationTable holds N permutations of 0..V-1, generated from a
// seeded PRNG so that a given input and seed always yields the same
// output — the source's use of Python's non-seeded random.shuffle
// precluded reproducibility; this replaces it with a seeded generator.
type permutationTable struct {
	perms [][]uint32 // perms[i][j] = permuted value for vocabulary index j under permutation i
}

// newPermutationTable generates n permutations of 0..size-1 using a
// Fisher-Yates shuffle driven by a PCG source seeded from seed.
func newPermutationTable(n, size int, seed uint64) *permutationTable {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	perms := make([][]uint32, n)
	for i := 0; i < n; i++ {
		p := make([]uint32, size)
		for j := range p {
			p[j] = uint32(j)
		}
		for j := size - 1; j > 0; j-- {
			k := rng.IntN(j + 1)
			p[j], p[k] = p[k], p[j]
		}
		perms[i] = p
	}
	return &permutationTable{perms: perms}
}

// n returns the number of permutations (the signature length N).
func (t *permutationTable) n() int { return len(t.perms) }

// Signature computes the MinHash signature for a shingle set given this
// permutation table and vocabulary. Shingles absent from the vocabulary
// (not possible in the single-pass design, but handled for safety) are
// ignored. A set with no vocabulary hits produces the constant fallback
// signature [V, V, ..., V], matching the source's defined edge case.
func (t *permutationTable) Signature(shingles map[string]struct{}, vocab *Vocabulary) Signature {
	var indices []uint32
	for s := range shingles {
		if idx, ok := vocab.IndexOf(s); ok {
			indices = append(indices, idx)
		}
	}

	sig := make(Signature, t.n())
	if len(indices) == 0 {
		fallback := uint32(vocab.Len())
		for i := range sig {
			sig[i] = fallback
		}
		return sig
	}

	for i, perm := range t.perms {
		min := perm[indices[0]]
		for _, idx := range indices[1:] {
			if v := perm[idx]; v < min {
				min = v
			}
		}
		sig[i] = min
	}
	return sig
}

// Jaccard returns the fraction of equal components between two
// signatures — the estimator for set Jaccard similarity that banding
// and candidate-edge formation rely on. Signatures of differing length
// return 0, never an error: a length mismatch can only arise from a bug
// elsewhere, and the spec treats it as "no contribution" rather than
// fatal at this layer.
func Jaccard(a, b Signature) float64 {
	n := len(a)
	if n == 0 || n != len(b) {
		return 0.0
	}
	matches := a.equalCount(b)
	if matches < 0 {
		return 0.0
	}
	return float64(matches) / float64(n)
}
