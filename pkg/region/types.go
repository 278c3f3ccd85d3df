package region

// nullID is the sentinel used in place of a missing prev/next link, per
// the dense-integer-index design (no hashmap string keys in the
// expansion inner loop).
const nullID int32 = -1

// FingerprintID identifies a signed (normalized, non-empty-shingle-set)
// line within the run. It is a dense index into a Store's records slice,
// not a (file, line) pair — the pair is recoverable via the record
// itself but is never used as a map key.
type FingerprintID int32

// Signature is a MinHash signature: SignatureLength integers, each the
// minimum permuted vocabulary index over a line's shingle set.
type Signature []uint32

// equalCount reports the count of equal components between two signatures
// of the same length (-1 if the lengths differ), used by the
// signature-Jaccard similarity measure.
func (s Signature) equalCount(other Signature) int {
	n := len(s)
	if n != len(other) {
		return -1
	}
	count := 0
	for i := 0; i < n; i++ {
		if s[i] == other[i] {
			count++
		}
	}
	return count
}

// SignatureRecord is one signed line: its signature plus enough context
// to report and to walk the per-file doubly linked ordering.
type SignatureRecord struct {
	File        string
	NormIndex   int // index within the file's normalized code_lines
	OrigLine    int // 1-based original line number
	Text        string
	Signature   Signature
	Prev        FingerprintID // nullID if first signed line of file
	Next        FingerprintID // nullID if last signed line of file
}

// HasPrev reports whether this record has a predecessor in the same file.
func (r *SignatureRecord) HasPrev() bool { return r.Prev != FingerprintID(nullID) }

// HasNext reports whether this record has a successor in the same file.
func (r *SignatureRecord) HasNext() bool { return r.Next != FingerprintID(nullID) }

// NormalizedFile is the Normalizer's output for one file: parallel
// slices of code lines and their original 1-based line numbers.
type NormalizedFile struct {
	Path             string
	CodeLines        []string
	OriginalLineNums []int
}

// Region is a contiguous line range in FileA paired with a contiguous
// line range in FileB, grown from a single candidate line pair. Line
// numbers are 1-based and inclusive, referring to the original file
// text.
type Region struct {
	FileA, FileB string
	AStart, AEnd int
	BStart, BEnd int
	CodeA, CodeB string
}

// Length is the larger of the two per-file line spans, used both for
// the region_length gate and for ranking.
func (r Region) Length() int {
	spanA := r.AEnd - r.AStart + 1
	spanB := r.BEnd - r.BStart + 1
	if spanB > spanA {
		return spanB
	}
	return spanA
}
