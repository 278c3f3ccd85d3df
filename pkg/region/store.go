package region

import "sync"

// Store holds every signed line's signature record, indexed by
// FingerprintID (a dense index into Records — never a hashmap lookup in
// the expansion inner loop, per the dense-integer-index design).
type Store struct {
	mu      sync.Mutex
	Records []SignatureRecord
}

// NewStore creates an empty signature store.
func NewStore() *Store {
	return &Store{}
}

// AddFile appends one signature record per signed line of a normalized
// file (lines whose shingle set is non-empty), in line order, and links
// prev_id/next_id between consecutive signed lines of that file in the
// same pass — file records are always added as a contiguous block, so
// the "second pass" the data model describes collapses into the append
// itself. Lines with no shingles (len <= ShingleSize) are absent from
// the store, per the data model's Signature definition.
//
// Returns the FingerprintIDs assigned, in file order.
func (s *Store) AddFile(nf *NormalizedFile, vocab *Vocabulary, perms *permutationTable, shingleSize int) []FingerprintID {
	type pending struct {
		normIdx  int
		origLine int
		text     string
		sig      Signature
	}

	var signed []pending
	for i, line := range nf.CodeLines {
		shingles := Shingles(line, shingleSize)
		if shingles == nil {
			continue
		}
		signed = append(signed, pending{
			normIdx:  i,
			origLine: nf.OriginalLineNums[i],
			text:     line,
			sig:      perms.Signature(shingles, vocab),
		})
	}
	if len(signed) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	base := FingerprintID(len(s.Records))
	ids := make([]FingerprintID, len(signed))
	for i, p := range signed {
		id := base + FingerprintID(i)
		ids[i] = id

		prev := FingerprintID(nullID)
		if i > 0 {
			prev = base + FingerprintID(i-1)
		}
		next := FingerprintID(nullID)
		if i < len(signed)-1 {
			next = base + FingerprintID(i+1)
		}

		s.Records = append(s.Records, SignatureRecord{
			File:      nf.Path,
			NormIndex: p.normIdx,
			OrigLine:  p.origLine,
			Text:      p.text,
			Signature: p.sig,
			Prev:      prev,
			Next:      next,
		})
	}
	return ids
}

// Get returns the record for id. Callers must treat the Store as
// read-only once all AddFile calls for a run have completed — this is
// the "immutable after its constructing phase" lifecycle the data model
// requires.
func (s *Store) Get(id FingerprintID) *SignatureRecord {
	return &s.Records[id]
}

// Len returns the total number of signed lines in the store.
func (s *Store) Len() int { return len(s.Records) }
