package region

import (
	"encoding/binary"
	"fmt"
)

// bandBucketKey uniquely identifies a band bucket: the band index plus
// the band's own integer contents, packed into a comparable byte
// string so it can key a Go map without reflection over a slice.
type bandBucketKey string

func bandKey(bandIdx int, band Signature) bandBucketKey {
	buf := make([]byte, 4+4*len(band))
	binary.LittleEndian.PutUint32(buf, uint32(bandIdx))
	for i, v := range band {
		binary.LittleEndian.PutUint32(buf[4+4*i:], v)
	}
	return bandBucketKey(buf)
}

// Bander partitions signatures into bandCount equal-width bands and
// buckets signed lines that share an identical band.
type Bander struct {
	bandCount int
}

// NewBander creates a Bander with the given band count B.
func NewBander(bandCount int) *Bander {
	return &Bander{bandCount: bandCount}
}

// Buckets partitions every record in store into bandCount bands and
// groups fingerprint ids that land in the same (band index, band
// contents) bucket. Returns ErrConfig if the signature length is not
// evenly divisible by the band count — the run's configuration
// precondition.
func (b *Bander) Buckets(store *Store) (map[bandBucketKey][]FingerprintID, error) {
	if store.Len() == 0 {
		return map[bandBucketKey][]FingerprintID{}, nil
	}

	n := len(store.Records[0].Signature)
	if b.bandCount == 0 || n%b.bandCount != 0 {
		return nil, fmt.Errorf("signature length %d not divisible by band count %d: %w", n, b.bandCount, ErrConfig)
	}
	r := n / b.bandCount

	buckets := make(map[bandBucketKey][]FingerprintID)
	for i := range store.Records {
		rec := &store.Records[i]
		id := FingerprintID(i)
		for bi := 0; bi < b.bandCount; bi++ {
			band := rec.Signature[bi*r : (bi+1)*r]
			key := bandKey(bi, band)
			buckets[key] = append(buckets[key], id)
		}
	}
	return buckets, nil
}
