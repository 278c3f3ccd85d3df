package region

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"
)

var detectLog = log.New(os.Stderr, "[dupefind:region] ", log.Ltime)

// Config configures a similarity-detection run. Only Files is required;
// every threshold and internal constant falls back to its documented
// default.
type Config struct {
	// Files is the already-filtered list of readable file paths to
	// analyze. The core performs no directory walking or extension
	// filtering — see pkg/walker and pkg/ignore for that collaborator.
	Files []string

	// RegionLength is the minimum emitted region length, in lines
	// (default DefaultRegionLength).
	RegionLength int
	// CandidateThreshold is the MinHash-Jaccard cutoff for candidate
	// edge creation (default DefaultCandidateThreshold).
	CandidateThreshold float64
	// LineThreshold is the per-line similarity required to continue
	// growing a region (default DefaultLineThreshold).
	LineThreshold float64

	// SignatureLength is N (default SignatureLength constant).
	SignatureLength int
	// BandCount is B (default BandCount constant). SignatureLength
	// must be evenly divisible by BandCount.
	BandCount int
	// ShingleSize is k (default ShingleSize constant).
	ShingleSize int
	// Seed seeds the MinHash permutation generator (default DefaultSeed).
	Seed uint64

	// StrictVisitedDiagonalOnly narrows the region expander's
	// visited-set marking to only the ids walked in lockstep, instead
	// of the full cross-product the source implementation used. See
	// the design notes for the tradeoff.
	StrictVisitedDiagonalOnly bool

	// Progress is called periodically during signature construction
	// and region expansion. May be nil.
	Progress ProgressFunc
}

func (cfg *Config) defaults() (regionLength int, candidateThreshold, lineThreshold float64, sigLen, bandCount, shingleSize int, seed uint64) {
	regionLength = DefaultRegionLength
	if cfg.RegionLength > 0 {
		regionLength = cfg.RegionLength
	}
	candidateThreshold = DefaultCandidateThreshold
	if cfg.CandidateThreshold > 0 {
		candidateThreshold = cfg.CandidateThreshold
	}
	lineThreshold = DefaultLineThreshold
	if cfg.LineThreshold > 0 {
		lineThreshold = cfg.LineThreshold
	}
	sigLen = SignatureLength
	if cfg.SignatureLength > 0 {
		sigLen = cfg.SignatureLength
	}
	bandCount = BandCount
	if cfg.BandCount > 0 {
		bandCount = cfg.BandCount
	}
	shingleSize = ShingleSize
	if cfg.ShingleSize > 0 {
		shingleSize = cfg.ShingleSize
	}
	seed = DefaultSeed
	if cfg.Seed != 0 {
		seed = cfg.Seed
	}
	return
}

// validate checks the effective configuration against spec.md §6/§7's
// ConfigError conditions.
func validate(regionLength int, candidateThreshold, lineThreshold float64, sigLen, bandCount int) error {
	if regionLength < 1 {
		return Fatal(fmt.Errorf("region_length must be >= 1, got %d: %w", regionLength, ErrConfig))
	}
	if candidateThreshold < 0 || candidateThreshold > 1 {
		return Fatal(fmt.Errorf("candidate_threshold must be in [0,1], got %g: %w", candidateThreshold, ErrConfig))
	}
	if lineThreshold < 0 || lineThreshold > 1 {
		return Fatal(fmt.Errorf("line_threshold must be in [0,1], got %g: %w", lineThreshold, ErrConfig))
	}
	if bandCount <= 0 || sigLen%bandCount != 0 {
		return Fatal(fmt.Errorf("signature length %d not divisible by band count %d: %w", sigLen, bandCount, ErrConfig))
	}
	return nil
}

// Result summarizes one run of the pipeline.
type Result struct {
	RunID          string
	FilesAnalyzed  int
	FilesSkipped   int
	LinesSigned    int
	CandidateEdges int
	RegionsEmitted int
	Duration       time.Duration
}

// Detect runs the full similarity pipeline — normalize, shingle,
// MinHash, band, candidate graph, expand, rank — over cfg.Files and
// returns the ranked, deduplicated regions plus a run summary.
//
// On ConfigError or InvariantViolation the run aborts and no partial
// result is returned, per spec.md §6's failure semantics.
func Detect(cfg Config) ([]Region, *Result, error) {
	start := time.Now()
	regionLength, candidateThreshold, lineThreshold, sigLen, bandCount, shingleSize, seed := cfg.defaults()
	if err := validate(regionLength, candidateThreshold, lineThreshold, sigLen, bandCount); err != nil {
		return nil, nil, err
	}

	result := &Result{RunID: ulid.Make().String()}

	// Phase 1: normalize every file in parallel. Per-file failures
	// degrade gracefully — the file is skipped, the run continues.
	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}

	normalized := make([]*NormalizedFile, len(cfg.Files))
	var skipped int64

	g := new(errgroup.Group)
	g.SetLimit(workers)
	for i, path := range cfg.Files {
		i, path := i, path
		g.Go(func() error {
			nf, err := Normalize(path)
			if err != nil {
				detectLog.Printf("skip %s: %v", path, err)
				atomic.AddInt64(&skipped, 1)
				return nil
			}
			if len(nf.CodeLines) == 0 {
				atomic.AddInt64(&skipped, 1)
				return nil
			}
			normalized[i] = nf
			return nil
		})
	}
	_ = g.Wait() // per-file errors are swallowed above; never propagates

	var files []*NormalizedFile
	for _, nf := range normalized {
		if nf != nil {
			files = append(files, nf)
		}
	}
	result.FilesAnalyzed = len(files)
	result.FilesSkipped = int(skipped)

	// Phase 2: vocabulary construction — sequential, deterministic
	// iteration order over files then lines.
	var allShingles []map[string]struct{}
	for _, nf := range files {
		for _, line := range nf.CodeLines {
			allShingles = append(allShingles, Shingles(line, shingleSize))
		}
	}
	vocab := NewVocabulary(allShingles)
	perms := newPermutationTable(sigLen, vocab.Len(), seed)

	// Phase 3: signature construction, in parallel per file. Each file is
	// signed into its own store; the stores are then concatenated in file
	// order, so fingerprint ids do not depend on goroutine scheduling.
	store := NewStore()
	perFile := make([]*Store, len(files))
	g = new(errgroup.Group)
	g.SetLimit(workers)
	var signedTotal int64
	for i, nf := range files {
		i, nf := i, nf
		g.Go(func() error {
			fileStore := NewStore()
			ids := fileStore.AddFile(nf, vocab, perms, shingleSize)
			perFile[i] = fileStore
			atomic.AddInt64(&signedTotal, int64(len(ids)))
			if cfg.Progress != nil {
				cfg.Progress("signature", len(ids), len(nf.CodeLines))
			}
			return nil
		})
	}
	_ = g.Wait()
	for _, fileStore := range perFile {
		base := FingerprintID(store.Len())
		for _, rec := range fileStore.Records {
			if rec.HasPrev() {
				rec.Prev += base
			}
			if rec.HasNext() {
				rec.Next += base
			}
			store.Records = append(store.Records, rec)
		}
	}
	result.LinesSigned = int(signedTotal)

	if err := checkInvariants(store, sigLen); err != nil {
		return nil, nil, Fatal(err)
	}

	// Phase 4: LSH banding.
	bander := NewBander(bandCount)
	buckets, err := bander.Buckets(store)
	if err != nil {
		return nil, nil, Fatal(err)
	}

	// Phase 5: candidate graph.
	graph := BuildCandidateGraph(store, buckets, candidateThreshold)
	edgeCount := 0
	for _, n := range graph.Nodes() {
		edgeCount += len(graph.Neighbors(n))
	}
	result.CandidateEdges = edgeCount / 2 // each undirected edge counted from both ends

	// Phase 6: region expansion.
	regions := ExpandRegions(store, graph, lineThreshold, cfg.StrictVisitedDiagonalOnly, cfg.Progress)

	// Phase 7: rank and dedup.
	ranked := Rank(regions, regionLength)

	// Phase 8: attach original source text to each emitted region.
	ranked, err = fillCode(ranked)
	if err != nil {
		return nil, nil, err
	}

	result.RegionsEmitted = len(ranked)
	result.Duration = time.Since(start)
	return ranked, result, nil
}

// checkInvariants verifies the data model's structural invariants
// (spec.md §3): every signature has the configured length, and
// prev/next links are reflexive within the same file.
func checkInvariants(store *Store, sigLen int) error {
	for i := range store.Records {
		r := &store.Records[i]
		if len(r.Signature) != sigLen {
			return fmt.Errorf("record %d has signature length %d, want %d: %w", i, len(r.Signature), sigLen, ErrInvariant)
		}
		if r.HasNext() {
			next := store.Get(r.Next)
			if next.Prev != FingerprintID(i) || next.File != r.File {
				return fmt.Errorf("record %d/%d prev/next not reflexive: %w", i, r.Next, ErrInvariant)
			}
		}
	}
	return nil
}
