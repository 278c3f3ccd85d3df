package region

// Default configuration values for the similarity engine.
// These are the single source of truth — referenced by Config.defaults()
// and pkg/config's loader.
const (
	// DefaultRegionLength is the minimum region length (in lines) emitted
	// by the ranker.
	DefaultRegionLength = 10

	// DefaultCandidateThreshold is the MinHash-Jaccard cutoff used when
	// deciding whether two co-bucketed lines become a candidate edge.
	DefaultCandidateThreshold = 0.6

	// DefaultLineThreshold is the per-line similarity required to
	// continue growing a region during expansion.
	DefaultLineThreshold = 0.8

	// ShingleSize is the fixed shingle length k used by the shingler.
	// Internal per spec; may be overridden by advanced configuration.
	ShingleSize = 5

	// SignatureLength is N, the number of MinHash permutations computed
	// per signed line.
	SignatureLength = 100

	// BandCount is B, the number of equal-width bands the LSH bander
	// slices each signature into. SignatureLength must be evenly
	// divisible by BandCount.
	BandCount = 10

	// DefaultSeed seeds the permutation generator so that a given input
	// and configuration always yields the same output.
	DefaultSeed = 0x6475706566696e64 // "dupefind" packed into a uint64

	// MaxFileSize is the maximum file size (in bytes) the normalizer
	// reads. Files larger than this are skipped with a
	// NormalizationWarning.
	MaxFileSize = 2 * 1024 * 1024

	// progressBatchSize is how often Config.Progress is invoked during
	// region expansion, measured in candidate edges processed.
	progressBatchSize = 500
)
