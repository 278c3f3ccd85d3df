package region

import "sort"

// Graph is the undirected candidate adjacency: two fingerprint ids are
// connected if they shared a band bucket and their signature Jaccard
// strictly exceeds the candidate threshold. Both traversal order over nodes and
// over each node's neighbors is deterministic (first-seen order),
// matching the region expander's ordering requirement.
type Graph struct {
	order     []FingerprintID
	seenNode  map[FingerprintID]bool
	neighbors map[FingerprintID][]FingerprintID
	edgeSeen  map[FingerprintID]map[FingerprintID]bool
}

// NewGraph creates an empty candidate graph.
func NewGraph() *Graph {
	return &Graph{
		seenNode:  make(map[FingerprintID]bool),
		neighbors: make(map[FingerprintID][]FingerprintID),
		edgeSeen:  make(map[FingerprintID]map[FingerprintID]bool),
	}
}

func (g *Graph) touchNode(id FingerprintID) {
	if !g.seenNode[id] {
		g.seenNode[id] = true
		g.order = append(g.order, id)
	}
}

// addDirected records a -> b, idempotently.
func (g *Graph) addDirected(a, b FingerprintID) {
	g.touchNode(a)
	if g.edgeSeen[a] == nil {
		g.edgeSeen[a] = make(map[FingerprintID]bool)
	}
	if g.edgeSeen[a][b] {
		return
	}
	g.edgeSeen[a][b] = true
	g.neighbors[a] = append(g.neighbors[a], b)
}

// AddEdge adds both directions of an undirected edge. Duplicate edges
// are idempotent.
func (g *Graph) AddEdge(a, b FingerprintID) {
	g.addDirected(a, b)
	g.addDirected(b, a)
}

// Nodes returns every node with at least one edge, in first-seen order.
func (g *Graph) Nodes() []FingerprintID { return g.order }

// Neighbors returns id's neighbors in first-seen order.
func (g *Graph) Neighbors(id FingerprintID) []FingerprintID { return g.neighbors[id] }

// BuildCandidateGraph enumerates all unordered pairs within each bucket
// of two or more members and adds a candidate edge wherever signature
// Jaccard strictly exceeds candidateThreshold, per spec.md §4.6 and the
// original source's `if similarity > similiarity_threshold`. Signatures
// of differing length produce similarity 0 and never an edge.
func BuildCandidateGraph(store *Store, buckets map[bandBucketKey][]FingerprintID, candidateThreshold float64) *Graph {
	g := NewGraph()

	// Map iteration order is randomized by the runtime; sort bucket keys
	// so that node/neighbor first-seen order (and therefore region
	// traversal order) is deterministic across runs of the same input.
	keys := make([]bandBucketKey, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for _, key := range keys {
		ids := buckets[key]
		if len(ids) < 2 {
			continue
		}
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				a, b := ids[i], ids[j]
				sim := Jaccard(store.Get(a).Signature, store.Get(b).Signature)
				if sim > candidateThreshold {
					g.AddEdge(a, b)
				}
			}
		}
	}
	return g
}
