// Package collab implements collaborative affinity prediction from
// historical client-freelancer engagements.
package collab

import (
	"math"
	"sort"

	"github.com/hirelance/matchd/internal/domain/model"
)

// Fixed neighborhood size: predictions aggregate the 5 most similar
// other clients.
const neighborhoodSize = 5

// ratingScale converts a 0..5 rating into a 0-100 percentage.
const ratingScale = 5.0

// DefaultTopN is the number of predictions returned when the caller
// does not ask for a specific count.
const DefaultTopN = 5

// Prediction is a predicted affinity for a freelancer the client has
// not engaged before.
type Prediction struct {
	Rank            int
	FreelancerID    string
	PredictedRating float64 // 0..5 scale
	MatchScore      float64 // 0-100 percentage
}

// Scored pairs a freelancer id with a 0-100 match score. Both the
// content-based and collaborative rankings reduce to this shape for
// blending.
type Scored struct {
	FreelancerID string
	Score        float64
}

// Model holds the client-by-freelancer interaction matrix. The dense
// matrix stores ratings with 0 for absent cells (the cosine algebra
// needs a plain numeric grid); the observed set records which cells
// hold a real rating, so a genuine 0-star rating is not mistaken for
// "never interacted".
type Model struct {
	matrix          [][]float64
	observed        []map[int]bool // per client row: columns with a real rating
	clientIndex     map[string]int
	freelancerIndex map[string]int
	clientIDs       []string
	freelancerIDs   []string
	trained         bool
}

// NewModel creates an untrained collaborative model.
func NewModel() *Model {
	return &Model{}
}

// Train rebuilds the interaction matrix from scratch. Ids are assigned
// row/column indexes in sorted order for determinism; when a client
// rated the same freelancer more than once, the last engagement in the
// freelancer's append-only history wins.
func (m *Model) Train(corpus []model.Freelancer) {
	clientSet := make(map[string]bool)
	freelancerSet := make(map[string]bool)
	for _, f := range corpus {
		freelancerSet[f.ID] = true
		for _, e := range f.PastProjects {
			clientSet[e.ClientID] = true
		}
	}

	m.clientIDs = sortedKeys(clientSet)
	m.freelancerIDs = sortedKeys(freelancerSet)
	m.clientIndex = indexOf(m.clientIDs)
	m.freelancerIndex = indexOf(m.freelancerIDs)

	m.matrix = make([][]float64, len(m.clientIDs))
	m.observed = make([]map[int]bool, len(m.clientIDs))
	for i := range m.matrix {
		m.matrix[i] = make([]float64, len(m.freelancerIDs))
		m.observed[i] = make(map[int]bool)
	}

	for _, f := range corpus {
		col := m.freelancerIndex[f.ID]
		for _, e := range f.PastProjects {
			row := m.clientIndex[e.ClientID]
			m.matrix[row][col] = float64(e.Rating)
			m.observed[row][col] = true
		}
	}

	m.trained = true
}

// Trained reports whether Train has completed.
func (m *Model) Trained() bool {
	return m.trained
}

// Clients returns the number of distinct clients in the matrix.
func (m *Model) Clients() int {
	return len(m.clientIDs)
}

// Freelancers returns the number of freelancer columns in the matrix.
func (m *Model) Freelancers() int {
	return len(m.freelancerIDs)
}

// PredictForClient predicts affinities for freelancers the client has
// never engaged, from the 5 most similar other clients' ratings. An
// unknown client or one with no recorded interactions yields an empty
// result, not an error.
func (m *Model) PredictForClient(clientID string, topN int) ([]Prediction, error) {
	if !m.trained {
		return nil, ErrNotTrained
	}
	if topN <= 0 {
		topN = DefaultTopN
	}

	row, ok := m.clientIndex[clientID]
	if !ok || len(m.observed[row]) == 0 {
		return nil, nil
	}

	neighbors := m.nearestClients(row)
	if len(neighbors) == 0 {
		return nil, nil
	}

	// Similarity-weighted average of the neighbors' ratings per column.
	var weightSum float64
	for _, n := range neighbors {
		weightSum += n.similarity
	}
	if weightSum == 0 {
		return nil, nil
	}

	predictions := make([]Prediction, 0, len(m.freelancerIDs))
	for col, fid := range m.freelancerIDs {
		if m.observed[row][col] {
			// Never re-recommend someone the client already rated.
			continue
		}
		var weighted float64
		for _, n := range neighbors {
			weighted += n.similarity * m.matrix[n.row][col]
		}
		predicted := weighted / weightSum
		if predicted <= 0 {
			continue
		}
		predictions = append(predictions, Prediction{
			FreelancerID:    fid,
			PredictedRating: predicted,
			MatchScore:      predicted / ratingScale * 100,
		})
	}

	sort.SliceStable(predictions, func(i, j int) bool {
		if predictions[i].PredictedRating != predictions[j].PredictedRating {
			return predictions[i].PredictedRating > predictions[j].PredictedRating
		}
		return predictions[i].FreelancerID < predictions[j].FreelancerID
	})
	if len(predictions) > topN {
		predictions = predictions[:topN]
	}
	for i := range predictions {
		predictions[i].Rank = i + 1
	}
	return predictions, nil
}

// neighbor is one similar client row.
type neighbor struct {
	row        int
	similarity float64
}

// nearestClients returns up to neighborhoodSize other clients ordered
// by cosine similarity to the given row. Self is excluded by index and
// ties break by row index ascending for determinism.
func (m *Model) nearestClients(row int) []neighbor {
	neighbors := make([]neighbor, 0, len(m.matrix)-1)
	for other := range m.matrix {
		if other == row {
			continue
		}
		sim := cosine(m.matrix[row], m.matrix[other])
		if sim <= 0 {
			continue
		}
		neighbors = append(neighbors, neighbor{row: other, similarity: sim})
	}
	sort.SliceStable(neighbors, func(i, j int) bool {
		if neighbors[i].similarity != neighbors[j].similarity {
			return neighbors[i].similarity > neighbors[j].similarity
		}
		return neighbors[i].row < neighbors[j].row
	})
	if len(neighbors) > neighborhoodSize {
		neighbors = neighbors[:neighborhoodSize]
	}
	return neighbors
}

// cosine is the normalized dot product of two equal-length rows.
// Returns 0 when either row has zero magnitude.
func cosine(a, b []float64) float64 {
	var dot, aNorm, bNorm float64
	for i := range a {
		dot += a[i] * b[i]
		aNorm += a[i] * a[i]
		bNorm += b[i] * b[i]
	}
	if aNorm == 0 || bNorm == 0 {
		return 0
	}
	return dot / (math.Sqrt(aNorm) * math.Sqrt(bNorm))
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func indexOf(ids []string) map[string]int {
	idx := make(map[string]int, len(ids))
	for i, id := range ids {
		idx[id] = i
	}
	return idx
}
