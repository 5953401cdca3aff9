package collab

import "sort"

// Blend merges a content-ranked list with this model's predictions for
// the client. When the model has nothing for the client, the content
// list is returned unchanged; blending never fails a request.
//
// Both inputs carry 0-100 scores. The union of freelancer ids from
// either list is re-scored as (1-w)*content + w*collaborative, with a
// missing score on either side counting as 0, then re-sorted and
// truncated to the length of the content list.
func (m *Model) Blend(clientID string, content []Scored, collaborativeWeight float64) ([]Scored, error) {
	if !m.trained {
		return nil, ErrNotTrained
	}

	predictions, err := m.PredictForClient(clientID, DefaultTopN)
	if err != nil {
		return nil, err
	}
	if len(predictions) == 0 {
		return content, nil
	}

	contentScores := make(map[string]float64, len(content))
	for _, s := range content {
		contentScores[s.FreelancerID] = s.Score
	}
	collabScores := make(map[string]float64, len(predictions))
	for _, p := range predictions {
		collabScores[p.FreelancerID] = p.MatchScore
	}

	union := make(map[string]bool, len(contentScores)+len(collabScores))
	for id := range contentScores {
		union[id] = true
	}
	for id := range collabScores {
		union[id] = true
	}

	blended := make([]Scored, 0, len(union))
	for id := range union {
		hybrid := (1-collaborativeWeight)*contentScores[id] + collaborativeWeight*collabScores[id]
		blended = append(blended, Scored{FreelancerID: id, Score: hybrid})
	}

	sort.SliceStable(blended, func(i, j int) bool {
		if blended[i].Score != blended[j].Score {
			return blended[i].Score > blended[j].Score
		}
		return blended[i].FreelancerID < blended[j].FreelancerID
	})
	if len(blended) > len(content) {
		blended = blended[:len(content)]
	}
	return blended, nil
}
