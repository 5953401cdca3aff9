package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hirelance/matchd/internal/adapters/http/api"
	"github.com/hirelance/matchd/internal/app"
	"github.com/hirelance/matchd/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

// fakeService implements api.Dependencies and api.StatsProvider with
// canned responses so handler behavior is tested in isolation.
type fakeService struct {
	trained    bool
	trainErr   error
	recs       []api.Recommendation
	hybridRecs []api.Recommendation
	clientRecs []api.Recommendation
	skills     []string

	lastClientID string
	lastWeight   float64
	lastTopN     int
}

func (f *fakeService) Recommend(_ context.Context, _ model.Job, topN int) ([]api.Recommendation, error) {
	if !f.trained {
		return nil, app.ErrNotTrained
	}
	f.lastTopN = topN
	return f.recs, nil
}

func (f *fakeService) RecommendHybrid(_ context.Context, _ model.Job, clientID string, weight float64, topN int) ([]api.Recommendation, error) {
	if !f.trained {
		return nil, app.ErrNotTrained
	}
	f.lastClientID = clientID
	f.lastWeight = weight
	f.lastTopN = topN
	return f.hybridRecs, nil
}

func (f *fakeService) RecommendForClient(_ context.Context, clientID string, topN int) ([]api.Recommendation, error) {
	if !f.trained {
		return nil, app.ErrNotTrained
	}
	f.lastClientID = clientID
	f.lastTopN = topN
	return f.clientRecs, nil
}

func (f *fakeService) Skills(_ context.Context) ([]string, error) {
	if !f.trained {
		return nil, app.ErrNotTrained
	}
	return f.skills, nil
}

func (f *fakeService) Train(_ context.Context) error {
	if f.trainErr != nil {
		return f.trainErr
	}
	f.trained = true
	return nil
}

func (f *fakeService) Trained() bool { return f.trained }

func (f *fakeService) GetStats() map[string]interface{} {
	return map[string]interface{}{"trained": f.trained}
}

func newTestServer(f *fakeService) *http.ServeMux {
	mux := http.NewServeMux()
	srv := api.NewServer(f, f, api.Options{TopN: 5, MaxTopN: 50, CollaborativeWeight: 0.3})
	srv.Register(context.Background(), mux)
	return mux
}

const validJobBody = `{
	"title": "Django backend",
	"skills_required": ["python", "django"],
	"budget": {"type": "hourly", "min_rate": 40, "max_rate": 60},
	"experience_level": "Intermediate",
	"timeline_days": 30
}`

func TestHandleRecommend(t *testing.T) {
	Convey("Given a trained service behind the API", t, func() {
		fake := &fakeService{
			trained: true,
			recs: []api.Recommendation{
				{Rank: 1, FreelancerID: "F001", Name: "Ana", MatchScore: 88.5},
			},
			hybridRecs: []api.Recommendation{
				{Rank: 1, FreelancerID: "F003", Name: "Cara", MatchScore: 72.1},
			},
		}
		mux := newTestServer(fake)

		Convey("When posting a valid job", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader(validJobBody)))

			Convey("Then the ranked list comes back with totals", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)

				var resp struct {
					Job             map[string]any       `json:"job"`
					Recommendations []api.Recommendation `json:"recommendations"`
					TotalMatches    int                  `json:"total_matches"`
				}
				So(json.Unmarshal(rec.Body.Bytes(), &resp), ShouldBeNil)
				So(resp.TotalMatches, ShouldEqual, 1)
				So(resp.Recommendations[0].FreelancerID, ShouldEqual, "F001")
				So(resp.Job["title"], ShouldEqual, "Django backend")
			})
		})

		Convey("When requesting the hybrid mode", func() {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost,
				"/recommend?use_collaborative=true&client_id=C1&cf_weight=0.4",
				strings.NewReader(validJobBody))
			mux.ServeHTTP(rec, req)

			Convey("Then the hybrid path runs with the requested parameters", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(fake.lastClientID, ShouldEqual, "C1")
				So(fake.lastWeight, ShouldEqual, 0.4)
			})
		})

		Convey("When the collaborative flag is set without a client id", func() {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/recommend?use_collaborative=true", strings.NewReader(validJobBody))
			mux.ServeHTTP(rec, req)

			Convey("Then the content path runs instead", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(fake.lastClientID, ShouldEqual, "")
			})
		})

		Convey("When the body is not valid JSON", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader("{not json")))

			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the job fails validation", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/recommend",
				strings.NewReader(`{"title":"x","skills_required":[],"budget":{"type":"hourly"},"timeline_days":5}`)))

			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When cf_weight is outside [0, 1]", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/recommend?cf_weight=1.5", strings.NewReader(validJobBody)))

			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When top_n exceeds the configured maximum", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/recommend?top_n=999", strings.NewReader(validJobBody)))

			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When using the wrong method", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/recommend", nil))

			So(rec.Code, ShouldEqual, http.StatusNotFound)
		})
	})

	Convey("Given an untrained service behind the API", t, func() {
		mux := newTestServer(&fakeService{trained: false})

		Convey("When posting a valid job", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader(validJobBody)))

			Convey("Then the API answers 503 with the not-trained code", func() {
				So(rec.Code, ShouldEqual, http.StatusServiceUnavailable)
				So(rec.Body.String(), ShouldContainSubstring, "not_trained")
			})
		})
	})
}

func TestHandleClientRecommendations(t *testing.T) {
	Convey("Given a trained service behind the API", t, func() {
		fake := &fakeService{
			trained:    true,
			clientRecs: []api.Recommendation{{Rank: 1, FreelancerID: "F003", MatchScore: 90}},
		}
		mux := newTestServer(fake)

		Convey("When fetching recommendations for a client", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/clients/C1/recommendations?top_n=3", nil))

			Convey("Then the prediction list comes back for that client", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(fake.lastClientID, ShouldEqual, "C1")
				So(fake.lastTopN, ShouldEqual, 3)

				var resp map[string]any
				So(json.Unmarshal(rec.Body.Bytes(), &resp), ShouldBeNil)
				So(resp["client_id"], ShouldEqual, "C1")
				So(resp["total_matches"], ShouldEqual, 1)
			})
		})

		Convey("When the client has no history", func() {
			fake.clientRecs = nil
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/clients/C999/recommendations", nil))

			Convey("Then an empty list is a 200, not an error", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Body.String(), ShouldContainSubstring, `"recommendations":[]`)
			})
		})

		Convey("When the path is malformed", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/clients/C1/other", nil))

			So(rec.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestHandleSkillsAndStats(t *testing.T) {
	Convey("Given a trained service behind the API", t, func() {
		fake := &fakeService{trained: true, skills: []string{"django", "go", "python"}}
		mux := newTestServer(fake)

		Convey("When listing skills", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/skills", nil))

			Convey("Then the vocabulary and count come back", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)

				var resp struct {
					Skills []string `json:"skills"`
					Count  int      `json:"count"`
				}
				So(json.Unmarshal(rec.Body.Bytes(), &resp), ShouldBeNil)
				So(resp.Count, ShouldEqual, 3)
				So(resp.Skills, ShouldResemble, []string{"django", "go", "python"})
			})
		})

		Convey("When fetching stats", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))

			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, `"trained":true`)
		})
	})
}

func TestHandleTrainAndHealth(t *testing.T) {
	Convey("Given an untrained service behind the API", t, func() {
		fake := &fakeService{}
		mux := newTestServer(fake)

		Convey("Then health reports starting with a 503", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			So(rec.Code, ShouldEqual, http.StatusServiceUnavailable)
			So(rec.Body.String(), ShouldContainSubstring, "starting")
		})

		Convey("When training via the API", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/train", nil))

			Convey("Then training succeeds and health flips to ok", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Body.String(), ShouldContainSubstring, `"status":"trained"`)

				health := httptest.NewRecorder()
				mux.ServeHTTP(health, httptest.NewRequest(http.MethodGet, "/healthz", nil))
				So(health.Code, ShouldEqual, http.StatusOK)
			})
		})

		Convey("Then metrics are exposed in Prometheus format", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, "matchd_matcher")
		})
	})
}
