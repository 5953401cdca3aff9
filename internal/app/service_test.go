package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hirelance/matchd/internal/adapters/repository"
	"github.com/hirelance/matchd/internal/app"
	"github.com/hirelance/matchd/internal/domain/model"
	"github.com/hirelance/matchd/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	_ = logger.Init()
}

// serviceCorpus sets up three freelancers with distinct skill profiles
// and enough engagement history for collaborative predictions.
func serviceCorpus() []model.Freelancer {
	engage := func(client string, rating int) model.Engagement {
		return model.Engagement{ProjectID: "p", ClientID: client, Rating: rating}
	}
	return []model.Freelancer{
		{
			ID: "F001", Name: "Ana", Skills: []string{"python", "django", "postgresql"},
			HourlyRate: 50, ExperienceYears: 6, ExperienceLevel: model.LevelAdvanced,
			CompletedProjects: 24, AvgRating: 4.8,
			PastProjects: []model.Engagement{engage("C1", 5), engage("C2", 4)},
		},
		{
			ID: "F002", Name: "Ben", Skills: []string{"javascript", "react"},
			HourlyRate: 45, ExperienceYears: 3, ExperienceLevel: model.LevelIntermediate,
			CompletedProjects: 10, AvgRating: 4.5,
			PastProjects: []model.Engagement{engage("C1", 4), engage("C2", 5)},
		},
		{
			ID: "F003", Name: "Cara", Skills: []string{"python", "machine-learning"},
			HourlyRate: 90, ExperienceYears: 12, ExperienceLevel: model.LevelExpert,
			CompletedProjects: 40, AvgRating: 4.9,
			PastProjects: []model.Engagement{engage("C2", 5), engage("C3", 3)},
		},
	}
}

func pythonJob() model.Job {
	return model.Job{
		ID:              "J001",
		Title:           "Django backend for a marketplace",
		SkillsRequired:  []string{"python", "django"},
		Budget:          model.Budget{Type: model.BudgetHourly, MinRate: 40, MaxRate: 60},
		ExperienceLevel: model.LevelIntermediate,
		TimelineDays:    45,
	}
}

func newTrainedService(ctx context.Context) *app.Service {
	store := repository.NewMemStore()
	store.Replace(serviceCorpus(), nil)
	svc := app.New(store, app.WithLogger(logger.Get()))
	So(svc.Train(ctx), ShouldBeNil)
	return svc
}

func TestServiceTrain(t *testing.T) {
	ctx := context.Background()

	Convey("Given an untrained service", t, func() {
		store := repository.NewMemStore()
		store.Replace(serviceCorpus(), nil)
		svc := app.New(store, app.WithLogger(logger.Get()))

		Convey("Then read paths fail with the not-trained kind", func() {
			So(svc.Trained(), ShouldBeFalse)

			_, err := svc.Recommend(ctx, pythonJob(), 5)
			So(errors.Is(err, app.ErrNotTrained), ShouldBeTrue)

			_, err = svc.Skills(ctx)
			So(errors.Is(err, app.ErrNotTrained), ShouldBeTrue)

			_, err = svc.RecommendForClient(ctx, "C1", 5)
			So(errors.Is(err, app.ErrNotTrained), ShouldBeTrue)
		})

		Convey("When training", func() {
			err := svc.Train(ctx)

			Convey("Then the service becomes ready", func() {
				So(err, ShouldBeNil)
				So(svc.Trained(), ShouldBeTrue)
			})

			Convey("And stats reflect the corpus shape", func() {
				So(err, ShouldBeNil)
				stats := svc.GetStats()
				So(stats["trained"], ShouldEqual, true)
				So(stats["freelancers"], ShouldEqual, 3)
				So(stats["clients"], ShouldEqual, 3)
			})
		})

		Convey("When training on an empty corpus", func() {
			store.Replace(nil, nil)

			Convey("Then training fails and the service stays untrained", func() {
				So(svc.Train(ctx), ShouldNotBeNil)
				So(svc.Trained(), ShouldBeFalse)
			})
		})
	})
}

func TestServiceRecommend(t *testing.T) {
	ctx := context.Background()

	Convey("Given a trained service", t, func() {
		svc := newTrainedService(ctx)

		Convey("When recommending for a python job", func() {
			recs, err := svc.Recommend(ctx, pythonJob(), 5)
			So(err, ShouldBeNil)

			Convey("Then the closest skill match ranks first", func() {
				So(len(recs), ShouldEqual, 3)
				So(recs[0].FreelancerID, ShouldEqual, "F001")
				So(recs[0].Rank, ShouldEqual, 1)
			})

			Convey("And scores are 0-100 percentages in descending order", func() {
				for i, r := range recs {
					So(r.MatchScore, ShouldBeBetweenOrEqual, 0, 100)
					So(r.Rank, ShouldEqual, i+1)
					if i > 0 {
						So(r.MatchScore, ShouldBeLessThanOrEqualTo, recs[i-1].MatchScore)
					}
				}
			})

			Convey("And the skill mismatch ranks below both python developers", func() {
				So(recs[2].FreelancerID, ShouldEqual, "F002")
			})
		})

		Convey("When recommending twice for the same job", func() {
			a, err := svc.Recommend(ctx, pythonJob(), 5)
			So(err, ShouldBeNil)
			b, err := svc.Recommend(ctx, pythonJob(), 5)
			So(err, ShouldBeNil)

			Convey("Then results are identical", func() {
				So(b, ShouldResemble, a)
			})
		})

		Convey("When limiting the result count", func() {
			recs, err := svc.Recommend(ctx, pythonJob(), 1)
			So(err, ShouldBeNil)

			Convey("Then only the best match returns", func() {
				So(len(recs), ShouldEqual, 1)
				So(recs[0].FreelancerID, ShouldEqual, "F001")
			})
		})
	})
}

func TestServiceRecommendHybrid(t *testing.T) {
	ctx := context.Background()

	Convey("Given a trained service", t, func() {
		svc := newTrainedService(ctx)

		Convey("When the client has no interaction history", func() {
			content, err := svc.Recommend(ctx, pythonJob(), 5)
			So(err, ShouldBeNil)
			hybrid, err := svc.RecommendHybrid(ctx, pythonJob(), "C999", 0.3, 5)
			So(err, ShouldBeNil)

			Convey("Then the hybrid result degrades to the content ranking", func() {
				So(len(hybrid), ShouldEqual, len(content))
				for i := range hybrid {
					So(hybrid[i].FreelancerID, ShouldEqual, content[i].FreelancerID)
					So(hybrid[i].MatchScore, ShouldEqual, content[i].MatchScore)
				}
			})
		})

		Convey("When the client has history", func() {
			hybrid, err := svc.RecommendHybrid(ctx, pythonJob(), "C1", 0.3, 5)

			Convey("Then blending succeeds and keeps the content list length", func() {
				So(err, ShouldBeNil)
				So(len(hybrid), ShouldEqual, 3)
				for i, r := range hybrid {
					So(r.Rank, ShouldEqual, i+1)
					So(r.MatchScore, ShouldBeBetweenOrEqual, 0, 100)
				}
			})
		})
	})
}

func TestServiceRecommendForClient(t *testing.T) {
	ctx := context.Background()

	Convey("Given a trained service", t, func() {
		svc := newTrainedService(ctx)

		Convey("When predicting for a client with overlapping history", func() {
			recs, err := svc.RecommendForClient(ctx, "C1", 5)
			So(err, ShouldBeNil)

			Convey("Then only unengaged freelancers appear, hydrated from the corpus", func() {
				So(len(recs), ShouldEqual, 1)
				So(recs[0].FreelancerID, ShouldEqual, "F003")
				So(recs[0].Name, ShouldEqual, "Cara")
			})
		})

		Convey("When predicting for an unknown client", func() {
			recs, err := svc.RecommendForClient(ctx, "C999", 5)

			Convey("Then the result is empty, not an error", func() {
				So(err, ShouldBeNil)
				So(recs, ShouldBeEmpty)
			})
		})
	})
}

func TestServiceSkills(t *testing.T) {
	ctx := context.Background()

	Convey("Given a trained service", t, func() {
		svc := newTrainedService(ctx)

		Convey("When listing skills", func() {
			skills, err := svc.Skills(ctx)
			So(err, ShouldBeNil)

			Convey("Then the fitted vocabulary comes back sorted", func() {
				So(skills, ShouldContain, "python")
				So(skills, ShouldContain, "django")
				So(skills, ShouldContain, "react")
				for i := 1; i < len(skills); i++ {
					So(skills[i-1], ShouldBeLessThan, skills[i])
				}
			})
		})
	})
}
