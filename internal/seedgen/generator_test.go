package seedgen_test

import (
	"context"
	"testing"

	"github.com/hirelance/matchd/internal/domain/model"
	"github.com/hirelance/matchd/internal/seedgen"
	"github.com/hirelance/matchd/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	_ = logger.Init()
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	Convey("Given a generator config", t, func() {
		cfg := seedgen.NewConfig()
		cfg.NumFreelancers = 20
		cfg.NumClients = 5
		cfg.NumJobs = 4

		Convey("When generating a corpus", func() {
			freelancers, jobs, stats, err := seedgen.Generate(ctx, cfg)
			So(err, ShouldBeNil)

			Convey("Then the requested counts come back", func() {
				So(len(freelancers), ShouldEqual, 20)
				So(len(jobs), ShouldEqual, 4)
				So(stats.FreelancersGenerated, ShouldEqual, 20)
				So(stats.EngagementsGenerated, ShouldBeGreaterThan, 0)
			})

			Convey("And every freelancer record is internally consistent", func() {
				for _, f := range freelancers {
					So(f.ID, ShouldNotBeEmpty)
					So(f.ExperienceLevel, ShouldEqual, model.LevelForYears(f.ExperienceYears))
					So(len(f.Skills), ShouldBeGreaterThanOrEqualTo, 3)
					So(f.AvgRating, ShouldBeBetweenOrEqual, 0, 5)
					So(f.CompletedProjects, ShouldBeGreaterThanOrEqualTo, len(f.PastProjects))
					for _, e := range f.PastProjects {
						So(e.Rating, ShouldBeBetweenOrEqual, 2, 5)
						So(e.ClientID, ShouldStartWith, "C")
					}
				}
			})

			Convey("And every generated job passes validation", func() {
				for _, j := range jobs {
					So(j.Validate(), ShouldBeNil)
				}
			})
		})

		Convey("When generating twice with the same seed", func() {
			a, aJobs, _, err := seedgen.Generate(ctx, cfg)
			So(err, ShouldBeNil)
			b, bJobs, _, err := seedgen.Generate(ctx, cfg)
			So(err, ShouldBeNil)

			Convey("Then the corpora are identical", func() {
				So(b, ShouldResemble, a)
				So(bJobs, ShouldResemble, aJobs)
			})
		})

		Convey("When generating with a different seed", func() {
			a, _, _, err := seedgen.Generate(ctx, cfg)
			So(err, ShouldBeNil)
			cfg.Seed = 7
			b, _, _, err := seedgen.Generate(ctx, cfg)
			So(err, ShouldBeNil)

			Convey("Then the corpora differ", func() {
				So(b, ShouldNotResemble, a)
			})
		})

		Convey("When the config asks for no freelancers", func() {
			cfg.NumFreelancers = 0
			_, _, _, err := seedgen.Generate(ctx, cfg)

			Convey("Then generation fails", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}
