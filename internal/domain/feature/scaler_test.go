package feature_test

import (
	"testing"

	"github.com/hirelance/matchd/internal/domain/feature"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMinMaxScaler(t *testing.T) {
	Convey("Given a scaler fitted on a spread of values", t, func() {
		var s feature.MinMaxScaler
		s.Fit([]float64{50, 100, 75})

		Convey("Then the corpus min maps to 0 and the max to 1", func() {
			So(s.Transform(50), ShouldEqual, 0)
			So(s.Transform(100), ShouldEqual, 1)
			So(s.Transform(75), ShouldEqual, 0.5)
		})

		Convey("And out-of-range values clamp to the bounds", func() {
			So(s.Transform(10), ShouldEqual, 0)
			So(s.Transform(500), ShouldEqual, 1)
		})

		Convey("And transform is monotonic within the range", func() {
			So(s.Transform(60), ShouldBeLessThan, s.Transform(80))
		})
	})

	Convey("Given a degenerate range", t, func() {
		var s feature.MinMaxScaler
		s.Fit([]float64{42, 42, 42})

		Convey("Then every value maps to 0", func() {
			So(s.Transform(42), ShouldEqual, 0)
			So(s.Transform(1000), ShouldEqual, 0)
		})
	})

	Convey("Given an unfitted scaler", t, func() {
		var s feature.MinMaxScaler

		Convey("Then it reports unfitted and maps to 0", func() {
			So(s.Fitted(), ShouldBeFalse)
			So(s.Transform(7), ShouldEqual, 0)
		})
	})
}
