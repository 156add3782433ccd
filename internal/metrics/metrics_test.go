package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rgehrsitz/fitsizer/internal/domain"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			manager := NewManager()

			Convey("Then it should own a private registry", func() {
				So(manager, ShouldNotBeNil)
				So(manager.Registry(), ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test_namespace"),
				WithSubsystem("test_subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithMetricsEnabled(true),
				WithConstLabels(map[string]string{"env": "test"}),
				WithPrometheusRegistry(registry),
			)
			manager.RecordError("evaluate")

			Convey("Then metrics are registered on the given registry with the namespace", func() {
				So(manager.Registry(), ShouldEqual, registry)
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				So(len(families), ShouldBeGreaterThan, 0)
				So(families[0].GetName(), ShouldStartWith, "test_namespace_")
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given a metrics manager", t, func() {
		manager := NewManager()

		Convey("When observing a degenerate fallback result below target", func() {
			r := &domain.AnalysisResult{
				Scenario:             domain.ScenarioHigh,
				Degenerate:           true,
				DistributionFallback: true,
			}
			manager.ObserveResult("evaluate", r)
			manager.ObserveResult("evaluate", r)

			Convey("Then every counter moves", func() {
				So(testutil.ToFloat64(manager.evaluations.WithLabelValues("evaluate", "high")), ShouldEqual, 2)
				So(testutil.ToFloat64(manager.degenerateResults), ShouldEqual, 2)
				So(testutil.ToFloat64(manager.distributionFallbacks), ShouldEqual, 2)
				So(testutil.ToFloat64(manager.targetMisses.WithLabelValues("high")), ShouldEqual, 2)
			})
		})

		Convey("When observing a healthy result", func() {
			manager.ObserveResult("compare", &domain.AnalysisResult{Scenario: domain.ScenarioMedium, MeetsTarget: true})

			Convey("Then only the evaluation counter moves", func() {
				So(testutil.ToFloat64(manager.evaluations.WithLabelValues("compare", "medium")), ShouldEqual, 1)
				So(testutil.ToFloat64(manager.degenerateResults), ShouldEqual, 0)
				So(testutil.ToFloat64(manager.targetMisses.WithLabelValues("medium")), ShouldEqual, 0)
			})
		})

		Convey("When recording latency and HTTP requests", func() {
			manager.ObserveLatency("evaluate", 3*time.Millisecond)
			manager.RecordHTTPRequest("/v1/evaluate", "POST", "200", time.Millisecond)

			Convey("Then the series are collected", func() {
				So(testutil.CollectAndCount(manager.evaluationLatency), ShouldEqual, 1)
				So(testutil.ToFloat64(manager.httpRequests.WithLabelValues("/v1/evaluate", "POST", "200")), ShouldEqual, 1)
			})
		})

		Convey("When the handler is scraped", func() {
			manager.RecordError("evaluate")
			rec := httptest.NewRecorder()
			manager.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

			Convey("Then the text exposition contains our metrics", func() {
				So(rec.Code, ShouldEqual, 200)
				So(strings.Contains(rec.Body.String(), "fitsizer_engine_evaluation_errors_total"), ShouldBeTrue)
			})
		})
	})
}

func TestMetricsDisabled(t *testing.T) {
	Convey("Given a disabled manager", t, func() {
		manager := NewManager(WithMetricsEnabled(false))

		Convey("When recording", func() {
			manager.RecordError("evaluate")
			manager.ObserveResult("evaluate", &domain.AnalysisResult{Scenario: domain.ScenarioReduced})

			Convey("Then nothing is counted", func() {
				So(testutil.ToFloat64(manager.evaluationErrors.WithLabelValues("evaluate")), ShouldEqual, 0)
			})
		})

		Convey("When the manager is nil", func() {
			var nilManager *Manager

			Convey("Then recording is a no-op", func() {
				So(func() { nilManager.RecordError("evaluate") }, ShouldNotPanic)
				So(func() { nilManager.ObserveLatency("evaluate", time.Second) }, ShouldNotPanic)
			})
		})
	})
}
