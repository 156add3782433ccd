package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rgehrsitz/fitsizer/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load(ctx, "")

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Capacity.CapacityPerHour, convey.ShouldEqual, 20)
				convey.So(cfg.Capacity.WeeksPerMonth, convey.ShouldEqual, 4.33)
				convey.So(len(cfg.Subscriptions), convey.ShouldEqual, 4)
				convey.So(len(cfg.Scenarios), convey.ShouldEqual, 3)
				convey.So(cfg.RevenueTarget, convey.ShouldEqual, 50000)
				convey.So(cfg.Inputs.Scenario, convey.ShouldEqual, "medium")
				convey.So(cfg.Server.Addr, convey.ShouldEqual, ":9080")
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("FITSIZER_REVENUE_TARGET", "60000")
			_ = os.Setenv("FITSIZER_INPUTS__PARTICIPATION_RATE", "0.2")
			_ = os.Setenv("FITSIZER_SERVER__ADDR", ":8080")
			_ = os.Setenv("FITSIZER_PARALLEL_COMPARE", "true")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx, "")

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.RevenueTarget, convey.ShouldEqual, 60000)
				convey.So(cfg.Inputs.ParticipationRate, convey.ShouldEqual, 0.2)
				convey.So(cfg.Server.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.ParallelCompare, convey.ShouldBeTrue)
				convey.So(len(cfg.Subscriptions), convey.ShouldEqual, 4)
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
revenue_target: 40000
capacity:
  capacity_per_hour: 10
subscriptions:
  - kind: standard
    display_name: Standard
    price: 120
    billing: unlimited_subscription
inputs:
  scenario: high
  mix:
    standard: 1
competitors:
  - name: Gym A
    capacity: 100
    members: 1000
`
			path := createTempConfigFile(t, yamlContent)

			cfg, err := config.Load(ctx, path)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.RevenueTarget, convey.ShouldEqual, 40000)
				convey.So(cfg.Capacity.CapacityPerHour, convey.ShouldEqual, 10)
				convey.So(cfg.Capacity.HoursPerDay, convey.ShouldEqual, 10)
				convey.So(cfg.Inputs.Scenario, convey.ShouldEqual, "high")
				convey.So(len(cfg.Competitors), convey.ShouldEqual, 1)
			})

			convey.Convey("Then lists in the file replace the defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(len(cfg.Subscriptions), convey.ShouldEqual, 1)
				convey.So(cfg.Subscriptions[0].SessionQuota, convey.ShouldEqual, 0)
				convey.So(len(cfg.Inputs.Mix), convey.ShouldEqual, 1)
				convey.So(cfg.Inputs.Mix["standard"], convey.ShouldEqual, 1)
			})
		})

		convey.Convey("When the path comes from FITSIZER_CONFIG", func() {
			path := createTempConfigFile(t, "revenue_target: 45000\n")
			_ = os.Setenv(config.EnvConfigPath, path)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx, "")

			convey.Convey("Then the file is used", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.RevenueTarget, convey.ShouldEqual, 45000)
			})
		})

		convey.Convey("When environment variables override a YAML file", func() {
			path := createTempConfigFile(t, "revenue_target: 40000\n")
			_ = os.Setenv("FITSIZER_REVENUE_TARGET", "70000")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx, path)

			convey.Convey("Then env vars take precedence", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.RevenueTarget, convey.ShouldEqual, 70000)
			})
		})

		convey.Convey("When the file does not exist", func() {
			cfg, err := config.Load(ctx, filepath.Join(t.TempDir(), "missing.yaml"))

			convey.Convey("Then a load error is returned", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the file holds an invalid rate", func() {
			path := createTempConfigFile(t, "inputs:\n  conversion_rate: 1.5\n")

			cfg, err := config.Load(ctx, path)

			convey.Convey("Then a validation error is returned", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "conversion_rate")
			})
		})

		convey.Convey("When the context is already cancelled", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			_, err := config.Load(cancelled, "")

			convey.Convey("Then the context error is returned", func() {
				convey.So(err, convey.ShouldEqual, context.Canceled)
			})
		})
	})
}

func clearConfigEnvVars() {
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, config.EnvPrefix) {
			_ = os.Unsetenv(strings.SplitN(kv, "=", 2)[0])
		}
	}
}

func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fitsizer.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}
