package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/kassel/seatheat/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8480")
				convey.So(cfg.VeryLowPrice, convey.ShouldEqual, 500)
				convey.So(cfg.LowPrice, convey.ShouldEqual, 1500)
				convey.So(cfg.MediumPrice, convey.ShouldEqual, 3500)
				convey.So(cfg.HighPrice, convey.ShouldEqual, 7000)
				convey.So(cfg.VeryHighPrice, convey.ShouldEqual, 15000)
				convey.So(cfg.UseLogScale, convey.ShouldBeTrue)
				convey.So(cfg.MinPricesForStats, convey.ShouldEqual, 5)
				convey.So(cfg.SeatFillMarker, convey.ShouldEqual, "#cccccc")
				convey.So(cfg.NeutralFill, convey.ShouldEqual, "#cccccc")
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("SEATHEAT_ADDR", ":8090")
			_ = os.Setenv("SEATHEAT_MEDIUM_PRICE", "4000")
			_ = os.Setenv("SEATHEAT_MIN_PRICES_FOR_STATS", "3")
			_ = os.Setenv("SEATHEAT_STAGE_FILL_MARKER", "#222222")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8090")
				convey.So(cfg.MediumPrice, convey.ShouldEqual, 4000)
				convey.So(cfg.MinPricesForStats, convey.ShouldEqual, 3)
				convey.So(cfg.StageFillMarker, convey.ShouldEqual, "#222222")
				// Untouched fields keep their defaults.
				convey.So(cfg.HighPrice, convey.ShouldEqual, 7000)
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			clearConfigEnvVars()
			dir := t.TempDir()
			path := filepath.Join(dir, "seatheat.yaml")
			yaml := "addr: \":7070\"\nlow_price: 1200\nuse_log_scale: false\n"
			convey.So(os.WriteFile(path, []byte(yaml), 0o600), convey.ShouldBeNil)
			_ = os.Setenv("SEATHEAT_CONFIG", path)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then file values should override defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.LowPrice, convey.ShouldEqual, 1200)
				convey.So(cfg.UseLogScale, convey.ShouldBeFalse)
			})
		})

		convey.Convey("When env overrides a file value", func() {
			clearConfigEnvVars()
			dir := t.TempDir()
			path := filepath.Join(dir, "seatheat.yaml")
			convey.So(os.WriteFile(path, []byte("addr: \":7070\"\n"), 0o600), convey.ShouldBeNil)
			_ = os.Setenv("SEATHEAT_CONFIG", path)
			_ = os.Setenv("SEATHEAT_ADDR", ":7071")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then env wins", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7071")
			})
		})

		convey.Convey("When the price bands are not increasing", func() {
			clearConfigEnvVars()
			_ = os.Setenv("SEATHEAT_LOW_PRICE", "9000")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then loading fails with an invalid-config kind", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "invalid config")
			})
		})
	})
}

func clearConfigEnvVars() {
	vars := []string{
		"SEATHEAT_CONFIG",
		"SEATHEAT_ADDR",
		"SEATHEAT_LOG_LEVEL",
		"SEATHEAT_VERY_LOW_PRICE",
		"SEATHEAT_LOW_PRICE",
		"SEATHEAT_MEDIUM_PRICE",
		"SEATHEAT_HIGH_PRICE",
		"SEATHEAT_VERY_HIGH_PRICE",
		"SEATHEAT_USE_LOG_SCALE",
		"SEATHEAT_MIN_PRICES_FOR_STATS",
		"SEATHEAT_SEAT_FILL_MARKER",
		"SEATHEAT_STAGE_FILL_MARKER",
		"SEATHEAT_NEUTRAL_FILL",
		"SEATHEAT_FETCH_TIMEOUT_MS",
		"SEATHEAT_MAX_PRICES_PER_REQUEST",
	}
	for _, v := range vars {
		_ = os.Unsetenv(v)
	}
}
