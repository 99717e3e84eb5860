package config

import (
	"reflect"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("PERIOD_CRON", "")
		t.Setenv("PROJECTION_DEFAULT_MONTHS", "")
		t.Setenv("CORS_ALLOW_ORIGINS", "")

		cfg := Load()
		if cfg.Port != "8080" || cfg.PeriodCron != "5 0 * * *" || cfg.ProjectionDefaultMonths != 12 {
			t.Errorf("unexpected defaults %+v", cfg)
		}
		if !reflect.DeepEqual(cfg.CORSAllowOrigins, []string{"*"}) {
			t.Errorf("unexpected origins %v", cfg.CORSAllowOrigins)
		}
	})

	t.Run("reads environment", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("PROJECTION_DEFAULT_MONTHS", "24")
		t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test, http://b.test")

		cfg := Load()
		if cfg.Port != "9090" || cfg.ProjectionDefaultMonths != 24 {
			t.Errorf("unexpected config %+v", cfg)
		}
		if !reflect.DeepEqual(cfg.CORSAllowOrigins, []string{"http://a.test", "http://b.test"}) {
			t.Errorf("unexpected origins %v", cfg.CORSAllowOrigins)
		}
	})

	t.Run("invalid months falls back", func(t *testing.T) {
		t.Setenv("PROJECTION_DEFAULT_MONTHS", "muchos")

		if got := Load().ProjectionDefaultMonths; got != 12 {
			t.Errorf("expected 12, got %d", got)
		}
	})
}
