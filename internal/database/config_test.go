package database

import "testing"

func TestConfig(t *testing.T) {
	cfg := &Config{Host: "db", Port: "5433", User: "ana", Password: "p@ss word", DBName: "finanzas", SSLMode: "require"}

	t.Run("dsn", func(t *testing.T) {
		want := "host=db port=5433 user=ana password=p@ss word dbname=finanzas sslmode=require"
		if got := cfg.DSN(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("url_escapes_credentials", func(t *testing.T) {
		want := "postgres://ana:p%40ss%20word@db:5433/finanzas?sslmode=require"
		if got := cfg.URL(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("DB_NAME", "otra")
		c := NewConfig()
		if c.DBName != "otra" || c.SSLMode == "" {
			t.Errorf("unexpected config %+v", c)
		}
	})
}
