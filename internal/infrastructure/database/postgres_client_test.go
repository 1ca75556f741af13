package database

import "testing"

func TestDsnFromEnv(t *testing.T) {
	t.Run("DATABASE_URL takes precedence", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://u:p@h:5432/db")
		t.Setenv("DB_HOST", "ignored")
		if got := dsnFromEnv(); got != "postgres://u:p@h:5432/db" {
			t.Fatalf("unexpected dsn: %s", got)
		}
	})

	t.Run("discrete vars with defaults", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		t.Setenv("DB_HOST", "")
		t.Setenv("DB_PORT", "")
		t.Setenv("DB_USER", "gelb")
		t.Setenv("DB_PASSWORD", "s3cret")
		t.Setenv("DB_NAME", "estoque")
		t.Setenv("DB_SSLMODE", "")
		want := "host=localhost port=5432 user=gelb password=s3cret dbname=estoque sslmode=disable"
		if got := dsnFromEnv(); got != want {
			t.Fatalf("unexpected dsn: %s", got)
		}
	})
}
