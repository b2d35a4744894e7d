package testutil

import (
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"testing"
	"time"

	"github.com/themizzi/swaglabs-e2e/internal/config"
	"github.com/themizzi/swaglabs-e2e/internal/database"

	_ "github.com/lib/pq"
)

// TestDatabase is a run history database isolated in its own schema
type TestDatabase struct {
	DB         *sql.DB
	SchemaName string
	masterDB   *sql.DB
}

// SetupTestDatabase connects with the POSTGRES_* variables (falling back to a
// local postgres/postgres server), creates a fresh schema and migrates it.
// The schema is dropped when the test ends.
func SetupTestDatabase(t *testing.T) *TestDatabase {
	t.Helper()

	for key, value := range localDefaults {
		if os.Getenv(key) == "" {
			t.Setenv(key, value)
		}
	}
	pg, err := config.LoadPostgresConfig()
	if err != nil {
		t.Fatalf("Failed to load postgres config: %v", err)
	}

	masterDB, err := open(pg.ConnectionString())
	if err != nil {
		t.Fatalf("Failed to connect to master database: %v", err)
	}

	td := &TestDatabase{
		SchemaName: fmt.Sprintf("suite_runs_test_%d_%d", time.Now().UnixNano(), rand.Intn(10000)),
		masterDB:   masterDB,
	}
	t.Cleanup(func() { td.Teardown(t) })

	if _, err := masterDB.Exec(fmt.Sprintf("CREATE SCHEMA %s", td.SchemaName)); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	td.DB, err = open(fmt.Sprintf("%s search_path=%s", pg.ConnectionString(), td.SchemaName))
	if err != nil {
		t.Fatalf("Failed to connect to test schema: %v", err)
	}
	td.DB.SetMaxOpenConns(5)
	td.DB.SetMaxIdleConns(2)

	if err := td.RunMigrations(); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return td
}

var localDefaults = map[string]string{
	"POSTGRES_USER":     "postgres",
	"POSTGRES_PASSWORD": "postgres",
	"POSTGRES_DB":       "postgres",
	"POSTGRES_HOSTNAME": "localhost",
}

func open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// RunMigrations creates the run history tables in the test schema
func (td *TestDatabase) RunMigrations() error {
	return database.Migrate(td.DB)
}

// Teardown closes the connections and drops the schema. Calling it more than
// once is harmless.
func (td *TestDatabase) Teardown(t *testing.T) {
	t.Helper()

	if td.DB != nil {
		td.DB.Close()
		td.DB = nil
	}
	if td.masterDB == nil {
		return
	}
	if _, err := td.masterDB.Exec(fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", td.SchemaName)); err != nil {
		t.Logf("Warning: Failed to drop test schema %s: %v", td.SchemaName, err)
	}
	td.masterDB.Close()
	td.masterDB = nil
}
