package recorder

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/maheswardileep829-blip/stock-analyzer/internal/logger"
	"github.com/maheswardileep829-blip/stock-analyzer/internal/model"
)

// SQLiteRecorder persists run history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external tools can read history while a run writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	logger.L().Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id            TEXT PRIMARY KEY,
			timestamp     INTEGER NOT NULL,
			ticker_count  INTEGER,
			failure_count INTEGER,
			best_symbol   TEXT,
			worst_symbol  TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS run_metrics (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id         TEXT NOT NULL,
			symbol         TEXT NOT NULL,
			latest_price   REAL,
			year_ago_price REAL,
			return_pct     REAL,
			volatility     REAL,
			price_min      REAL,
			price_max      REAL,
			ma50           REAL,
			ma200          REAL,
			trend          TEXT,
			bars           INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_run_metrics_run ON run_metrics(run_id)`,

		`CREATE TABLE IF NOT EXISTS run_failures (
			id     INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			symbol TEXT NOT NULL,
			reason TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_run_failures_run ON run_failures(run_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// nullable maps an undefined indicator to SQL NULL.
func nullable(ind model.Indicator) interface{} {
	if !ind.Valid {
		return nil
	}
	return ind.Value
}

// RecordRun stores the run header plus one child row per metric and failure.
func (r *SQLiteRecorder) RecordRun(rs *model.ResultSet) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	runID := uuid.NewString()
	var bestSymbol, worstSymbol string
	if rs.Best >= 0 {
		bestSymbol = rs.Metrics[rs.Best].Symbol
	}
	if rs.Worst >= 0 {
		worstSymbol = rs.Metrics[rs.Worst].Symbol
	}

	_, err := r.db.Exec(`INSERT INTO runs
		(id, timestamp, ticker_count, failure_count, best_symbol, worst_symbol)
		VALUES (?,?,?,?,?,?)`,
		runID, time.Now().Unix(), len(rs.Metrics), len(rs.Failures), bestSymbol, worstSymbol,
	)
	if err != nil {
		return "", err
	}

	for i := range rs.Metrics {
		m := &rs.Metrics[i]
		_, err := r.db.Exec(`INSERT INTO run_metrics
			(run_id, symbol, latest_price, year_ago_price, return_pct, volatility,
			 price_min, price_max, ma50, ma200, trend, bars)
			VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
			runID, m.Symbol, m.LatestPrice, m.YearAgoPrice,
			nullable(m.ReturnPct), nullable(m.Volatility),
			m.PriceMin, m.PriceMax, nullable(m.MA50), nullable(m.MA200),
			string(m.Trend), m.Bars,
		)
		if err != nil {
			return "", err
		}
	}

	for _, f := range rs.Failures {
		_, err := r.db.Exec(`INSERT INTO run_failures (run_id, symbol, reason)
			VALUES (?,?,?)`,
			runID, f.Symbol, f.Err.Error(),
		)
		if err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (r *SQLiteRecorder) Close() error {
	logger.L().Debug().Msg("closing sqlite recorder")
	return r.db.Close()
}
