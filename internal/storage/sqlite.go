package storage

import (
	"database/sql"
	"fmt"
	"strings"

	// Register sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

// Command categories recorded in the usage log.
const (
	CategoryCalculator = "calculator"
	CategoryForm       = "form"
	CategoryExplain    = "explain"
	CategoryInfo       = "info"
)

type DB interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	Close() error
}

type Store struct{ db DB }

// UsageStats aggregates the usage of one command category.
type UsageStats struct {
	Count    int
	Commands map[string]int
}

func OpenSQLite(dsn string) (DB, error) {
	return sql.Open("sqlite3", dsn)
}

// InitSchema creates the usage table. Only command names are stored, never the
// values typed into the calculator.
func InitSchema(db DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS usage(
		chat_id INTEGER, command TEXT, ts INTEGER
	)`)
	if err != nil {
		return fmt.Errorf("create usage table: %w", err)
	}
	_, err = db.Exec(`CREATE INDEX IF NOT EXISTS usage_ts ON usage(ts)`)
	if err != nil {
		return fmt.Errorf("create usage index: %w", err)
	}
	return nil
}

func NewStore(db DB) *Store { return &Store{db: db} }

func (s *Store) LogUsage(chatID int64, command string, ts int64) error {
	command = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(command), "/"))
	if command == "" {
		return fmt.Errorf("empty command")
	}
	_, err := s.db.Exec(`INSERT INTO usage(chat_id,command,ts) VALUES(?,?,?)`,
		chatID, command, ts)
	return err
}

// UsageStats counts commands logged at or after since, grouped by category.
func (s *Store) UsageStats(since int64) (map[string]*UsageStats, error) {
	rows, err := s.db.Query(`SELECT command, COUNT(*) FROM usage WHERE ts>=? GROUP BY command`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[string]*UsageStats{}
	for rows.Next() {
		var cmd string
		var n int
		if err := rows.Scan(&cmd, &n); err != nil {
			return nil, err
		}
		cat := CommandCategory(cmd)
		st, ok := out[cat]
		if !ok {
			st = &UsageStats{Commands: map[string]int{}}
			out[cat] = st
		}
		st.Count += n
		st.Commands[cmd] += n
	}
	return out, rows.Err()
}

// CommandCategory maps a command name to its usage category.
func CommandCategory(cmd string) string {
	switch cmd {
	case "calc":
		return CategoryCalculator
	case "price", "investment", "fee", "currency", "reset", "form":
		return CategoryForm
	case "explain":
		return CategoryExplain
	default:
		return CategoryInfo
	}
}
