package tracing

import (
	"database/sql"
	"fmt"
	"sync"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// SQLiteTraceWriter is a Tracer that writes step records to a SQLite
// database in batches.
type SQLiteTraceWriter struct {
	*sql.DB
	statement *sql.Stmt

	mu           sync.Mutex
	dbName       string
	stepsToWrite []StepRecord
	batchSize    int
}

// NewSQLiteTraceWriter creates a new SQLiteTraceWriter. When path is empty,
// a unique database file name is generated. The writer flushes its pending
// batch at process exit.
func NewSQLiteTraceWriter(path string) *SQLiteTraceWriter {
	w := &SQLiteTraceWriter{
		dbName:    path,
		batchSize: 10000,
	}

	atexit.Register(func() { w.Flush() })

	return w
}

// Init establishes a connection to the database and prepares the schema.
func (w *SQLiteTraceWriter) Init() {
	if w.dbName == "" {
		w.dbName = "cosim_trace_" + xid.New().String() + ".sqlite3"
	}

	w.createDatabase()
	w.createTable()
	w.prepareStatement()
}

// TraceStep buffers a step record, flushing when the batch is full.
func (w *SQLiteTraceWriter) TraceStep(rec StepRecord) {
	if rec.ID == "" {
		rec.ID = xid.New().String()
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.stepsToWrite = append(w.stepsToWrite, rec)
	if len(w.stepsToWrite) >= w.batchSize {
		w.flushLocked()
	}
}

// Flush writes all buffered records to the database.
func (w *SQLiteTraceWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.flushLocked()
}

func (w *SQLiteTraceWriter) flushLocked() {
	if len(w.stepsToWrite) == 0 {
		return
	}

	w.mustExecute("BEGIN TRANSACTION")
	defer w.mustExecute("COMMIT TRANSACTION")

	for _, rec := range w.stepsToWrite {
		_, err := w.statement.Exec(
			rec.ID,
			rec.Driver,
			rec.From,
			rec.To,
			rec.WallTime.Seconds(),
			rec.Outcome,
		)
		if err != nil {
			panic(err)
		}
	}

	w.stepsToWrite = nil
}

func (w *SQLiteTraceWriter) createDatabase() {
	db, err := sql.Open("sqlite3", w.dbName)
	if err != nil {
		panic(err)
	}

	w.DB = db
}

func (w *SQLiteTraceWriter) createTable() {
	w.mustExecute(`
		CREATE TABLE IF NOT EXISTS trace (
			id TEXT PRIMARY KEY,
			driver TEXT,
			time_from REAL,
			time_to REAL,
			wall_seconds REAL,
			outcome TEXT
		)
	`)
	w.mustExecute("CREATE INDEX IF NOT EXISTS trace_driver ON trace (driver)")
}

func (w *SQLiteTraceWriter) prepareStatement() {
	stmt, err := w.Prepare(`
		INSERT INTO trace (id, driver, time_from, time_to, wall_seconds, outcome)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		panic(err)
	}

	w.statement = stmt
}

func (w *SQLiteTraceWriter) mustExecute(query string) sql.Result {
	res, err := w.Exec(query)
	if err != nil {
		panic(fmt.Sprintf("error executing %q: %v", query, err))
	}

	return res
}
