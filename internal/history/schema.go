package history

// schemaVersion is bumped whenever the table layout changes. The database is
// an archive of past runs, so migrations recreate rather than upgrade: users
// clear history to adopt a new schema.
const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS schema_info (
    version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS runs (
    id           TEXT PRIMARY KEY,
    source_dir   TEXT NOT NULL,
    file_count   INTEGER NOT NULL,
    total_words  INTEGER NOT NULL,
    unique_words INTEGER NOT NULL,
    created_at   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS run_words (
    run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    word   TEXT NOT NULL,
    count  INTEGER NOT NULL CHECK (count > 0),
    PRIMARY KEY (run_id, word)
);

CREATE INDEX IF NOT EXISTS idx_run_words_run ON run_words(run_id);
`
