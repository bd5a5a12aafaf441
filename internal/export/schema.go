package export

const schemaSQL = `
CREATE TABLE IF NOT EXISTS budget_lines (
    position             INTEGER PRIMARY KEY,
    program              TEXT NOT NULL,
    budget               REAL NOT NULL,
    realization          REAL NOT NULL,
    status               TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS kpis (
    section_id           TEXT NOT NULL,
    position             INTEGER NOT NULL,
    label                TEXT NOT NULL,
    value                TEXT NOT NULL,
    change               TEXT,
    trend                TEXT,
    PRIMARY KEY (section_id, position)
);

CREATE TABLE IF NOT EXISTS traffic_lights (
    section_id           TEXT NOT NULL,
    position             INTEGER NOT NULL,
    name                 TEXT NOT NULL,
    status               TEXT NOT NULL,
    PRIMARY KEY (section_id, position)
);

CREATE TABLE IF NOT EXISTS export_meta (
    key                  TEXT PRIMARY KEY,
    value                TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_budget_status ON budget_lines(status);
`
