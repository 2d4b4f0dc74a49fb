package sqlite

// schemaSQL bootstraps every table on open. Timestamps are RFC3339 TEXT;
// nullable fields are NULL-able columns, matching the record types'
// pointer fields one to one.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS requests (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	client_name  TEXT NOT NULL,
	title        TEXT NOT NULL,
	description  TEXT,
	status       TEXT NOT NULL,
	preferred_at TEXT,
	created_at   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS bookings (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	client_name  TEXT NOT NULL,
	service_type TEXT NOT NULL,
	notes        TEXT,
	status       TEXT NOT NULL,
	scheduled_at TEXT,
	created_at   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS clients (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	name       TEXT NOT NULL,
	email      TEXT,
	phone      TEXT,
	address    TEXT,
	status     TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS properties (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	client_id  INTEGER NOT NULL REFERENCES clients(id),
	address    TEXT NOT NULL,
	city       TEXT NOT NULL DEFAULT '',
	nickname   TEXT,
	status     TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS projects (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	client_id  INTEGER NOT NULL REFERENCES clients(id),
	name       TEXT NOT NULL,
	summary    TEXT,
	status     TEXT NOT NULL,
	starts_at  TEXT,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	project_id INTEGER REFERENCES projects(id),
	title      TEXT NOT NULL,
	details    TEXT,
	status     TEXT NOT NULL,
	priority   TEXT NOT NULL,
	due_at     TEXT,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS invoices (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	client_name TEXT NOT NULL,
	number      TEXT NOT NULL UNIQUE,
	status      TEXT NOT NULL,
	total_cents INTEGER NOT NULL,
	issued_at   TEXT NOT NULL,
	due_at      TEXT,
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS notices (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	title      TEXT NOT NULL,
	body       TEXT NOT NULL DEFAULT '',
	kind       TEXT NOT NULL,
	read_at    TEXT,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS outbox (
	id        TEXT PRIMARY KEY,
	entity    TEXT NOT NULL,
	op        TEXT NOT NULL,
	payload   TEXT NOT NULL,
	queued_at TEXT NOT NULL,
	attempts  INTEGER NOT NULL DEFAULT 0,
	applied_at TEXT
);
`
