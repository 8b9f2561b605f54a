package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
//
// todos.category_id, todos.memo_id, and reminders.todo_id are plain TEXT
// columns without foreign keys: the first two are weak references the
// application never validates, and reminder existence checking happens in the
// service at creation time only (deleting a todo keeps its reminders).
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS categories (
	id    TEXT PRIMARY KEY,
	name  TEXT NOT NULL UNIQUE,
	color TEXT
);

CREATE TABLE IF NOT EXISTS tags (
	id   TEXT PRIMARY KEY,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS memos (
	id      TEXT PRIMARY KEY,
	content TEXT
);

CREATE TABLE IF NOT EXISTS memo_attachments (
	memo_id        TEXT NOT NULL REFERENCES memos(id) ON DELETE CASCADE,
	attachment_url TEXT NOT NULL,
	position       INTEGER NOT NULL,
	PRIMARY KEY (memo_id, position)
);

CREATE TABLE IF NOT EXISTS todos (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT,
	status      TEXT NOT NULL DEFAULT 'pending'
	            CHECK(status IN ('pending', 'in_progress', 'completed')),
	due_date    TEXT,
	category_id TEXT,
	memo_id     TEXT
);

CREATE TABLE IF NOT EXISTS todo_tags (
	todo_id TEXT NOT NULL REFERENCES todos(id) ON DELETE CASCADE,
	tag_id  TEXT NOT NULL REFERENCES tags(id) ON DELETE CASCADE,
	PRIMARY KEY (todo_id, tag_id)
);

CREATE TABLE IF NOT EXISTS reminders (
	id            TEXT PRIMARY KEY,
	todo_id       TEXT NOT NULL,
	time          TEXT NOT NULL,
	notify_method TEXT NOT NULL DEFAULT 'push'
	              CHECK(notify_method IN ('email', 'push', 'sms'))
);

CREATE INDEX IF NOT EXISTS idx_todos_status ON todos(status);
CREATE INDEX IF NOT EXISTS idx_todo_tags_tag_id ON todo_tags(tag_id);
CREATE INDEX IF NOT EXISTS idx_reminders_todo_id ON reminders(todo_id);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}
