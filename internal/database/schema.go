package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schema is the full relational schema, idempotent so it can run on every
// startup. Cascade deletes carry entity removal through relationships,
// content, memberships, and reactions.
//
// Two constraints encode invariants rather than leaving them to application
// code: the partial unique index on users(role) allows at most one admin row,
// and the CHECK on posts/stories forces a group reference whenever visibility
// is 'group'.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id              BIGSERIAL PRIMARY KEY,
	name            TEXT NOT NULL UNIQUE,
	password_hashed TEXT NOT NULL,
	role            TEXT NOT NULL CHECK (role IN ('user', 'admin')),
	avatar_url      TEXT,
	avatar_key      TEXT,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS users_single_admin
	ON users (role) WHERE role = 'admin';

CREATE TABLE IF NOT EXISTS friends (
	requester_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	receiver_id  BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	status       TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'accepted')),
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (requester_id, receiver_id),
	CHECK (requester_id <> receiver_id)
);

CREATE TABLE IF NOT EXISTS groups (
	id         BIGSERIAL PRIMARY KEY,
	name       TEXT NOT NULL,
	owner_id   BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS group_members (
	group_id BIGINT NOT NULL REFERENCES groups(id) ON DELETE CASCADE,
	user_id  BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	PRIMARY KEY (group_id, user_id)
);

CREATE TABLE IF NOT EXISTS posts (
	id         BIGSERIAL PRIMARY KEY,
	user_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	post_type  TEXT NOT NULL CHECK (post_type IN ('text', 'picture')),
	content    TEXT NOT NULL,
	visibility TEXT NOT NULL CHECK (visibility IN ('public', 'friends', 'group')),
	group_id   BIGINT REFERENCES groups(id) ON DELETE CASCADE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CHECK (visibility <> 'group' OR group_id IS NOT NULL)
);

CREATE TABLE IF NOT EXISTS post_likes (
	user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	post_id BIGINT NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
	PRIMARY KEY (user_id, post_id)
);

CREATE TABLE IF NOT EXISTS comments (
	id         BIGSERIAL PRIMARY KEY,
	user_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	post_id    BIGINT NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
	content    TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS tags (
	id      BIGSERIAL PRIMARY KEY,
	content TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS post_tags (
	post_id BIGINT NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
	tag_id  BIGINT NOT NULL REFERENCES tags(id) ON DELETE CASCADE,
	PRIMARY KEY (post_id, tag_id)
);

CREATE TABLE IF NOT EXISTS messages (
	id          BIGSERIAL PRIMARY KEY,
	sender_id   BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	receiver_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	content     TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS stories (
	id         BIGSERIAL PRIMARY KEY,
	user_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	content    TEXT NOT NULL,
	visibility TEXT NOT NULL CHECK (visibility IN ('public', 'friends', 'group')),
	group_id   BIGINT REFERENCES groups(id) ON DELETE CASCADE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CHECK (visibility <> 'group' OR group_id IS NOT NULL)
);

CREATE TABLE IF NOT EXISTS story_reactions (
	id         BIGSERIAL PRIMARY KEY,
	story_id   BIGINT NOT NULL REFERENCES stories(id) ON DELETE CASCADE,
	user_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	emoji      TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// Migrate applies the schema. Safe to call on every startup.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
