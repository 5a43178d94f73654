package store

const (
	createLocalPostsTable = `
		CREATE TABLE IF NOT EXISTS cached_posts (
			client_id      TEXT PRIMARY KEY,
			position       INTEGER NOT NULL,
			pending        INTEGER NOT NULL DEFAULT 0,
			post_id        INTEGER NOT NULL DEFAULT 0,
			title          TEXT NOT NULL,
			content        TEXT NOT NULL,
			slug           TEXT NOT NULL DEFAULT '',
			author_id      INTEGER NOT NULL DEFAULT 0,
			category_id    INTEGER NOT NULL,
			tags           TEXT NOT NULL DEFAULT '[]',
			featured_image TEXT NOT NULL DEFAULT '',
			created_at     TIMESTAMP,
			updated_at     TIMESTAMP
		);`

	insertLocalPost = `
		INSERT INTO cached_posts (
			client_id,
			position,
			pending,
			post_id,
			title,
			content,
			slug,
			author_id,
			category_id,
			tags,
			featured_image,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`

	selectLocalPosts = `
		SELECT
			client_id,
			position,
			pending,
			post_id,
			title,
			content,
			slug,
			author_id,
			category_id,
			tags,
			featured_image,
			created_at,
			updated_at
		FROM cached_posts
		ORDER BY position ASC;`

	selectLocalPost = `
		SELECT
			client_id,
			position,
			pending,
			post_id,
			title,
			content,
			slug,
			author_id,
			category_id,
			tags,
			featured_image,
			created_at,
			updated_at
		FROM cached_posts
		WHERE client_id = $1;`

	selectMinPosition = `
		SELECT COALESCE(MIN(position), 1) - 1 FROM cached_posts;`

	updateLocalPost = `
		UPDATE cached_posts SET
			position       = $1,
			pending        = $2,
			post_id        = $3,
			title          = $4,
			content        = $5,
			slug           = $6,
			author_id      = $7,
			category_id    = $8,
			tags           = $9,
			featured_image = $10,
			created_at     = $11,
			updated_at     = $12
		WHERE client_id = $13;`

	deleteLocalPost = `
		DELETE FROM cached_posts WHERE client_id = $1;`

	deleteAllLocalPosts = `
		DELETE FROM cached_posts;`
)
