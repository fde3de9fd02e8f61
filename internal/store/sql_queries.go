package store

const userColumns = `id, username, email, password_hash, role, language, include_adult, theme, card_size,
    reset_token, reset_token_expires, created_at, updated_at`

const (
	createUser = `INSERT INTO users (id, username, email, password_hash, role, language, include_adult, theme, card_size, created_at, updated_at)
    VALUES (?, ?, ?, ?,
        COALESCE(NULLIF(?, ''), CASE WHEN EXISTS (SELECT 1 FROM users) THEN 'user' ELSE 'admin' END),
        ?, ?, ?, ?, ?, ?);`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = ?;`

	findUserByUsername = `SELECT ` + userColumns + `
    FROM users
    WHERE username = ?;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = ?;`

	listUsers = `SELECT ` + userColumns + `
    FROM users
    ORDER BY created_at ASC, id ASC;`

	listUsersWithActiveResetToken = `SELECT ` + userColumns + `
    FROM users
    WHERE reset_token IS NOT NULL AND reset_token_expires > ?;`

	setResetToken = `UPDATE users
    SET reset_token = ?, reset_token_expires = ?, updated_at = ?
    WHERE id = ?;`

	updatePassword = `UPDATE users
    SET password_hash = ?, reset_token = NULL, reset_token_expires = NULL, updated_at = ?
    WHERE id = ?;`

	updateRole = `UPDATE users
    SET role = ?, updated_at = ?
    WHERE id = ?;`

	updatePreferences = `UPDATE users
    SET language = ?, include_adult = ?, theme = ?, card_size = ?, updated_at = ?
    WHERE id = ?;`

	clearExpiredResetTokens = `UPDATE users
    SET reset_token = NULL, reset_token_expires = NULL
    WHERE reset_token IS NOT NULL AND reset_token_expires <= ?;`
)

// deleteUserSteps remove a user's catalog bottom-up before the account itself.
// Every statement takes the user id as its only argument.
var deleteUserSteps = []string{
	`DELETE FROM movies WHERE user_id = ?;`,
	`DELETE FROM series WHERE user_id = ?;`,
	`DELETE FROM collection_items WHERE collection_id IN (SELECT id FROM collections WHERE user_id = ?);`,
	`DELETE FROM collections WHERE user_id = ?;`,
}

const deleteUser = `DELETE FROM users WHERE id = ?;`

const (
	addCollectionItem = `INSERT INTO collection_items (id, collection_id, item_type, movie_id, series_id, position, created_at)
    VALUES (?, ?, ?, ?, ?, ?, ?);`

	getCollectionItem = `SELECT id, collection_id, item_type, movie_id, series_id, position, created_at
    FROM collection_items
    WHERE id = ?;`

	listCollectionItems = `SELECT id, collection_id, item_type, movie_id, series_id, position, created_at
    FROM collection_items
    WHERE collection_id = ?
    ORDER BY position ASC, created_at ASC;`

	removeCollectionItem = `DELETE FROM collection_items
    WHERE id = ? AND collection_id = ?;`
)

const (
	getSetting = `SELECT key, value, description, created_at, updated_at
    FROM settings
    WHERE key = ?;`

	upsertSetting = `INSERT INTO settings (key, value, description, created_at, updated_at)
    VALUES (?, ?, ?, ?, ?)
    ON CONFLICT (key) DO UPDATE SET
        value = excluded.value,
        description = excluded.description,
        updated_at = excluded.updated_at;`
)
