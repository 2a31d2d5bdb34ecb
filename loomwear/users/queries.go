package users

const (
	queryCreate = `
		INSERT INTO users (email, hashed_password, full_name)
		VALUES ($1, $2, $3)
		RETURNING id, email, hashed_password, full_name, created_at, updated_at
	`

	queryFindByEmail = `
		SELECT id, email, hashed_password, full_name, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	queryFindOrCreateByEmail = `
		INSERT INTO users (email, full_name)
		VALUES ($1, $2)
		ON CONFLICT (email)
		DO UPDATE SET email = EXCLUDED.email
		RETURNING id, email, hashed_password, full_name, created_at, updated_at
	`
)
