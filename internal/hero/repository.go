package hero

import (
	"context"
	"database/sql"
)

type Repository interface {
	GetLatest(ctx context.Context) (*Content, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetLatest(ctx context.Context) (*Content, error) {
	query := `
	SELECT
		title,
		subtitle,
		background_url,
		video_url
	FROM hero_contents
	ORDER BY created_at DESC
	LIMIT 1
	`

	var c Content
	row := r.db.QueryRowContext(ctx, query)
	err := row.Scan(&c.Title, &c.Subtitle, &c.BackgroundURL, &c.VideoURL)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}
