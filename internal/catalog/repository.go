package catalog

import (
	"context"
	"database/sql"
	"time"

	"loomline-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Product, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetAll(ctx context.Context) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetAll"),
	)

	start := time.Now()

	query := `
	SELECT
		id,
		name,
		price,
		discounted_price,
		category,
		image,
		in_stock,
		colors,
		description,
		rating
	FROM products
	ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("query failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, ErrFailedListProducts
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var (
			p        Product
			category sql.NullString
			colors   pq.StringArray
		)
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Price,
			&p.DiscountedPrice,
			&category,
			&p.Image,
			&p.InStock,
			&colors,
			&p.Description,
			&p.Rating,
		); err != nil {
			log.Error("row scan failed",
				zap.Error(err),
				zap.Duration("duration", time.Since(start)),
			)
			return nil, ErrFailedListProducts
		}

		p.Category = category.String
		p.Colors = []string(colors)
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, ErrFailedListProducts
	}

	log.Info("query success",
		zap.Int("rows", len(products)),
		zap.Duration("duration", time.Since(start)),
	)

	return products, nil
}
