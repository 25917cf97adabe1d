package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"loomline-be/internal/catalog"
	"loomline-be/internal/config"
	"loomline-be/internal/hero"

	"github.com/lib/pq"
	"github.com/spf13/pflag"
)

const schema = `
CREATE TABLE IF NOT EXISTS products (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
	discounted_price NUMERIC(10,2) CHECK (discounted_price <= price),
	category TEXT,
	image TEXT NOT NULL,
	in_stock BOOLEAN NOT NULL DEFAULT TRUE,
	colors TEXT[] NOT NULL,
	description TEXT,
	rating NUMERIC(2,1) CHECK (rating >= 0 AND rating <= 5)
);

CREATE TABLE IF NOT EXISTS hero_contents (
	id SERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	subtitle TEXT NOT NULL,
	background_url TEXT NOT NULL,
	video_url TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT NOW()
);
`

func main() {
	seed := pflag.Bool("seed", false, "seed the catalog fixture and default hero content")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := sql.Open("postgres", cfg.Postgres.DSN())
	if err != nil {
		log.Fatalf("failed to connect db: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	if err := run(ctx, db, *seed); err != nil {
		log.Fatal(err)
	}

	log.Println("migration complete")
}

func run(ctx context.Context, db *sql.DB, seed bool) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if !seed {
		return nil
	}

	if err := seedProducts(ctx, db); err != nil {
		return err
	}
	return seedHero(ctx, db)
}

func seedProducts(ctx context.Context, db *sql.DB) error {
	query := `
	INSERT INTO products (
		id, name, price, discounted_price, category,
		image, in_stock, colors, description, rating
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (id) DO NOTHING
	`

	for _, p := range catalog.Fixture() {
		var category interface{}
		if p.Category != "" {
			category = p.Category
		}

		_, err := db.ExecContext(ctx, query,
			p.ID, p.Name, p.Price, p.DiscountedPrice, category,
			p.Image, p.InStock, pq.Array(p.Colors), p.Description, p.Rating,
		)
		if err != nil {
			return fmt.Errorf("failed to seed product %d: %w", p.ID, err)
		}
	}

	log.Printf("seeded %d products", len(catalog.Fixture()))
	return nil
}

func seedHero(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM hero_contents`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count hero contents: %w", err)
	}
	if count > 0 {
		return nil
	}

	c := hero.Default()
	_, err := db.ExecContext(ctx, `
		INSERT INTO hero_contents (title, subtitle, background_url, video_url)
		VALUES ($1, $2, $3, $4)
	`, c.Title, c.Subtitle, c.BackgroundURL, c.VideoURL)
	if err != nil {
		return fmt.Errorf("failed to seed hero content: %w", err)
	}

	log.Println("seeded default hero content")
	return nil
}
