package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productColumns = []string{
	"id", "name", "price", "discounted_price", "category",
	"image", "in_stock", "colors", "description", "rating",
}

func TestRepository_GetAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(productColumns).
			AddRow(1, "Basic Tee", 24.0, nil, nil, "img-1", true, "{red,blue}", nil, nil).
			AddRow(4, "Linen Summer Dress", 89.0, 69.0, "dresses", "img-4", true, "{white,teal}", "Lightweight linen dress.", 4.5)

		mock.ExpectQuery("SELECT (.+) FROM products").
			WillReturnRows(rows)

		products, err := repo.GetAll(context.Background())
		require.NoError(t, err)
		require.Len(t, products, 2)

		assert.Equal(t, 1, products[0].ID)
		assert.Equal(t, []string{"red", "blue"}, products[0].Colors)
		assert.Nil(t, products[0].DiscountedPrice)
		assert.Empty(t, products[0].Category)

		assert.Equal(t, "dresses", products[1].Category)
		require.NotNil(t, products[1].DiscountedPrice)
		assert.Equal(t, 69.0, *products[1].DiscountedPrice)
		require.NotNil(t, products[1].Rating)
		assert.Equal(t, 4.5, *products[1].Rating)
	})

	t.Run("Empty table", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM products").
			WillReturnRows(sqlmock.NewRows(productColumns))

		products, err := repo.GetAll(context.Background())
		assert.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("Query error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM products").
			WillReturnError(errors.New("db error"))

		_, err := repo.GetAll(context.Background())
		assert.ErrorIs(t, err, ErrFailedListProducts)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
