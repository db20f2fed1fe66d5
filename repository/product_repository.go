package repository

import (
	"database/sql"
	"fmt"
	"time"

	"pricewise/database"
	"pricewise/models"
)

// ProductRepository stores users' tracked products. Operations are keyed
// by user id; records are soft-deleted so ids stay stable.
type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// Add saves a product for a user and returns the stored row.
func (r *ProductRepository) Add(userID, name, url string) (*models.TrackedProduct, error) {
	query := `
		INSERT INTO tracked_products (user_id, name, url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING id, user_id, name, url, created_at, updated_at, is_active
	`

	var product models.TrackedProduct
	now := time.Now()
	err := database.DB.QueryRow(query, userID, name, url, now).Scan(
		&product.ID, &product.UserID, &product.Name, &product.URL,
		&product.CreatedAt, &product.UpdatedAt, &product.IsActive,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to add tracked product: %v", err)
	}

	return &product, nil
}

// GetByUser returns a user's active tracked products, newest first.
func (r *ProductRepository) GetByUser(userID string) ([]models.TrackedProduct, error) {
	query := `
		SELECT id, user_id, name, url, created_at, updated_at, is_active
		FROM tracked_products
		WHERE user_id = $1 AND is_active = true
		ORDER BY created_at DESC
	`

	rows, err := database.DB.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tracked products: %v", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// GetByID returns one of a user's tracked products.
func (r *ProductRepository) GetByID(userID string, id int) (*models.TrackedProduct, error) {
	query := `
		SELECT id, user_id, name, url, created_at, updated_at, is_active
		FROM tracked_products
		WHERE id = $1 AND user_id = $2 AND is_active = true
	`

	var product models.TrackedProduct
	err := database.DB.QueryRow(query, id, userID).Scan(
		&product.ID, &product.UserID, &product.Name, &product.URL,
		&product.CreatedAt, &product.UpdatedAt, &product.IsActive,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("tracked product not found")
		}
		return nil, fmt.Errorf("failed to get tracked product: %v", err)
	}

	return &product, nil
}

// GetAll returns every active tracked product across users. Used by the
// scheduled comparison refresher.
func (r *ProductRepository) GetAll() ([]models.TrackedProduct, error) {
	query := `
		SELECT id, user_id, name, url, created_at, updated_at, is_active
		FROM tracked_products
		WHERE is_active = true
		ORDER BY created_at DESC
	`

	rows, err := database.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get tracked products: %v", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// Delete soft-deletes a user's tracked product.
func (r *ProductRepository) Delete(userID string, id int) error {
	query := `UPDATE tracked_products SET is_active = false, updated_at = $3 WHERE id = $1 AND user_id = $2`
	result, err := database.DB.Exec(query, id, userID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to delete tracked product: %v", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete tracked product: %v", err)
	}
	if affected == 0 {
		return fmt.Errorf("tracked product not found")
	}

	return nil
}

func scanProducts(rows *sql.Rows) ([]models.TrackedProduct, error) {
	var products []models.TrackedProduct
	for rows.Next() {
		var product models.TrackedProduct
		err := rows.Scan(
			&product.ID, &product.UserID, &product.Name, &product.URL,
			&product.CreatedAt, &product.UpdatedAt, &product.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tracked product: %v", err)
		}
		products = append(products, product)
	}
	return products, rows.Err()
}
