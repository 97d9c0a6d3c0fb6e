package repositories

import (
	"errors"

	"github.com/servetisikli/takstore-backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrDuplicateOrderNumber = errors.New("duplicate order number")
)

type OrderRepository interface {
	Create(order *models.Order) error
	FindByID(id string) (*models.Order, error)
	// FindByIDWithUser performs the read-side join of the owning user for the
	// denormalized order view.
	FindByIDWithUser(id string) (*models.Order, error)
	FindByUserID(userID string) ([]models.Order, error)
	Update(order *models.Order) error
	Delete(id string) error
}

type OrderRepositoryImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

func (r *OrderRepositoryImpl) Create(order *models.Order) error {
	err := r.db.Create(order).Error
	if err != nil {
		// Unique index on order_number; the caller decides whether to retry
		// with a fresh suffix.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateOrderNumber
		}
		return err
	}
	return nil
}

func (r *OrderRepositoryImpl) FindByID(id string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepositoryImpl) FindByIDWithUser(id string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").Preload("User").First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepositoryImpl) FindByUserID(userID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepositoryImpl) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

func (r *OrderRepositoryImpl) Delete(id string) error {
	res := r.db.Select("Items").Delete(&models.Order{BaseModel: models.BaseModel{ID: id}})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
