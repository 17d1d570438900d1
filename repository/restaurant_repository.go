package repository

import (
	"github.com/VinitO1/Food-Order-Catering/entity"
	"gorm.io/gorm"
)

type RestaurantRepository struct{ DB *gorm.DB }

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

type RestaurantFilter struct {
	CuisineType  string
	City         string
	CateringOnly bool
}

func (r *RestaurantRepository) List(f RestaurantFilter) ([]entity.Restaurant, error) {
	q := r.DB.Model(&entity.Restaurant{})
	if f.CuisineType != "" {
		q = q.Where("cuisine_type = ?", f.CuisineType)
	}
	if f.City != "" {
		q = q.Where("city = ?", f.City)
	}
	if f.CateringOnly {
		q = q.Where("catering_available = ?", true)
	}
	var out []entity.Restaurant
	err := q.Order("rating DESC").Find(&out).Error
	return out, err
}

func (r *RestaurantRepository) Get(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Exists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// NamesByIDs resolves display names in one query for cart enrichment.
func (r *RestaurantRepository) NamesByIDs(ids []uint) (map[uint]string, error) {
	out := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []struct {
		ID   uint
		Name string
	}
	err := r.DB.Model(&entity.Restaurant{}).
		Select("id, name").
		Where("id IN ?", ids).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ID] = row.Name
	}
	return out, nil
}

func (r *RestaurantRepository) ListMenu(restaurantID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("restaurant_id = ? AND is_available = ?", restaurantID, true).
		Order("category ASC").Order("name ASC").
		Find(&items).Error
	return items, err
}

func (r *RestaurantRepository) GetMenuItem(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
