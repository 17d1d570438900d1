package services

import (
	"github.com/VinitO1/Food-Order-Catering/entity"
	"github.com/VinitO1/Food-Order-Catering/pkg/apperr"
	"github.com/VinitO1/Food-Order-Catering/repository"
)

type RestaurantService struct {
	Repo *repository.RestaurantRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{Repo: repo}
}

func (s *RestaurantService) List(f repository.RestaurantFilter) ([]entity.Restaurant, error) {
	out, err := s.Repo.List(f)
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	return out, nil
}

func (s *RestaurantService) Get(id uint) (*entity.Restaurant, error) {
	r, err := s.Repo.Get(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Persistence(err)
	}
	return r, nil
}

// MenuOut groups a restaurant's menu by category for the storefront.
type MenuOut struct {
	RestaurantID uint                         `json:"restaurantId"`
	Categories   []string                     `json:"categories"`
	ByCategory   map[string][]entity.MenuItem `json:"byCategory"`
}

func (s *RestaurantService) Menu(restaurantID uint) (*MenuOut, error) {
	ok, err := s.Repo.Exists(restaurantID)
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	if !ok {
		return nil, apperr.ErrNotFound
	}

	items, err := s.Repo.ListMenu(restaurantID)
	if err != nil {
		return nil, apperr.Persistence(err)
	}

	out := &MenuOut{
		RestaurantID: restaurantID,
		ByCategory:   make(map[string][]entity.MenuItem),
	}
	for _, it := range items {
		if _, seen := out.ByCategory[it.Category]; !seen {
			out.Categories = append(out.Categories, it.Category)
		}
		out.ByCategory[it.Category] = append(out.ByCategory[it.Category], it)
	}
	return out, nil
}
