package catalog

import (
	"github.com/SergeyBogomolovv/royal-shop/internal/entities"
)

// AllCategories фильтр витрины "без фильтра".
const AllCategories = "All"

// Store хранит текущий список товаров и их остатки.
// Не потокобезопасен: доступ сериализует владелец (service.ShopService).
type Store struct {
	products []*entities.Product
	index    map[string]*entities.Product
}

func NewStore(products []entities.Product) *Store {
	s := &Store{
		products: make([]*entities.Product, 0, len(products)),
		index:    make(map[string]*entities.Product, len(products)),
	}
	for _, p := range products {
		if _, ok := s.index[p.ID]; ok {
			continue
		}
		p := p.Clone()
		if p.Stock < 0 {
			p.Stock = 0
		}
		s.products = append(s.products, &p)
		s.index[p.ID] = &p
	}
	return s
}

func (s *Store) List() []entities.Product {
	res := make([]entities.Product, 0, len(s.products))
	for _, p := range s.products {
		res = append(res, p.Clone())
	}
	return res
}

func (s *Store) Get(id string) (entities.Product, bool) {
	p, ok := s.index[id]
	if !ok {
		return entities.Product{}, false
	}
	return p.Clone(), true
}

func (s *Store) Len() int {
	return len(s.products)
}

// Categories возвращает категории в порядке первого появления.
func (s *Store) Categories() []string {
	seen := make(map[string]struct{})
	res := make([]string, 0)
	for _, p := range s.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		res = append(res, p.Category)
	}
	return res
}

func (s *Store) ByCategory(category string) []entities.Product {
	if category == "" || category == AllCategories {
		return s.List()
	}
	res := make([]entities.Product, 0)
	for _, p := range s.products {
		if p.Category == category {
			res = append(res, p.Clone())
		}
	}
	return res
}

// SetStock заменяет остаток товара, отрицательное значение приводится к 0.
func (s *Store) SetStock(id string, stock int) entities.Outcome {
	p, ok := s.index[id]
	if !ok {
		return entities.OutcomeIgnoredUnknownID
	}
	p.Stock = max(stock, 0)
	return entities.OutcomeApplied
}

// Deduct списывает остатки по строкам корзины, не опускаясь ниже 0.
func (s *Store) Deduct(lines []entities.CartLine) {
	for _, l := range lines {
		p, ok := s.index[l.ID]
		if !ok {
			continue
		}
		p.Stock = max(p.Stock-l.Quantity, 0)
	}
}
