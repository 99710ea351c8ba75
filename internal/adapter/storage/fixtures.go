package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/niksmo/storefront/internal/core/domain"
)

// Fixtures is the static seed data consumed read-only at startup.
type Fixtures struct {
	Products   []domain.Product
	Categories []domain.Category
	Users      []domain.SeedUser
}

type (
	fixtureProduct struct {
		ID            int             `json:"id"`
		Title         string          `json:"title"`
		Description   string          `json:"description"`
		Price         float64         `json:"price"`
		OriginalPrice float64         `json:"originalPrice,omitempty"`
		Category      string          `json:"category"`
		Image         string          `json:"image"`
		Stock         int             `json:"stock"`
		Rating        float64         `json:"rating"`
		Reviews       []fixtureReview `json:"reviews"`
		Features      []string        `json:"features,omitempty"`
		Colors        []string        `json:"colors,omitempty"`
	}

	fixtureReview struct {
		UserID  int     `json:"userId"`
		Comment string  `json:"comment"`
		Rating  float64 `json:"rating"`
	}

	fixtureCategory struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
		Icon string `json:"icon"`
	}

	fixtureUser struct {
		ID       int             `json:"id"`
		Username string          `json:"username"`
		Password string          `json:"password"`
		Email    string          `json:"email"`
		Role     string          `json:"role"`
		Name     string          `json:"name"`
		Address  *fixtureAddress `json:"address,omitempty"`
		Phone    string          `json:"phone,omitempty"`
	}

	fixtureAddress struct {
		Street  string `json:"street"`
		City    string `json:"city"`
		State   string `json:"state"`
		ZipCode string `json:"zipCode"`
		Country string `json:"country"`
	}
)

func LoadFixtures(dir string) (Fixtures, error) {
	const op = "storage.LoadFixtures"

	var f Fixtures

	var products []fixtureProduct
	if err := readFixture(dir, "products.json", &products); err != nil {
		return Fixtures{}, fmt.Errorf("%s: %w", op, err)
	}
	for _, p := range products {
		f.Products = append(f.Products, p.toDomain())
	}

	var categories []fixtureCategory
	if err := readFixture(dir, "categories.json", &categories); err != nil {
		return Fixtures{}, fmt.Errorf("%s: %w", op, err)
	}
	for _, c := range categories {
		f.Categories = append(f.Categories, domain.Category(c))
	}

	var users []fixtureUser
	if err := readFixture(dir, "users.json", &users); err != nil {
		return Fixtures{}, fmt.Errorf("%s: %w", op, err)
	}
	for _, u := range users {
		f.Users = append(f.Users, u.toDomain())
	}

	return f, nil
}

func readFixture(dir, name string, v any) error {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func (p fixtureProduct) toDomain() domain.Product {
	dp := domain.Product{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Category:      p.Category,
		Image:         p.Image,
		Stock:         p.Stock,
		Rating:        p.Rating,
		Features:      p.Features,
		Colors:        p.Colors,
	}
	for _, r := range p.Reviews {
		dp.Reviews = append(dp.Reviews, domain.ProductReview(r))
	}
	return dp
}

func (u fixtureUser) toDomain() domain.SeedUser {
	du := domain.SeedUser{
		User: domain.User{
			ID:       u.ID,
			Username: u.Username,
			Email:    u.Email,
			Role:     u.Role,
			Name:     u.Name,
			Phone:    u.Phone,
		},
		Password: u.Password,
	}
	if u.Address != nil {
		addr := domain.Address(*u.Address)
		du.Address = &addr
	}
	return du
}
