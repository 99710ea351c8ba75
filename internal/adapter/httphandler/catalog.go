package httphandler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// GET v1/products?category=&q=&sort=&min_price=&max_price=&min_rating= (200 OK)
// GET v1/products/{id} (200 OK, 404 Not found)
// POST/PATCH/DELETE are admin-only CRUD.

type CatalogHandler struct {
	catalog port.CatalogStore
}

func RegisterCatalog(
	mux *http.ServeMux, catalog port.CatalogStore, session port.SessionReader,
) {
	h := CatalogHandler{catalog}
	mux.HandleFunc("GET /v1/products", h.ListProducts)
	mux.HandleFunc("GET /v1/products/featured", h.FeaturedProducts)
	mux.HandleFunc("GET /v1/products/{id}", h.GetProduct)
	mux.HandleFunc("GET /v1/categories", h.ListCategories)

	mux.HandleFunc("POST /v1/products",
		RequireAdmin(session, h.CreateProduct))
	mux.HandleFunc("PATCH /v1/products/{id}",
		RequireAdmin(session, h.UpdateProduct))
	mux.HandleFunc("DELETE /v1/products/{id}",
		RequireAdmin(session, h.DeleteProduct))
}

func (h CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var ps []domain.Product
	if search := q.Get("q"); search != "" {
		ps = h.catalog.Search(search)
	} else {
		f := domain.ProductFilter{Category: q.Get("category")}
		f.MinPrice = queryFloat(q.Get("min_price"))
		f.MaxPrice = queryFloat(q.Get("max_price"))
		f.MinRating = queryFloat(q.Get("min_rating"))
		ps = h.catalog.Filter(f)
	}

	ps = h.catalog.Sort(ps, domain.SortKey(q.Get("sort")))
	writeJSON(w, http.StatusOK, toProducts(ps))
}

func (h CatalogHandler) FeaturedProducts(w http.ResponseWriter, r *http.Request) {
	const featuredCount = 4
	writeJSON(w, http.StatusOK, toProducts(h.catalog.Featured(featuredCount)))
}

func (h CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	p, found := h.catalog.ProductByID(id)
	if !found {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, toProduct(p))
}

func (h CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	cs := h.catalog.Categories()
	out := make([]Category, 0, len(cs))
	for _, c := range cs {
		out = append(out, Category(c))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.CreateProduct"
	log := slog.With("op", op)

	var p Product
	if !decodeJSON(w, r, &p) {
		return
	}

	created := h.catalog.Create(p.toDomain())
	log.Info("product created", "id", created.ID)
	writeJSON(w, http.StatusCreated, toProduct(created))
}

func (h CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var patch struct {
		Title         *string         `json:"title"`
		Description   *string         `json:"description"`
		Price         *float64        `json:"price"`
		OriginalPrice *float64        `json:"originalPrice"`
		Category      *string         `json:"category"`
		Image         *string         `json:"image"`
		Stock         *int            `json:"stock"`
		Rating        *float64        `json:"rating"`
		Reviews       []ProductReview `json:"reviews"`
		Features      []string        `json:"features"`
		Colors        []string        `json:"colors"`
	}
	if !decodeJSON(w, r, &patch) {
		return
	}

	dp := domain.ProductPatch{
		Title:         patch.Title,
		Description:   patch.Description,
		Price:         patch.Price,
		OriginalPrice: patch.OriginalPrice,
		Category:      patch.Category,
		Image:         patch.Image,
		Stock:         patch.Stock,
		Rating:        patch.Rating,
		Features:      patch.Features,
		Colors:        patch.Colors,
	}
	for _, rv := range patch.Reviews {
		dp.Reviews = append(dp.Reviews, domain.ProductReview(rv))
	}

	updated, err := h.catalog.Update(id, dp)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProduct(updated))
}

func (h CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.DeleteProduct"
	log := slog.With("op", op)

	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.catalog.Delete(id); err != nil {
		writeError(w, err)
		return
	}
	log.Info("product deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

func queryFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
