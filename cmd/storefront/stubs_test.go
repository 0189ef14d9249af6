package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aquilaclo/storefront/internal/auth"
	"github.com/aquilaclo/storefront/internal/cart"
	"github.com/aquilaclo/storefront/internal/catalog"
	"github.com/aquilaclo/storefront/internal/order"
)

func init() {
	gin.SetMode(gin.TestMode)
	gin.DefaultWriter = io.Discard
	log.SetOutput(io.Discard)
}

var testTokens = auth.NewTokens("test-secret")

var errDB = errors.New("db down")

func bearerFor(userID string) string {
	tok, err := testTokens.Issue(&auth.User{ID: userID, Email: userID + "@example.com"})
	if err != nil {
		panic(err)
	}
	return "Bearer " + tok
}

//
// ---------- STUB REPOS (in-memory) ----------
//

// stubUserRepo implements auth.Repository.
type stubUserRepo struct {
	byEmail map[string]*auth.User
	admins  map[string]bool
	roleErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: make(map[string]*auth.User), admins: make(map[string]bool)}
}

func (s *stubUserRepo) Create(ctx context.Context, u *auth.User) error {
	if _, ok := s.byEmail[u.Email]; ok {
		return auth.ErrAlreadyExist
	}
	cp := *u
	s.byEmail[u.Email] = &cp
	return nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id string) (*auth.User, error) {
	for _, u := range s.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, auth.ErrNotFound
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	u, ok := s.byEmail[email]
	if !ok {
		return nil, auth.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *stubUserRepo) HasRole(ctx context.Context, userID, role string) (bool, error) {
	if s.roleErr != nil {
		return false, s.roleErr
	}
	return role == auth.RoleAdmin && s.admins[userID], nil
}

// stubCatalogRepo implements catalog.Repository.
type stubCatalogRepo struct {
	products []catalog.Product
	sizes    []catalog.Size
	listErr  error
}

func (s *stubCatalogRepo) List(ctx context.Context) ([]catalog.Product, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := append([]catalog.Product(nil), s.products...)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *stubCatalogRepo) GetByID(ctx context.Context, id string) (*catalog.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, catalog.ErrNotFound
}

func (s *stubCatalogRepo) SizesByProduct(ctx context.Context, productID string) ([]catalog.Size, error) {
	var out []catalog.Size
	for _, sz := range s.sizes {
		if sz.ProductID == productID {
			out = append(out, sz)
		}
	}
	return out, nil
}

func (s *stubCatalogRepo) SizesByProducts(ctx context.Context) ([]catalog.Size, error) {
	return append([]catalog.Size(nil), s.sizes...), nil
}

func (s *stubCatalogRepo) SetStock(ctx context.Context, sizeID string, stock int) error {
	for i := range s.sizes {
		if s.sizes[i].ID == sizeID {
			s.sizes[i].Stock = stock
			return nil
		}
	}
	return catalog.ErrNotFound
}

// stubCartRepo implements cart.Repository with the same upsert semantics as
// the SQL: one row per (user, product, size), increments on re-add.
type stubCartRepo struct {
	items    []cart.Item
	products map[string]catalog.Product
}

func newStubCartRepo() *stubCartRepo {
	return &stubCartRepo{products: make(map[string]catalog.Product)}
}

func (s *stubCartRepo) AddOrIncrement(ctx context.Context, userID, productID, size string, qty int) error {
	for i := range s.items {
		it := &s.items[i]
		if it.UserID == userID && it.ProductID == productID && it.Size == size {
			it.Quantity += qty
			return nil
		}
	}
	s.items = append(s.items, cart.Item{
		ID: uuid.NewString(), UserID: userID, ProductID: productID, Size: size, Quantity: qty,
	})
	return nil
}

func (s *stubCartRepo) ListByUser(ctx context.Context, userID string) ([]cart.Line, error) {
	var out []cart.Line
	for _, it := range s.items {
		if it.UserID != userID {
			continue
		}
		out = append(out, cart.Line{Item: it, Product: s.products[it.ProductID]})
	}
	return out, nil
}

func (s *stubCartRepo) Count(ctx context.Context, userID string) (int, error) {
	n := 0
	for _, it := range s.items {
		if it.UserID == userID {
			n += it.Quantity
		}
	}
	return n, nil
}

func (s *stubCartRepo) UpdateQuantity(ctx context.Context, itemID, userID string, qty int) error {
	if qty <= 0 {
		return s.Remove(ctx, itemID, userID)
	}
	for i := range s.items {
		if s.items[i].ID == itemID && s.items[i].UserID == userID {
			s.items[i].Quantity = qty
			return nil
		}
	}
	return cart.ErrNotFound
}

func (s *stubCartRepo) Remove(ctx context.Context, itemID, userID string) error {
	for i := range s.items {
		if s.items[i].ID == itemID && s.items[i].UserID == userID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return cart.ErrNotFound
}

func (s *stubCartRepo) Clear(ctx context.Context, userID string) error {
	kept := s.items[:0]
	for _, it := range s.items {
		if it.UserID != userID {
			kept = append(kept, it)
		}
	}
	s.items = kept
	return nil
}

// stubOrderRepo implements order.Repository. Create mirrors the transaction:
// it persists the order with its items and clears the linked cart stub in one
// step, or fails without touching either.
type stubOrderRepo struct {
	orders     []order.WithItems
	carts      *stubCartRepo
	failCreate error
}

func (s *stubOrderRepo) Create(ctx context.Context, o *order.Order, items []order.Item) error {
	if s.failCreate != nil {
		return s.failCreate
	}
	w := order.WithItems{Order: *o}
	w.CreatedAt = time.Now().UTC()
	for _, it := range items {
		iw := order.ItemWithProduct{Item: it}
		if s.carts != nil {
			iw.Product = s.carts.products[it.ProductID]
		}
		w.Items = append(w.Items, iw)
	}
	s.orders = append(s.orders, w)
	if s.carts != nil {
		_ = s.carts.Clear(ctx, o.UserID)
	}
	return nil
}

func (s *stubOrderRepo) ListByUser(ctx context.Context, userID string) ([]order.WithItems, error) {
	var out []order.WithItems
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *stubOrderRepo) ListAll(ctx context.Context) ([]order.WithItems, error) {
	return append([]order.WithItems(nil), s.orders...), nil
}

// product helper for seeding stubs
func seedProduct(id, name, price string, created time.Time) catalog.Product {
	return catalog.Product{
		ID: id, Name: name, Description: fmt.Sprintf("%s description", name),
		Price: price, ImageURL: "https://img.example.com/" + id + ".jpg",
		DesignName: name + " design", CreatedAt: created,
	}
}
