package service_test

import (
	"context"
	"fmt"
	"maps"

	"github.com/nikolayk812/klimatshop/internal/domain"
)

// In-memory repository fakes. They implement the same contracts the mongo
// repositories do, including owner-scoped visibility on cart operations.

type fakeCartRepo struct {
	items map[string]domain.CartItem // keyed by item id
	err   error
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{items: make(map[string]domain.CartItem)}
}

func (f *fakeCartRepo) GetCart(_ context.Context, ownerID string) (domain.Cart, error) {
	if f.err != nil {
		return domain.Cart{}, f.err
	}

	cart := domain.Cart{OwnerID: ownerID}
	for _, item := range f.items {
		if item.OwnerID == ownerID {
			cart.Items = append(cart.Items, item)
		}
	}
	return cart, nil
}

func (f *fakeCartRepo) IncrementItem(_ context.Context, ownerID, productID string, quantity int) (domain.CartItem, bool, error) {
	if f.err != nil {
		return domain.CartItem{}, false, f.err
	}

	for id, item := range f.items {
		if item.OwnerID == ownerID && item.ProductID == productID {
			item.Quantity += quantity
			f.items[id] = item
			return item, true, nil
		}
	}
	return domain.CartItem{}, false, nil
}

func (f *fakeCartRepo) UpsertItem(_ context.Context, item domain.CartItem) (domain.CartItem, error) {
	if f.err != nil {
		return domain.CartItem{}, f.err
	}

	for id, existing := range f.items {
		if existing.OwnerID == item.OwnerID && existing.ProductID == item.ProductID {
			existing.Quantity += item.Quantity
			f.items[id] = existing
			return existing, nil
		}
	}

	f.items[item.ID] = item
	return item, nil
}

func (f *fakeCartRepo) DeleteItem(_ context.Context, ownerID, itemID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}

	item, ok := f.items[itemID]
	if !ok || item.OwnerID != ownerID {
		return false, nil
	}

	delete(f.items, itemID)
	return true, nil
}

func (f *fakeCartRepo) Clear(_ context.Context, ownerID string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}

	var removed int64
	for id, item := range f.items {
		if item.OwnerID == ownerID {
			delete(f.items, id)
			removed++
		}
	}
	return removed, nil
}

type fakeProductRepo struct {
	products map[string]domain.Product
	err      error
}

func newFakeProductRepo(products ...domain.Product) *fakeProductRepo {
	f := &fakeProductRepo{products: make(map[string]domain.Product)}
	for _, p := range products {
		f.products[p.ID] = p
	}
	return f
}

func (f *fakeProductRepo) GetProduct(_ context.Context, productID string) (domain.Product, error) {
	if f.err != nil {
		return domain.Product{}, f.err
	}

	product, ok := f.products[productID]
	if !ok {
		return domain.Product{}, fmt.Errorf("product %s: %w", productID, domain.ErrNotFound)
	}
	return product, nil
}

func (f *fakeProductRepo) ListProducts(_ context.Context) ([]domain.Product, error) {
	if f.err != nil {
		return nil, f.err
	}

	var products []domain.Product
	for _, p := range f.products {
		products = append(products, p)
	}
	return products, nil
}

func (f *fakeProductRepo) InsertProduct(_ context.Context, product domain.Product) error {
	if f.err != nil {
		return f.err
	}

	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) UpdateProductField(_ context.Context, productID, field string, value any) (bool, error) {
	if f.err != nil {
		return false, f.err
	}

	product, ok := f.products[productID]
	if !ok {
		return false, nil
	}

	if field == "name" {
		if name, ok := value.(string); ok {
			product.Name = name
		}
	}
	f.products[productID] = product
	return true, nil
}

func (f *fakeProductRepo) DeleteProduct(_ context.Context, productID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}

	if _, ok := f.products[productID]; !ok {
		return false, nil
	}
	delete(f.products, productID)
	return true, nil
}

type fakeProjectRepo struct {
	projects map[string]domain.Project
	err      error
}

func newFakeProjectRepo(projects ...domain.Project) *fakeProjectRepo {
	f := &fakeProjectRepo{projects: make(map[string]domain.Project)}
	for _, p := range projects {
		f.projects[p.ID] = p
	}
	return f
}

func (f *fakeProjectRepo) GetProject(_ context.Context, projectID string) (domain.Project, error) {
	if f.err != nil {
		return domain.Project{}, f.err
	}

	project, ok := f.projects[projectID]
	if !ok {
		return domain.Project{}, fmt.Errorf("project %s: %w", projectID, domain.ErrNotFound)
	}
	return project, nil
}

func (f *fakeProjectRepo) ListProjects(_ context.Context) ([]domain.Project, error) {
	if f.err != nil {
		return nil, f.err
	}

	var projects []domain.Project
	for _, p := range f.projects {
		projects = append(projects, p)
	}
	return projects, nil
}

func (f *fakeProjectRepo) InsertProject(_ context.Context, project domain.Project) error {
	if f.err != nil {
		return f.err
	}

	f.projects[project.ID] = project
	return nil
}

func (f *fakeProjectRepo) UpdateProjectField(_ context.Context, projectID, field string, value any) (bool, error) {
	if f.err != nil {
		return false, f.err
	}

	project, ok := f.projects[projectID]
	if !ok {
		return false, nil
	}

	if field == "images" {
		if images, ok := value.([]string); ok {
			project.Images = images
		}
	}
	f.projects[projectID] = project
	return true, nil
}

func (f *fakeProjectRepo) DeleteProject(_ context.Context, projectID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}

	if _, ok := f.projects[projectID]; !ok {
		return false, nil
	}
	delete(f.projects, projectID)
	return true, nil
}

type fakeOrderRepo struct {
	orders map[string]domain.Order
	err    error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]domain.Order)}
}

func (f *fakeOrderRepo) GetOrder(_ context.Context, orderID string) (domain.Order, error) {
	if f.err != nil {
		return domain.Order{}, f.err
	}

	order, ok := f.orders[orderID]
	if !ok {
		return domain.Order{}, fmt.Errorf("order %s: %w", orderID, domain.ErrNotFound)
	}
	return order, nil
}

func (f *fakeOrderRepo) ListOrders(_ context.Context) ([]domain.Order, error) {
	if f.err != nil {
		return nil, f.err
	}

	var orders []domain.Order
	for _, o := range f.orders {
		orders = append(orders, o)
	}
	return orders, nil
}

func (f *fakeOrderRepo) InsertOrder(_ context.Context, order domain.Order) error {
	if f.err != nil {
		return f.err
	}

	f.orders[order.ID] = order
	return nil
}

type fakeFeedbackRepo struct {
	feedback []domain.Feedback
	err      error
}

func (f *fakeFeedbackRepo) ListFeedback(_ context.Context) ([]domain.Feedback, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.feedback, nil
}

func (f *fakeFeedbackRepo) InsertFeedback(_ context.Context, fb domain.Feedback) error {
	if f.err != nil {
		return f.err
	}

	f.feedback = append(f.feedback, fb)
	return nil
}

// fakeNotifier records delivered texts and optionally fails.
type fakeNotifier struct {
	texts []string
	err   error
}

func (f *fakeNotifier) Notify(_ context.Context, text string) error {
	if f.err != nil {
		return f.err
	}

	f.texts = append(f.texts, text)
	return nil
}

func (f *fakeCartRepo) snapshot() map[string]domain.CartItem {
	return maps.Clone(f.items)
}
