package bot_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikolayk812/klimatshop/internal/backup"
	"github.com/nikolayk812/klimatshop/internal/bot"
	"github.com/nikolayk812/klimatshop/internal/domain"
	"github.com/nikolayk812/klimatshop/internal/service"
)

const adminID int64 = 42

type engineEnv struct {
	engine   *bot.Engine
	products *fakeProductRepo
	projects *fakeProjectRepo
}

func newEngineEnv() *engineEnv {
	products := &fakeProductRepo{m: map[string]domain.Product{}}
	projects := &fakeProjectRepo{m: map[string]domain.Project{}}

	catalog := service.NewCatalog(products, projects, nil)
	engine := bot.NewEngine(catalog, &fakeBackupManager{}, time.Hour, nil)

	return &engineEnv{
		engine:   engine,
		products: products,
		projects: projects,
	}
}

func TestEngine_Start(t *testing.T) {
	env := newEngineEnv()

	reply := env.engine.Start(t.Context(), adminID)
	assert.Contains(t, reply.Text, "Админ панель")
	assert.Equal(t, bot.MenuMain, reply.Menu)
}

func TestEngine_AddProductFlow(t *testing.T) {
	ctx := t.Context()
	env := newEngineEnv()

	reply := env.engine.HandleSelect(ctx, adminID, "add_product")
	assert.Contains(t, reply.Text, "Введите название товара")

	reply = env.engine.HandleText(ctx, adminID, "Кондиционер Daikin FTXB25")
	assert.Contains(t, reply.Text, "краткое описание")

	reply = env.engine.HandleText(ctx, adminID, "Настенная сплит-система")
	assert.Contains(t, reply.Text, "подробное описание")

	reply = env.engine.HandleText(ctx, adminID, "Тихая и экономичная модель для спальни")
	assert.Contains(t, reply.Text, "цену товара")

	// A non-numeric price keeps the flow on the same step.
	reply = env.engine.HandleText(ctx, adminID, "дорого")
	assert.Contains(t, reply.Text, "корректную цену")

	reply = env.engine.HandleText(ctx, adminID, "45990.50")
	assert.Contains(t, reply.Text, "характеристики")

	reply = env.engine.HandleText(ctx, adminID, "Мощность: 2.5 кВт\nбез двоеточия\nШум: 19 дБ")
	assert.Contains(t, reply.Text, "изображение товара")

	// Text during the photo step only re-prompts.
	reply = env.engine.HandleText(ctx, adminID, "вот ссылка")
	assert.Contains(t, reply.Text, "изображение товара")
	assert.Empty(t, env.products.m)

	reply = env.engine.HandlePhoto(ctx, adminID, "data:image/jpeg;base64,AAAA")
	assert.Contains(t, reply.Text, "успешно добавлен")
	assert.Equal(t, bot.MenuMain, reply.Menu)

	require.Len(t, env.products.m, 1)
	var created domain.Product
	for _, p := range env.products.m {
		created = p
	}

	assert.Equal(t, "Кондиционер Daikin FTXB25", created.Name)
	assert.True(t, decimal.RequireFromString("45990.50").Equal(created.Price))
	assert.Equal(t, map[string]string{"Мощность": "2.5 кВт", "Шум": "19 дБ"}, created.Specifications)
	assert.Equal(t, "data:image/jpeg;base64,AAAA", created.ImageURL)
	assert.NotEmpty(t, created.ID)

	// The flow is finished: further photos are ignored.
	reply = env.engine.HandlePhoto(ctx, adminID, "data:image/jpeg;base64,BBBB")
	assert.Contains(t, reply.Text, "/start")
	assert.Len(t, env.products.m, 1)
}

func TestEngine_AddProjectFlow(t *testing.T) {
	ctx := t.Context()
	env := newEngineEnv()

	env.engine.HandleSelect(ctx, adminID, "add_project")
	env.engine.HandleText(ctx, adminID, "ЖК Солнечный")
	env.engine.HandleText(ctx, adminID, "Монтаж мульти-сплит системы")
	reply := env.engine.HandleText(ctx, adminID, "ул. Ленина, 10")
	assert.Contains(t, reply.Text, "изображения проекта")

	// Finishing without a single image is rejected.
	reply = env.engine.HandleSelect(ctx, adminID, "finish_project")
	assert.Contains(t, reply.Text, "хотя бы одно изображение")
	assert.Empty(t, env.projects.m)

	reply = env.engine.HandlePhoto(ctx, adminID, "img-1")
	assert.Contains(t, reply.Text, "Всего: 1")
	assert.Equal(t, bot.MenuProjectImages, reply.Menu)

	reply = env.engine.HandlePhoto(ctx, adminID, "img-2")
	assert.Contains(t, reply.Text, "Всего: 2")

	reply = env.engine.HandleSelect(ctx, adminID, "finish_project")
	assert.Contains(t, reply.Text, "успешно добавлен")

	require.Len(t, env.projects.m, 1)
	var created domain.Project
	for _, p := range env.projects.m {
		created = p
	}

	assert.Equal(t, "ЖК Солнечный", created.Title)
	assert.Equal(t, "ул. Ленина, 10", created.Address)
	// Receipt order is preserved.
	assert.Equal(t, []string{"img-1", "img-2"}, created.Images)
}

func TestEngine_EditProductPrice(t *testing.T) {
	ctx := t.Context()
	env := newEngineEnv()

	product := domain.Product{
		ID:    "p-1",
		Name:  "Кондиционер Ballu",
		Price: decimal.NewFromInt(23990),
	}
	env.products.m[product.ID] = product

	reply := env.engine.HandleSelect(ctx, adminID, "edit_product_p-1")
	assert.Contains(t, reply.Text, "Редактирование товара")
	assert.NotEmpty(t, reply.Options)

	reply = env.engine.HandleSelect(ctx, adminID, "edit_product_price_p-1")
	assert.Contains(t, reply.Text, "новую цену")

	reply = env.engine.HandleText(ctx, adminID, "не число")
	assert.Contains(t, reply.Text, "корректную цену")

	reply = env.engine.HandleText(ctx, adminID, "25990")
	assert.Contains(t, reply.Text, "Товар обновлен")

	require.Len(t, env.products.updates, 1)
	assert.Equal(t, "price", env.products.updates[0].field)
	price, ok := env.products.updates[0].value.(decimal.Decimal)
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(25990).Equal(price))
}

func TestEngine_EditProjectImages(t *testing.T) {
	ctx := t.Context()
	env := newEngineEnv()

	env.projects.m["pr-1"] = domain.Project{
		ID:     "pr-1",
		Title:  "ЖК Солнечный",
		Images: []string{"old-1"},
	}

	reply := env.engine.HandleSelect(ctx, adminID, "edit_project_images_pr-1")
	assert.Contains(t, reply.Text, "изображения проекта")

	// Finishing before any image: nothing to replace with.
	reply = env.engine.HandleSelect(ctx, adminID, "finish_project_images")
	assert.Contains(t, reply.Text, "ни одного изображения")

	env.engine.HandlePhoto(ctx, adminID, "new-1")
	reply = env.engine.HandlePhoto(ctx, adminID, "new-2")
	assert.Equal(t, bot.MenuProjectImagesEdit, reply.Menu)

	reply = env.engine.HandleSelect(ctx, adminID, "finish_project_images")
	assert.Contains(t, reply.Text, "обновлены")

	require.Len(t, env.projects.updates, 1)
	assert.Equal(t, "images", env.projects.updates[0].field)
	assert.Equal(t, []string{"new-1", "new-2"}, env.projects.updates[0].value)
}

func TestEngine_DeleteProduct(t *testing.T) {
	ctx := t.Context()
	env := newEngineEnv()

	env.products.m["p-1"] = domain.Product{ID: "p-1", Name: "Кондиционер Ballu"}

	reply := env.engine.HandleSelect(ctx, adminID, "delete_product")
	require.NotEmpty(t, reply.Options)
	assert.Equal(t, "delete_product_p-1", reply.Options[0].Data)

	reply = env.engine.HandleSelect(ctx, adminID, "delete_product_p-1")
	assert.Contains(t, reply.Text, "успешно удален")
	assert.Empty(t, env.products.m)

	// Deleting again answers with not found.
	reply = env.engine.HandleSelect(ctx, adminID, "delete_product_p-1")
	assert.Contains(t, reply.Text, "не найден")
}

func TestEngine_UnknownSelection(t *testing.T) {
	env := newEngineEnv()

	reply := env.engine.HandleSelect(t.Context(), adminID, "nonsense")
	assert.Equal(t, bot.MenuMain, reply.Menu)
}

func TestEngine_TextWithoutSession(t *testing.T) {
	env := newEngineEnv()

	reply := env.engine.HandleText(t.Context(), adminID, "привет")
	assert.Contains(t, reply.Text, "/start")
}

func TestEngine_Statistics(t *testing.T) {
	env := newEngineEnv()

	reply := env.engine.HandleSelect(t.Context(), adminID, "statistics")
	assert.Contains(t, reply.Text, "Статистика")
	assert.Contains(t, reply.Text, "Товары: 3")
}

func TestEngine_BackupMenu(t *testing.T) {
	ctx := t.Context()
	env := newEngineEnv()

	reply := env.engine.HandleSelect(ctx, adminID, "backup_create")
	assert.Contains(t, reply.Text, "Резервная копия создана")

	reply = env.engine.HandleSelect(ctx, adminID, "backup_status")
	assert.Contains(t, reply.Text, "Всего документов")
}

// --- fakes ---

type fieldUpdate struct {
	id    string
	field string
	value any
}

type fakeProductRepo struct {
	m       map[string]domain.Product
	updates []fieldUpdate
}

func (f *fakeProductRepo) GetProduct(_ context.Context, id string) (domain.Product, error) {
	p, ok := f.m[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}
	return p, nil
}

func (f *fakeProductRepo) ListProducts(_ context.Context) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range f.m {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) InsertProduct(_ context.Context, p domain.Product) error {
	f.m[p.ID] = p
	return nil
}

func (f *fakeProductRepo) UpdateProductField(_ context.Context, id, field string, value any) (bool, error) {
	if _, ok := f.m[id]; !ok {
		return false, nil
	}
	f.updates = append(f.updates, fieldUpdate{id: id, field: field, value: value})
	return true, nil
}

func (f *fakeProductRepo) DeleteProduct(_ context.Context, id string) (bool, error) {
	if _, ok := f.m[id]; !ok {
		return false, nil
	}
	delete(f.m, id)
	return true, nil
}

type fakeProjectRepo struct {
	m       map[string]domain.Project
	updates []fieldUpdate
}

func (f *fakeProjectRepo) GetProject(_ context.Context, id string) (domain.Project, error) {
	p, ok := f.m[id]
	if !ok {
		return domain.Project{}, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	return p, nil
}

func (f *fakeProjectRepo) ListProjects(_ context.Context) ([]domain.Project, error) {
	var out []domain.Project
	for _, p := range f.m {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProjectRepo) InsertProject(_ context.Context, p domain.Project) error {
	f.m[p.ID] = p
	return nil
}

func (f *fakeProjectRepo) UpdateProjectField(_ context.Context, id, field string, value any) (bool, error) {
	if _, ok := f.m[id]; !ok {
		return false, nil
	}
	f.updates = append(f.updates, fieldUpdate{id: id, field: field, value: value})
	return true, nil
}

func (f *fakeProjectRepo) DeleteProject(_ context.Context, id string) (bool, error) {
	if _, ok := f.m[id]; !ok {
		return false, nil
	}
	delete(f.m, id)
	return true, nil
}

type fakeBackupManager struct{}

func (f *fakeBackupManager) Create(context.Context) (backup.Info, error) {
	return backup.Info{
		Timestamp:   time.Now().UTC(),
		Collections: map[string]int{"products": 3, "projects": 2, "orders": 1, "feedback": 0},
	}, nil
}

func (f *fakeBackupManager) Restore(context.Context) (map[string]int, error) {
	return map[string]int{"products": 3, "projects": 2}, nil
}

func (f *fakeBackupManager) GetStatus(context.Context) (backup.Status, error) {
	return backup.Status{
		Collections: map[string]int64{"products": 3, "projects": 2, "orders": 1, "feedback": 0},
		Total:       6,
		HasData:     true,
	}, nil
}
