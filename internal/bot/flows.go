package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/nikolayk812/klimatshop/internal/domain"
)

func (e *Engine) listProducts(ctx context.Context) Reply {
	products, err := e.catalog.ListProducts(ctx)
	if err != nil {
		e.log.Errorw("listing products failed", "err", err)
		return Reply{Text: "❌ Ошибка при загрузке товаров", Menu: MenuBack}
	}

	if len(products) == 0 {
		return Reply{Text: "📦 Список товаров\n\n❌ Товары не найдены", Menu: MenuBack}
	}

	var b strings.Builder
	b.WriteString("📦 Список товаров:\n\n")
	for i, product := range products {
		fmt.Fprintf(&b, "%d. %s\n   💰 %s ₽\n   📝 %s\n\n",
			i+1, product.Name, product.Price.StringFixed(0), product.ShortDescription)
	}

	return Reply{Text: b.String(), Menu: MenuBack}
}

func (e *Engine) listProjects(ctx context.Context) Reply {
	projects, err := e.catalog.ListProjects(ctx)
	if err != nil {
		e.log.Errorw("listing projects failed", "err", err)
		return Reply{Text: "❌ Ошибка при загрузке проектов", Menu: MenuBack}
	}

	if len(projects) == 0 {
		return Reply{Text: "🏗️ Список проектов\n\n❌ Проекты не найдены", Menu: MenuBack}
	}

	var b strings.Builder
	b.WriteString("🏗️ Список проектов:\n\n")
	for i, project := range projects {
		fmt.Fprintf(&b, "%d. %s\n   📍 %s\n   📷 %d изображений\n\n",
			i+1, project.Title, project.Address, len(project.Images))
	}

	return Reply{Text: b.String(), Menu: MenuBack}
}

// pickProduct builds a one-button-per-product selection list whose callback
// data is prefix+id.
func (e *Engine) pickProduct(ctx context.Context, title, prefix string) Reply {
	products, err := e.catalog.ListProducts(ctx)
	if err != nil {
		e.log.Errorw("listing products failed", "err", err)
		return Reply{Text: "❌ Ошибка при загрузке товаров", Menu: MenuBack}
	}

	if len(products) == 0 {
		return Reply{Text: "❌ Товары не найдены", Menu: MenuBack}
	}

	options := lo.Map(products, func(p domain.Product, _ int) Option {
		return Option{Label: p.Name, Data: prefix + p.ID}
	})
	options = append(options, Option{Label: "🔙 Назад", Data: selManageProducts})

	return Reply{Text: title, Options: options}
}

func (e *Engine) pickProject(ctx context.Context, title, prefix string) Reply {
	projects, err := e.catalog.ListProjects(ctx)
	if err != nil {
		e.log.Errorw("listing projects failed", "err", err)
		return Reply{Text: "❌ Ошибка при загрузке проектов", Menu: MenuBack}
	}

	if len(projects) == 0 {
		return Reply{Text: "❌ Проекты не найдены", Menu: MenuBack}
	}

	options := lo.Map(projects, func(p domain.Project, _ int) Option {
		return Option{Label: p.Title, Data: prefix + p.ID}
	})
	options = append(options, Option{Label: "🔙 Назад", Data: selManageProjects})

	return Reply{Text: title, Options: options}
}

func (e *Engine) deleteProduct(ctx context.Context, productID string) Reply {
	product, err := e.catalog.GetProduct(ctx, productID)
	if err != nil {
		return Reply{Text: "❌ Товар не найден", Menu: MenuBack}
	}

	if err := e.catalog.DeleteProduct(ctx, productID); err != nil {
		e.log.Errorw("deleting product failed", "product_id", productID, "err", err)
		return Reply{Text: "❌ Ошибка при удалении товара", Menu: MenuBack}
	}

	return Reply{Text: fmt.Sprintf("✅ Товар '%s' успешно удален!", product.Name), Menu: MenuMain}
}

func (e *Engine) deleteProject(ctx context.Context, projectID string) Reply {
	project, err := e.catalog.GetProject(ctx, projectID)
	if err != nil {
		return Reply{Text: "❌ Проект не найден", Menu: MenuBack}
	}

	if err := e.catalog.DeleteProject(ctx, projectID); err != nil {
		e.log.Errorw("deleting project failed", "project_id", projectID, "err", err)
		return Reply{Text: "❌ Ошибка при удалении проекта", Menu: MenuBack}
	}

	return Reply{Text: fmt.Sprintf("✅ Проект '%s' успешно удален!", project.Title), Menu: MenuMain}
}

func (e *Engine) finishProject(ctx context.Context, userID int64) Reply {
	sess, ok := e.sessions.get(userID)
	if !ok || sess.step != stepProjectImages {
		return Reply{Text: "Используйте /start для открытия админ панели", Menu: MenuBack}
	}

	// Commit requires at least one collected image; the flow stays open.
	if len(sess.project.Images) == 0 {
		return Reply{Text: "❌ Проект должен содержать хотя бы одно изображение!", Menu: MenuBack}
	}

	project, err := e.catalog.CreateProject(ctx, sess.project)
	if err != nil {
		e.log.Errorw("creating project failed", "user_id", userID, "err", err)
		return Reply{Text: "❌ Ошибка при сохранении проекта", Menu: MenuBack}
	}

	e.sessions.clear(userID)
	return Reply{Text: fmt.Sprintf("✅ Проект '%s' успешно добавлен!", project.Title), Menu: MenuMain}
}

func (e *Engine) finishProjectImages(ctx context.Context, userID int64) Reply {
	sess, ok := e.sessions.get(userID)
	if !ok || sess.step != stepEditProjectImages {
		return Reply{Text: "Используйте /start для открытия админ панели", Menu: MenuBack}
	}

	if len(sess.images) == 0 {
		return Reply{Text: "❌ Не добавлено ни одного изображения!", Menu: MenuBack}
	}

	// The collected list replaces the project's images wholesale.
	if err := e.catalog.UpdateProjectField(ctx, sess.editID, "images", sess.images); err != nil {
		e.log.Errorw("updating project images failed", "project_id", sess.editID, "err", err)
		return Reply{Text: "❌ Ошибка: проект не найден!", Menu: MenuBack}
	}

	count := len(sess.images)
	e.sessions.clear(userID)
	return Reply{Text: fmt.Sprintf("✅ Изображения проекта обновлены! Добавлено: %d", count), Menu: MenuMain}
}

func (e *Engine) startProductEdit(ctx context.Context, userID int64, productID string) Reply {
	product, err := e.catalog.GetProduct(ctx, productID)
	if err != nil {
		return Reply{Text: "❌ Товар не найден", Menu: MenuBack}
	}

	// Picking a product only shows the field menu; no input is expected until a
	// field is chosen, so any previous flow is simply dropped.
	e.sessions.clear(userID)

	text := fmt.Sprintf(`📝 Редактирование товара

Название: %s
Цена: %s ₽
Краткое описание: %s

Выберите, что хотите изменить:`,
		product.Name, product.Price.StringFixed(0), product.ShortDescription)

	return Reply{
		Text: text,
		Options: []Option{
			{Label: "📝 Название", Data: "edit_product_name_" + productID},
			{Label: "📄 Краткое описание", Data: "edit_product_short_desc_" + productID},
			{Label: "📋 Подробное описание", Data: "edit_product_desc_" + productID},
			{Label: "💰 Цена", Data: "edit_product_price_" + productID},
			{Label: "⚙️ Характеристики", Data: "edit_product_specs_" + productID},
			{Label: "📷 Изображение", Data: "edit_product_image_" + productID},
			{Label: "🔙 Назад", Data: selEditProduct},
		},
	}
}

func (e *Engine) startProjectEdit(ctx context.Context, userID int64, projectID string) Reply {
	project, err := e.catalog.GetProject(ctx, projectID)
	if err != nil {
		return Reply{Text: "❌ Проект не найден", Menu: MenuBack}
	}

	e.sessions.clear(userID)

	text := fmt.Sprintf(`📝 Редактирование проекта

Название: %s
Адрес: %s
Изображений: %d

Выберите, что хотите изменить:`,
		project.Title, project.Address, len(project.Images))

	return Reply{
		Text: text,
		Options: []Option{
			{Label: "📝 Название", Data: "edit_project_title_" + projectID},
			{Label: "📋 Описание", Data: "edit_project_desc_" + projectID},
			{Label: "📍 Адрес", Data: "edit_project_address_" + projectID},
			{Label: "📷 Изображения", Data: "edit_project_images_" + projectID},
			{Label: "🔙 Назад", Data: selEditProject},
		},
	}
}

// productEditFields maps the selection prefix onto the stored field and prompt
// for single-field product edits.
var productEditFields = []struct {
	prefix string
	field  string
	prompt string
}{
	{"edit_product_name_", "name", "📝 Введите новое название товара:"},
	{"edit_product_short_desc_", "short_description", "📄 Введите новое краткое описание:"},
	{"edit_product_desc_", "description", "📋 Введите новое подробное описание:"},
	{"edit_product_price_", "price", "💰 Введите новую цену товара (только число):"},
	{"edit_product_specs_", "specifications", "⚙️ Введите новые характеристики (Характеристика: Значение, по одной на строку):"},
}

var projectEditFields = []struct {
	prefix string
	field  string
	prompt string
}{
	{"edit_project_title_", "title", "📝 Введите новое название проекта:"},
	{"edit_project_desc_", "description", "📋 Введите новое описание проекта:"},
	{"edit_project_address_", "address", "📍 Введите новый адрес проекта:"},
}

// selectEditField enters a single-field edit when data carries a field tag.
func (e *Engine) selectEditField(ctx context.Context, userID int64, data string) (Reply, bool) {
	for _, f := range productEditFields {
		if strings.HasPrefix(data, f.prefix) {
			e.sessions.put(userID, session{
				step:      stepEditProductField,
				editID:    strings.TrimPrefix(data, f.prefix),
				editField: f.field,
			})
			return Reply{Text: f.prompt}, true
		}
	}

	if strings.HasPrefix(data, "edit_product_image_") {
		e.sessions.put(userID, session{
			step:   stepEditProductImage,
			editID: strings.TrimPrefix(data, "edit_product_image_"),
		})
		return Reply{Text: "📷 Отправьте новое изображение товара:"}, true
	}

	for _, f := range projectEditFields {
		if strings.HasPrefix(data, f.prefix) {
			e.sessions.put(userID, session{
				step:      stepEditProjectField,
				editID:    strings.TrimPrefix(data, f.prefix),
				editField: f.field,
			})
			return Reply{Text: f.prompt}, true
		}
	}

	if strings.HasPrefix(data, "edit_project_images_") {
		e.sessions.put(userID, session{
			step:   stepEditProjectImages,
			editID: strings.TrimPrefix(data, "edit_project_images_"),
		})
		return Reply{Text: "📷 Отправьте изображения проекта (текущие будут заменены):"}, true
	}

	return Reply{}, false
}

func (e *Engine) applyProductFieldEdit(ctx context.Context, userID int64, sess session, text string) Reply {
	var value any = text

	switch sess.editField {
	case "price":
		price, err := decimal.NewFromString(strings.TrimSpace(text))
		if err != nil || price.IsNegative() {
			return Reply{Text: "❌ Пожалуйста, введите корректную цену (только число)"}
		}
		value = price

	case "specifications":
		specs, skipped := parseSpecs(text)
		if skipped > 0 {
			e.log.Debugw("specification lines skipped", "user_id", userID, "skipped", skipped)
		}
		value = specs
	}

	if err := e.catalog.UpdateProductField(ctx, sess.editID, sess.editField, value); err != nil {
		e.log.Errorw("updating product failed", "product_id", sess.editID, "field", sess.editField, "err", err)
		return Reply{Text: "❌ Ошибка: товар не найден!", Menu: MenuBack}
	}

	e.sessions.clear(userID)
	return Reply{Text: "✅ Товар обновлен!", Menu: MenuMain}
}

func (e *Engine) applyProjectFieldEdit(ctx context.Context, userID int64, sess session, text string) Reply {
	if err := e.catalog.UpdateProjectField(ctx, sess.editID, sess.editField, text); err != nil {
		e.log.Errorw("updating project failed", "project_id", sess.editID, "field", sess.editField, "err", err)
		return Reply{Text: "❌ Ошибка: проект не найден!", Menu: MenuBack}
	}

	e.sessions.clear(userID)
	return Reply{Text: "✅ Проект обновлен!", Menu: MenuMain}
}

func (e *Engine) statistics(ctx context.Context) Reply {
	status, err := e.backups.GetStatus(ctx)
	if err != nil {
		e.log.Errorw("reading statistics failed", "err", err)
		return Reply{Text: "❌ Ошибка при загрузке статистики", Menu: MenuBack}
	}

	text := fmt.Sprintf(`📊 Статистика

📦 Товары: %d
🏗️ Проекты: %d
🛒 Заказы: %d
💬 Обратная связь: %d`,
		status.Collections["products"],
		status.Collections["projects"],
		status.Collections["orders"],
		status.Collections["feedback"])

	return Reply{Text: text, Menu: MenuBack}
}

func (e *Engine) createBackup(ctx context.Context) Reply {
	info, err := e.backups.Create(ctx)
	if err != nil {
		e.log.Errorw("creating backup failed", "err", err)
		return Reply{Text: "❌ Ошибка при создании резервной копии", Menu: MenuBack}
	}

	var b strings.Builder
	b.WriteString("✅ Резервная копия создана!\n\n")
	for _, name := range backupCollectionsOrder {
		fmt.Fprintf(&b, "%s: %d документов\n", name, info.Collections[name])
	}

	return Reply{Text: b.String(), Menu: MenuBack}
}

func (e *Engine) restoreBackup(ctx context.Context) Reply {
	restored, err := e.backups.Restore(ctx)
	if err != nil {
		e.log.Errorw("restoring backup failed", "err", err)
		return Reply{Text: "❌ Ошибка при восстановлении данных", Menu: MenuBack}
	}

	var b strings.Builder
	b.WriteString("✅ Данные восстановлены!\n\n")
	for _, name := range backupCollectionsOrder {
		if count, ok := restored[name]; ok {
			fmt.Fprintf(&b, "%s: %d документов\n", name, count)
		}
	}

	return Reply{Text: b.String(), Menu: MenuBack}
}

func (e *Engine) backupStatus(ctx context.Context) Reply {
	status, err := e.backups.GetStatus(ctx)
	if err != nil {
		e.log.Errorw("reading database status failed", "err", err)
		return Reply{Text: "❌ Ошибка при получении состояния базы данных", Menu: MenuBack}
	}

	var b strings.Builder
	b.WriteString("📊 Состояние базы данных:\n\n")
	for _, name := range backupCollectionsOrder {
		fmt.Fprintf(&b, "%s: %d документов\n", name, status.Collections[name])
	}
	fmt.Fprintf(&b, "\nВсего документов: %d", status.Total)

	return Reply{Text: b.String(), Menu: MenuBack}
}

var backupCollectionsOrder = []string{"products", "projects", "orders", "feedback"}
