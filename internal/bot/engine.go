package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nikolayk812/klimatshop/internal/backup"
	"github.com/nikolayk812/klimatshop/internal/service"
)

// BackupManager is the slice of the backup utility the bot drives.
type BackupManager interface {
	Create(ctx context.Context) (backup.Info, error)
	Restore(ctx context.Context) (map[string]int, error)
	GetStatus(ctx context.Context) (backup.Status, error)
}

// Engine is the admin conversation state machine, independent of any chat
// transport: it consumes text, photo and selection events per admin user and
// answers with replies. At most one conversation is in flight per user.
type Engine struct {
	catalog  *service.Catalog
	backups  BackupManager
	sessions *sessionStore
	log      *zap.SugaredLogger
}

func NewEngine(catalog *service.Catalog, backups BackupManager, sessionTTL time.Duration, logger *zap.SugaredLogger) *Engine {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Engine{
		catalog:  catalog,
		backups:  backups,
		sessions: newSessionStore(sessionTTL),
		log:      logger,
	}
}

// Start resets the user's conversation and shows the main menu.
func (e *Engine) Start(_ context.Context, userID int64) Reply {
	e.sessions.clear(userID)

	return Reply{
		Text: `🔧 Админ панель КЛИМАТ ТЕХНО

Добро пожаловать в панель управления интернет-магазином кондиционеров!

Выберите действие:`,
		Menu: MenuMain,
	}
}

// HandleSelect processes an inline button press.
func (e *Engine) HandleSelect(ctx context.Context, userID int64, data string) Reply {
	switch data {
	case selMainMenu:
		e.sessions.clear(userID)
		return Reply{Text: "🔧 Админ панель КЛИМАТ ТЕХНО\n\nВыберите действие:", Menu: MenuMain}

	case selManageProducts:
		return Reply{Text: "📦 Управление товарами\n\nВыберите действие:", Menu: MenuProducts}

	case selManageProjects:
		return Reply{Text: "🏗️ Управление проектами\n\nВыберите действие:", Menu: MenuProjects}

	case selManageBackups:
		return Reply{Text: "💾 Резервные копии\n\nВыберите действие:", Menu: MenuBackups}

	case selAddProduct:
		e.sessions.put(userID, session{step: stepProductName})
		return Reply{Text: "➕ Добавление нового товара\n\n📝 Введите название товара:"}

	case selAddProject:
		e.sessions.put(userID, session{step: stepProjectTitle})
		return Reply{Text: "➕ Добавление нового проекта\n\n📝 Введите название проекта:"}

	case selListProducts:
		return e.listProducts(ctx)

	case selListProjects:
		return e.listProjects(ctx)

	case selEditProduct:
		return e.pickProduct(ctx, "📝 Выберите товар для редактирования:", "edit_product_")

	case selEditProject:
		return e.pickProject(ctx, "📝 Выберите проект для редактирования:", "edit_project_")

	case selDeleteProduct:
		return e.pickProduct(ctx, "🗑️ Выберите товар для удаления:", "delete_product_")

	case selDeleteProject:
		return e.pickProject(ctx, "🗑️ Выберите проект для удаления:", "delete_project_")

	case selStatistics:
		return e.statistics(ctx)

	case selBackupCreate:
		return e.createBackup(ctx)

	case selBackupRestore:
		return e.restoreBackup(ctx)

	case selBackupStatus:
		return e.backupStatus(ctx)

	case selFinishProject:
		return e.finishProject(ctx, userID)

	case selFinishProjectImages:
		return e.finishProjectImages(ctx, userID)

	case selContinueImages, selContinueProjectImage:
		return Reply{Text: "📷 Отправьте еще одно изображение проекта:"}
	}

	// Field-specific edit tags carry the target identity as a suffix; they must
	// be matched before the shorter entity-wide prefixes.
	if reply, ok := e.selectEditField(ctx, userID, data); ok {
		return reply
	}

	switch {
	case strings.HasPrefix(data, "edit_product_"):
		return e.startProductEdit(ctx, userID, strings.TrimPrefix(data, "edit_product_"))

	case strings.HasPrefix(data, "edit_project_"):
		return e.startProjectEdit(ctx, userID, strings.TrimPrefix(data, "edit_project_"))

	case strings.HasPrefix(data, "delete_product_"):
		return e.deleteProduct(ctx, strings.TrimPrefix(data, "delete_product_"))

	case strings.HasPrefix(data, "delete_project_"):
		return e.deleteProject(ctx, strings.TrimPrefix(data, "delete_project_"))
	}

	e.log.Warnw("unknown selection", "user_id", userID, "data", data)
	return Reply{Text: "Выберите действие:", Menu: MenuMain}
}

// HandleText advances the active flow with one text message.
func (e *Engine) HandleText(ctx context.Context, userID int64, text string) Reply {
	sess, ok := e.sessions.get(userID)
	if !ok || sess.step == stepNone {
		return Reply{Text: "Используйте /start для открытия админ панели", Menu: MenuBack}
	}

	switch sess.step {
	case stepProductName:
		sess.product.Name = text
		sess.step = stepProductShortDesc
		e.sessions.put(userID, sess)
		return Reply{Text: "📝 Введите краткое описание товара:"}

	case stepProductShortDesc:
		sess.product.ShortDescription = text
		sess.step = stepProductDesc
		e.sessions.put(userID, sess)
		return Reply{Text: "📝 Введите подробное описание товара:"}

	case stepProductDesc:
		sess.product.Description = text
		sess.step = stepProductPrice
		e.sessions.put(userID, sess)
		return Reply{Text: "💰 Введите цену товара (только число):"}

	case stepProductPrice:
		price, err := decimal.NewFromString(strings.TrimSpace(text))
		if err != nil || price.IsNegative() {
			// Stay on the price step until a usable number arrives.
			return Reply{Text: "❌ Пожалуйста, введите корректную цену (только число)"}
		}
		sess.product.Price = price
		sess.step = stepProductSpecs
		e.sessions.put(userID, sess)
		return Reply{Text: `⚙️ Введите характеристики товара в формате:
Характеристика1: Значение1
Характеристика2: Значение2

Например:
Мощность охлаждения: 3.5 кВт
Площадь помещения: 35 м²`}

	case stepProductSpecs:
		specs, skipped := parseSpecs(text)
		if skipped > 0 {
			e.log.Debugw("specification lines skipped", "user_id", userID, "skipped", skipped)
		}
		sess.product.Specifications = specs
		sess.step = stepProductImage
		e.sessions.put(userID, sess)
		return Reply{Text: "📷 Отправьте изображение товара:"}

	case stepProjectTitle:
		sess.project.Title = text
		sess.step = stepProjectDesc
		e.sessions.put(userID, sess)
		return Reply{Text: "📝 Введите описание проекта:"}

	case stepProjectDesc:
		sess.project.Description = text
		sess.step = stepProjectAddress
		e.sessions.put(userID, sess)
		return Reply{Text: "📍 Введите адрес проекта:"}

	case stepProjectAddress:
		sess.project.Address = text
		sess.step = stepProjectImages
		e.sessions.put(userID, sess)
		return Reply{Text: "📷 Отправьте изображения проекта (можно несколько):"}

	case stepEditProductField:
		return e.applyProductFieldEdit(ctx, userID, sess, text)

	case stepEditProjectField:
		return e.applyProjectFieldEdit(ctx, userID, sess, text)

	case stepProductImage:
		return Reply{Text: "📷 Отправьте изображение товара:"}

	case stepProjectImages, stepEditProjectImages, stepEditProductImage:
		return Reply{Text: "📷 Отправьте изображение:"}
	}

	return Reply{Text: "Используйте /start для открытия админ панели", Menu: MenuBack}
}

// HandlePhoto advances the active flow with one received image, already encoded
// as an opaque reference (a data URI).
func (e *Engine) HandlePhoto(ctx context.Context, userID int64, imageRef string) Reply {
	sess, ok := e.sessions.get(userID)
	if !ok {
		return Reply{Text: "Используйте /start для открытия админ панели", Menu: MenuBack}
	}

	switch sess.step {
	case stepProductImage:
		sess.product.ImageURL = imageRef

		product, err := e.catalog.CreateProduct(ctx, sess.product)
		if err != nil {
			e.log.Errorw("creating product failed", "user_id", userID, "err", err)
			return Reply{Text: "❌ Ошибка при сохранении товара", Menu: MenuBack}
		}

		e.sessions.clear(userID)
		return Reply{
			Text: fmt.Sprintf("✅ Товар '%s' успешно добавлен!", product.Name),
			Menu: MenuMain,
		}

	case stepProjectImages:
		sess.project.Images = append(sess.project.Images, imageRef)
		e.sessions.put(userID, sess)
		return Reply{
			Text: fmt.Sprintf("📷 Изображение добавлено! Всего: %d\n\nХотите добавить еще изображения?", len(sess.project.Images)),
			Menu: MenuProjectImages,
		}

	case stepEditProductImage:
		if err := e.catalog.UpdateProductField(ctx, sess.editID, "image_url", imageRef); err != nil {
			e.log.Errorw("updating product image failed", "user_id", userID, "product_id", sess.editID, "err", err)
			return Reply{Text: "❌ Ошибка при обновлении изображения", Menu: MenuBack}
		}

		e.sessions.clear(userID)
		return Reply{Text: "✅ Изображение товара обновлено!", Menu: MenuMain}

	case stepEditProjectImages:
		sess.images = append(sess.images, imageRef)
		e.sessions.put(userID, sess)
		return Reply{
			Text: fmt.Sprintf("📷 Изображение добавлено! Всего: %d\n\nХотите добавить еще изображения?", len(sess.images)),
			Menu: MenuProjectImagesEdit,
		}
	}

	return Reply{Text: "Используйте /start для открытия админ панели", Menu: MenuBack}
}
