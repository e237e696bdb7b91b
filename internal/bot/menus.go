package bot

// Menu names a predefined inline keyboard attached to a reply.
type Menu int

const (
	MenuNone Menu = iota
	MenuMain
	MenuProducts
	MenuProjects
	MenuBackups
	MenuBack
	MenuProjectImages
	MenuProjectImagesEdit
)

// Option is one custom inline button: Label is shown, Data comes back through
// HandleSelect when pressed.
type Option struct {
	Label string
	Data  string
}

// Reply is what the engine wants said back to the admin. When Options is set it
// wins over Menu.
type Reply struct {
	Text    string
	Menu    Menu
	Options []Option
}

// Callback data values, shared between the keyboards and HandleSelect.
const (
	selMainMenu       = "main_menu"
	selManageProducts = "manage_products"
	selManageProjects = "manage_projects"
	selManageBackups  = "manage_backups"
	selStatistics     = "statistics"

	selAddProduct    = "add_product"
	selEditProduct   = "edit_product"
	selDeleteProduct = "delete_product"
	selListProducts  = "list_products"

	selAddProject    = "add_project"
	selEditProject   = "edit_project"
	selDeleteProject = "delete_project"
	selListProjects  = "list_projects"

	selBackupCreate  = "backup_create"
	selBackupRestore = "backup_restore"
	selBackupStatus  = "backup_status"

	selFinishProject        = "finish_project"
	selContinueImages       = "continue_images"
	selFinishProjectImages  = "finish_project_images"
	selContinueProjectImage = "continue_project_images"
)

func mainMenu() []Option {
	return []Option{
		{Label: "📦 Управление товарами", Data: selManageProducts},
		{Label: "🏗️ Управление проектами", Data: selManageProjects},
		{Label: "💾 Резервные копии", Data: selManageBackups},
		{Label: "📊 Статистика", Data: selStatistics},
	}
}

func productsMenu() []Option {
	return []Option{
		{Label: "➕ Добавить товар", Data: selAddProduct},
		{Label: "📝 Редактировать товар", Data: selEditProduct},
		{Label: "🗑️ Удалить товар", Data: selDeleteProduct},
		{Label: "📋 Список товаров", Data: selListProducts},
		{Label: "🔙 Назад", Data: selMainMenu},
	}
}

func projectsMenu() []Option {
	return []Option{
		{Label: "➕ Добавить проект", Data: selAddProject},
		{Label: "📝 Редактировать проект", Data: selEditProject},
		{Label: "🗑️ Удалить проект", Data: selDeleteProject},
		{Label: "📋 Список проектов", Data: selListProjects},
		{Label: "🔙 Назад", Data: selMainMenu},
	}
}

func backupsMenu() []Option {
	return []Option{
		{Label: "💾 Создать резервную копию", Data: selBackupCreate},
		{Label: "♻️ Восстановить данные", Data: selBackupRestore},
		{Label: "📊 Состояние базы данных", Data: selBackupStatus},
		{Label: "🔙 Назад", Data: selMainMenu},
	}
}

func backMenu() []Option {
	return []Option{
		{Label: "🔙 Назад", Data: selMainMenu},
	}
}

func projectImagesMenu() []Option {
	return []Option{
		{Label: "✅ Завершить", Data: selFinishProject},
		{Label: "➕ Добавить еще фото", Data: selContinueImages},
	}
}

func projectImagesEditMenu() []Option {
	return []Option{
		{Label: "✅ Завершить", Data: selFinishProjectImages},
		{Label: "➕ Добавить еще фото", Data: selContinueProjectImage},
	}
}

// menuOptions resolves a Menu constant into its buttons.
func menuOptions(menu Menu) []Option {
	switch menu {
	case MenuMain:
		return mainMenu()
	case MenuProducts:
		return productsMenu()
	case MenuProjects:
		return projectsMenu()
	case MenuBackups:
		return backupsMenu()
	case MenuBack:
		return backMenu()
	case MenuProjectImages:
		return projectImagesMenu()
	case MenuProjectImagesEdit:
		return projectImagesEditMenu()
	default:
		return nil
	}
}
