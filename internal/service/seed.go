package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nikolayk812/klimatshop/internal/domain"
)

// Seed replaces the catalog with the demo data set, removing whatever products
// and projects are there first. Carts, orders and feedback are left alone.
func (s *Catalog) Seed(ctx context.Context) error {
	products, err := s.products.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("products.ListProducts: %w", err)
	}
	for _, product := range products {
		if _, err := s.products.DeleteProduct(ctx, product.ID); err != nil {
			return fmt.Errorf("products.DeleteProduct: %w", err)
		}
	}

	projects, err := s.projects.ListProjects(ctx)
	if err != nil {
		return fmt.Errorf("projects.ListProjects: %w", err)
	}
	for _, project := range projects {
		if _, err := s.projects.DeleteProject(ctx, project.ID); err != nil {
			return fmt.Errorf("projects.DeleteProject: %w", err)
		}
	}

	for _, product := range sampleProducts() {
		if _, err := s.CreateProduct(ctx, product); err != nil {
			return fmt.Errorf("CreateProduct: %w", err)
		}
	}

	for _, project := range sampleProjects() {
		if _, err := s.CreateProject(ctx, project); err != nil {
			return fmt.Errorf("CreateProject: %w", err)
		}
	}

	return nil
}

func sampleProducts() []domain.Product {
	return []domain.Product{
		{
			Name:             "Mitsubishi Electric MSZ-AP35VG",
			ShortDescription: "Инверторная сплит-система с Wi-Fi управлением",
			Description:      "Современная инверторная сплит-система с технологией 3D i-see Sensor для равномерного распределения воздуха. Энергоэффективный класс A+++, низкий уровень шума, режим обогрева до -25°C.",
			Price:            decimal.NewFromInt(45000),
			ImageURL:         "https://images.pexels.com/photos/3964537/pexels-photo-3964537.jpeg",
			Specifications: map[string]string{
				"Мощность охлаждения":       "3.5 кВт",
				"Площадь помещения":         "35 м²",
				"Уровень шума":              "19 дБ",
				"Класс энергоэффективности": "A+++",
			},
		},
		{
			Name:             "Daikin FTXM35R",
			ShortDescription: "Премиальная модель с системой очистки воздуха",
			Description:      "Высокотехнологичная сплит-система с системой фильтрации Flash Streamer. Интеллектуальное управление, функция самоочистки, работа при низких температурах до -25°C.",
			Price:            decimal.NewFromInt(52000),
			ImageURL:         "https://images.pexels.com/photos/3964341/pexels-photo-3964341.jpeg",
			Specifications: map[string]string{
				"Мощность охлаждения":       "3.5 кВт",
				"Площадь помещения":         "35 м²",
				"Уровень шума":              "20 дБ",
				"Класс энергоэффективности": "A+++",
			},
		},
		{
			Name:             "Haier AS18NS4ERA",
			ShortDescription: "Настенная сплит-система с самоочисткой",
			Description:      "Надежная сплит-система с функцией самоочистки и ионизации воздуха. Инверторный компрессор, защита от перепадов напряжения.",
			Price:            decimal.NewFromInt(29000),
			ImageURL:         "https://images.unsplash.com/photo-1727797208736-6efdc1088f81",
			Specifications: map[string]string{
				"Мощность охлаждения":       "5.0 кВт",
				"Площадь помещения":         "50 м²",
				"Уровень шума":              "24 дБ",
				"Класс энергоэффективности": "A++",
			},
		},
	}
}

func sampleProjects() []domain.Project {
	return []domain.Project{
		{
			Title:       "Монтаж системы кондиционирования в офисе",
			Description: "Установка мульти-зональной системы кондиционирования в современном офисном здании площадью 500 м². Включает 12 внутренних блоков и 3 наружных блока с централизованным управлением.",
			Address:     "г. Москва, ул. Тверская, д. 15",
			Images: []string{
				"https://images.pexels.com/photos/32497161/pexels-photo-32497161.jpeg",
				"https://images.pexels.com/photos/8297856/pexels-photo-8297856.jpeg",
			},
		},
		{
			Title:       "Кондиционирование жилого дома",
			Description: "Комплексная установка сплит-систем в трехэтажном частном доме. Установлено 6 внутренних блоков различной мощности с учетом планировки каждого помещения.",
			Address:     "Московская область, г. Одинцово",
			Images: []string{
				"https://images.pexels.com/photos/16592625/pexels-photo-16592625.jpeg",
				"https://images.pexels.com/photos/3964341/pexels-photo-3964341.jpeg",
			},
		},
	}
}
