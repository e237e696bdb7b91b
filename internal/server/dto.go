package server

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nikolayk812/klimatshop/internal/domain"
)

// Wire shapes mirror the stored documents almost 1:1; prices travel as plain
// numbers.

type productJSON struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Description      string            `json:"description"`
	ShortDescription string            `json:"short_description"`
	Price            float64           `json:"price"`
	ImageURL         string            `json:"image_url"`
	Specifications   map[string]string `json:"specifications"`
	CreatedAt        time.Time         `json:"created_at"`
}

type productCreateJSON struct {
	Name             string            `json:"name"`
	Description      string            `json:"description"`
	ShortDescription string            `json:"short_description"`
	Price            float64           `json:"price"`
	ImageURL         string            `json:"image_url"`
	Specifications   map[string]string `json:"specifications"`
}

type cartItemJSON struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
}

type cartAddJSON struct {
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type orderCreateJSON struct {
	Items            []cartItemJSON `json:"items"`
	TelegramUserID   string         `json:"telegram_user_id"`
	TelegramUserName string         `json:"telegram_user_name"`
}

type feedbackCreateJSON struct {
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	Message          string `json:"message"`
	TelegramUserID   string `json:"telegram_user_id"`
	TelegramUserName string `json:"telegram_user_name"`
}

type projectJSON struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"created_at"`
}

type projectCreateJSON struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Images      []string `json:"images"`
}

func mapProductToJSON(p domain.Product) productJSON {
	return productJSON{
		ID:               p.ID,
		Name:             p.Name,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		Price:            p.Price.InexactFloat64(),
		ImageURL:         p.ImageURL,
		Specifications:   p.Specifications,
		CreatedAt:        p.CreatedAt,
	}
}

func mapCartItemToJSON(item domain.CartItem) cartItemJSON {
	return cartItemJSON{
		ID:          item.ID,
		UserID:      item.OwnerID,
		ProductID:   item.ProductID,
		ProductName: item.ProductName,
		Price:       item.Price.InexactFloat64(),
		Quantity:    item.Quantity,
		CreatedAt:   item.CreatedAt,
	}
}

func mapJSONToOrderItem(item cartItemJSON) domain.OrderItem {
	return domain.OrderItem{
		ID:          item.ID,
		ProductID:   item.ProductID,
		ProductName: item.ProductName,
		Price:       decimal.NewFromFloat(item.Price),
		Quantity:    item.Quantity,
		CreatedAt:   item.CreatedAt,
	}
}

func mapProjectToJSON(p domain.Project) projectJSON {
	return projectJSON{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Address:     p.Address,
		Images:      p.Images,
		CreatedAt:   p.CreatedAt,
	}
}
