package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/nikolayk812/klimatshop/internal/domain"
)

func (s *Server) createOrder(c *gin.Context) {
	var req orderCreateJSON
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, fmt.Errorf("invalid body: %w", domain.ErrValidation))
		return
	}

	items := lo.Map(req.Items, func(item cartItemJSON, _ int) domain.OrderItem { return mapJSONToOrderItem(item) })

	order, err := s.orders.PlaceOrder(c.Request.Context(), items, req.TelegramUserID, req.TelegramUserName)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Спасибо за заказ! Мы свяжемся с вами для подтверждения.",
		"order_id": order.ID,
	})
}

func (s *Server) submitFeedback(c *gin.Context) {
	var req feedbackCreateJSON
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, fmt.Errorf("invalid body: %w", domain.ErrValidation))
		return
	}

	if _, err := s.feedback.Submit(c.Request.Context(), domain.Feedback{
		Name:             req.Name,
		Phone:            req.Phone,
		Message:          req.Message,
		TelegramUserID:   req.TelegramUserID,
		TelegramUserName: req.TelegramUserName,
	}); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ваша заявка отправлена. Мы свяжемся с вами в ближайшее время."})
}
