package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/nikolayk812/klimatshop/internal/domain"
)

func (s *Server) getCart(c *gin.Context) {
	cart, err := s.cart.GetCart(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lo.Map(cart.Items, func(item domain.CartItem, _ int) cartItemJSON { return mapCartItemToJSON(item) }))
}

func (s *Server) addToCart(c *gin.Context) {
	var req cartAddJSON
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, fmt.Errorf("invalid body: %w", domain.ErrValidation))
		return
	}

	// Quantity defaults to one when omitted.
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	item, err := s.cart.AddItem(c.Request.Context(), req.UserID, req.ProductID, req.Quantity)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapCartItemToJSON(item))
}

func (s *Server) removeFromCart(c *gin.Context) {
	if err := s.cart.RemoveItem(c.Request.Context(), c.Query("user_id"), c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Товар удален из корзины"})
}

func (s *Server) clearCart(c *gin.Context) {
	removed, err := s.cart.ClearCart(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Корзина очищена", "removed": removed})
}
