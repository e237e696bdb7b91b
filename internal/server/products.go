package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/nikolayk812/klimatshop/internal/domain"
)

func (s *Server) listProducts(c *gin.Context) {
	products, err := s.catalog.ListProducts(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lo.Map(products, func(p domain.Product, _ int) productJSON { return mapProductToJSON(p) }))
}

func (s *Server) getProduct(c *gin.Context) {
	product, err := s.catalog.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapProductToJSON(product))
}

func (s *Server) createProduct(c *gin.Context) {
	var req productCreateJSON
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, fmt.Errorf("invalid body: %w", domain.ErrValidation))
		return
	}

	product, err := s.catalog.CreateProduct(c.Request.Context(), domain.Product{
		Name:             req.Name,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Price:            decimal.NewFromFloat(req.Price),
		ImageURL:         req.ImageURL,
		Specifications:   req.Specifications,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapProductToJSON(product))
}

func (s *Server) deleteProduct(c *gin.Context) {
	if err := s.catalog.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Товар удален"})
}

func (s *Server) initData(c *gin.Context) {
	if err := s.catalog.Seed(c.Request.Context()); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Тестовые данные успешно загружены"})
}
