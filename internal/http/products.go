package httpapi

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amirko228/couple-shop/internal/domain"
	"github.com/amirko228/couple-shop/internal/service"
)

// @Summary List products
// @Tags products
// @Produce json
// @Param category query string false "Category (tshirt, hoodie or all)"
// @Param q query string false "Name or description contains"
// @Param min_price query int false "Min price (inclusive)"
// @Param max_price query int false "Max price (inclusive)"
// @Success 200 {array} domain.Product
// @Router /products [get]
func (s *Server) listProducts(c *gin.Context) {
	var f service.Filter
	f.Category = c.Query("category")
	f.Text = c.Query("q")
	if v := c.Query("min_price"); v != "" {
		if x, err := strconv.Atoi(v); err == nil {
			f.PriceMin = &x
		}
	}
	if v := c.Query("max_price"); v != "" {
		if x, err := strconv.Atoi(v); err == nil {
			f.PriceMax = &x
		}
	}
	c.JSON(http.StatusOK, s.catalog.List(f))
}

// @Summary Featured products
// @Tags products
// @Produce json
// @Param limit query int false "Display limit (default 4)"
// @Success 200 {array} domain.Product
// @Router /products/featured [get]
func (s *Server) featuredProducts(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		if x, err := strconv.Atoi(v); err == nil {
			limit = x
		}
	}
	c.JSON(http.StatusOK, s.catalog.Featured(limit))
}

// @Summary Get product by id
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 404 {object} map[string]string
// @Router /products/{id} [get]
func (s *Server) getProduct(c *gin.Context) {
	p, err := s.catalog.Get(c.Param("id"))
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

type productReq struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Category    string   `json:"category"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	Images      []string `json:"images"`
	InStock     bool     `json:"inStock"`
	Featured    bool     `json:"featured"`
}

func (r productReq) toDomain() domain.Product {
	return domain.Product{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    domain.ProductCategory(r.Category),
		Sizes:       r.Sizes,
		Colors:      r.Colors,
		Images:      r.Images,
		InStock:     r.InStock,
		Featured:    r.Featured,
	}
}

// @Summary Create product
// @Tags admin
// @Accept json
// @Produce json
// @Param input body productReq true "Product"
// @Success 201 {object} domain.Product
// @Failure 400 {object} map[string]string
// @Router /admin/products [post]
func (s *Server) createProduct(c *gin.Context) {
	var req productReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	p, err := s.catalog.Create(req.toDomain())
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, p)
}

// @Summary Update product
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param input body productReq true "Product"
// @Success 200 {object} domain.Product
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/products/{id} [put]
func (s *Server) updateProduct(c *gin.Context) {
	var req productReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	p := req.toDomain()
	p.ID = c.Param("id")
	updated, err := s.catalog.Update(p)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary Delete product
// @Tags admin
// @Param id path string true "Product ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /admin/products/{id} [delete]
func (s *Server) deleteProduct(c *gin.Context) {
	if err := s.catalog.Delete(c.Param("id")); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Upload product image
// @Tags admin
// @Accept mpfd
// @Produce json
// @Param image formData file true "PNG or JPEG image"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /admin/uploads [post]
func (s *Server) uploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	path, err := s.uploads.Store(f, file.Filename)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"path": path})
}

// serveUpload resolves a synthetic upload path back to displayable bytes.
func (s *Server) serveUpload(c *gin.Context) {
	data, ok := s.uploads.Open(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.Data(http.StatusOK, "image/jpeg", data)
}

// events streams change notifications from the persistence surface so other
// mounted views can re-read state without polling.
func (s *Server) events(c *gin.Context) {
	ch := make(chan string, 16)
	cancel := s.kv.Subscribe("", func(key string, _ []byte) {
		select {
		case ch <- key:
		default: // slow consumer, drop
		}
	})
	defer cancel()

	c.Stream(func(w io.Writer) bool {
		select {
		case key := <-ch:
			c.SSEvent("change", key)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
