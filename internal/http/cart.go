package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Get cart
// @Tags cart
// @Produce json
// @Success 200 {object} service.CartView
// @Router /cart [get]
func (s *Server) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, s.cart.Get(s.cartOwner(c)))
}

type addCartItemReq struct {
	Product  productReq `json:"product"`
	Quantity int        `json:"quantity"`
	Size     string     `json:"size"`
	Color    string     `json:"color"`
}

// @Summary Add cart item
// @Tags cart
// @Accept json
// @Produce json
// @Param input body addCartItemReq true "Line item"
// @Success 200 {object} service.CartView
// @Failure 400 {object} map[string]string
// @Router /cart/items [post]
func (s *Server) addCartItem(c *gin.Context) {
	var req addCartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	// The snapshot is taken from the live catalog when the product is known;
	// the submitted snapshot is trusted otherwise.
	product := req.Product.toDomain()
	if p, err := s.catalog.Get(product.ID); err == nil {
		product = *p
	}
	view, err := s.cart.Add(s.cartOwner(c), product, req.Quantity, req.Size, req.Color)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

type updateCartItemReq struct {
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

// @Summary Update cart item quantity
// @Tags cart
// @Accept json
// @Produce json
// @Param input body updateCartItemReq true "Line key and quantity"
// @Success 200 {object} service.CartView
// @Failure 400 {object} map[string]string
// @Router /cart/items [patch]
func (s *Server) updateCartItem(c *gin.Context) {
	var req updateCartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}
	view, err := s.cart.UpdateQuantity(s.cartOwner(c), req.ProductID, req.Size, req.Color, req.Quantity)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Remove every variant of a product from the cart
// @Tags cart
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} service.CartView
// @Router /cart/items/{productId} [delete]
func (s *Server) removeCartItem(c *gin.Context) {
	c.JSON(http.StatusOK, s.cart.RemoveProduct(s.cartOwner(c), c.Param("productId")))
}

// @Summary Clear cart
// @Tags cart
// @Produce json
// @Success 200 {object} service.CartView
// @Router /cart [delete]
func (s *Server) clearCart(c *gin.Context) {
	c.JSON(http.StatusOK, s.cart.Clear(s.cartOwner(c)))
}
