package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirko228/couple-shop/internal/domain"
	"github.com/amirko228/couple-shop/internal/service"
)

type submitOrderReq struct {
	Items        []addCartItemReq    `json:"items"`
	TotalPrice   int                 `json:"totalPrice"`
	CustomerInfo domain.CustomerInfo `json:"customerInfo"`
}

// @Summary Submit order
// @Tags orders
// @Accept json
// @Produce json
// @Param input body submitOrderReq true "Checkout payload"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /orders [post]
func (s *Server) submitOrder(c *gin.Context) {
	var req submitOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	items := make([]domain.CartLine, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.CartLine{
			Product:  it.Product.toDomain(),
			Quantity: it.Quantity,
			Size:     it.Size,
			Color:    it.Color,
		})
	}
	o, err := s.orders.Submit(c.Request.Context(), items, req.TotalPrice, req.CustomerInfo)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "orderId": o.ID})
}

type customPrintReq struct {
	Name      string `json:"name"`
	Contact   string `json:"contact"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
	ImageData string `json:"imageData"`
}

// @Summary Submit custom print request
// @Tags orders
// @Accept json
// @Produce json
// @Param input body customPrintReq true "Request payload"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /custom-print [post]
func (s *Server) submitCustomPrint(c *gin.Context) {
	var req customPrintReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	r, err := s.orders.SubmitCustomPrint(c.Request.Context(), service.CustomPrintInput{
		Name:      req.Name,
		Contact:   req.Contact,
		Phone:     req.Phone,
		Message:   req.Message,
		ImageData: req.ImageData,
	})
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "requestId": r.ID})
}
