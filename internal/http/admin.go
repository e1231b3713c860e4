package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/amirko228/couple-shop/internal/domain"
)

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// @Summary Admin login
// @Tags admin
// @Accept json
// @Produce json
// @Param input body loginReq true "Credentials"
// @Success 200 {object} map[string]any
// @Failure 401 {object} map[string]string
// @Router /login [post]
func (s *Server) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if err := s.auth.Login(req.Username, req.Password); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	session, _ := s.sessions.Get(c.Request, sessionName)
	session.Values["authenticated"] = true
	if err := session.Save(c.Request, c.Writer); err != nil {
		s.log.Error("save session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// @Summary Admin logout
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]any
// @Router /logout [post]
func (s *Server) logout(c *gin.Context) {
	session, _ := s.sessions.Get(c.Request, sessionName)
	session.Values["authenticated"] = false
	session.Options.MaxAge = -1
	if err := session.Save(c.Request, c.Writer); err != nil {
		s.log.Warn("save session", zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type changePasswordReq struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// @Summary Change admin password
// @Tags admin
// @Accept json
// @Produce json
// @Param input body changePasswordReq true "Passwords"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/password [post]
func (s *Server) changePassword(c *gin.Context) {
	var req changePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if err := s.auth.ChangePassword(req.CurrentPassword, req.NewPassword); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// @Summary Admin data
// @Tags admin
// @Produce json
// @Param type query string false "orders or custom-print; both when omitted"
// @Success 200 {object} map[string]any
// @Router /admin/data [get]
func (s *Server) adminData(c *gin.Context) {
	switch c.Query("type") {
	case "orders":
		c.JSON(http.StatusOK, gin.H{"data": s.orders.ListOrders()})
	case "custom-print":
		c.JSON(http.StatusOK, gin.H{"data": s.orders.ListCustomPrints()})
	default:
		c.JSON(http.StatusOK, gin.H{"data": gin.H{
			"orders":              s.orders.ListOrders(),
			"customPrintRequests": s.orders.ListCustomPrints(),
		}})
	}
}

type adminActionReq struct {
	Action string `json:"action"`
	ID     string `json:"id"`
	Data   struct {
		Status         string `json:"status"`
		NotifyCustomer bool   `json:"notifyCustomer"`
		Comment        string `json:"comment"`
	} `json:"data"`
}

// @Summary Admin action
// @Tags admin
// @Accept json
// @Produce json
// @Param input body adminActionReq true "Action"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/actions [post]
func (s *Server) adminAction(c *gin.Context) {
	var req adminActionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	switch req.Action {
	case "update-order-status":
		o, err := s.orders.UpdateOrderStatus(c.Request.Context(), req.ID,
			domain.OrderStatus(req.Data.Status), req.Data.NotifyCustomer, req.Data.Comment)
		if err != nil {
			c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "order": o})

	case "update-custom-print-status":
		r, err := s.orders.UpdateCustomPrintStatus(req.ID, domain.CustomPrintStatus(req.Data.Status))
		if err != nil {
			c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "request": r})

	case "delete-order":
		if err := s.orders.DeleteOrder(req.ID); err != nil {
			c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})

	case "delete-custom-print":
		if err := s.orders.DeleteCustomPrint(req.ID); err != nil {
			c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown action"})
	}
}
