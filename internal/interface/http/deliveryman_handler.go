package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/felipecouto0101/FastFeet-Deliveryman/internal/application"
	"github.com/felipecouto0101/FastFeet-Deliveryman/internal/domain/derrors"
	"github.com/felipecouto0101/FastFeet-Deliveryman/internal/domain/entity"
	repo "github.com/felipecouto0101/FastFeet-Deliveryman/internal/domain/repository"
	"github.com/felipecouto0101/FastFeet-Deliveryman/pkg/response"
	"github.com/felipecouto0101/FastFeet-Deliveryman/pkg/validation"
)

type DeliveryManHandler struct {
	Svc    *application.Service
	Logger *logrus.Logger
}

func NewDeliveryManHandler(svc *application.Service, logger *logrus.Logger) *DeliveryManHandler {
	return &DeliveryManHandler{Svc: svc, Logger: logger}
}

type createDeliveryManRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Cpf      string `json:"cpf" binding:"required,cpf"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,pwd"`
}

type updateDeliveryManRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Cpf      *string `json:"cpf" binding:"omitempty,cpf"`
	Phone    *string `json:"phone"`
	Password *string `json:"password" binding:"omitempty,pwd"`
	IsActive *bool   `json:"isActive"`
}

// Create handles POST /deliverymen. The boundary assigns the id; the core
// never generates identifiers.
func (h *DeliveryManHandler) Create(c *gin.Context) {
	var req createDeliveryManRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	d, err := h.Svc.Create(c.Request.Context(), application.CreateInput{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Email:    req.Email,
		Cpf:      req.Cpf,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, d.Snapshot(), "delivery person created", nil)
}

// Find handles GET /deliverymen/:id.
func (h *DeliveryManHandler) Find(c *gin.Context) {
	d, err := h.Svc.Find(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, d.Snapshot(), "delivery person found", nil)
}

// List handles GET /deliverymen?limit=&cursor=.
func (h *DeliveryManHandler) List(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 100 {
			response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"limit": "must be between 1 and 100"})
			return
		}
		limit = n
	}

	page, err := h.Svc.List(c.Request.Context(), repo.ListParams{Limit: limit, Cursor: c.Query("cursor")})
	if err != nil {
		h.fail(c, err)
		return
	}

	items := make([]entity.Snapshot, 0, len(page.Items))
	for _, d := range page.Items {
		items = append(items, d.Snapshot())
	}
	response.Success(c, http.StatusOK, items, "delivery people listed", gin.H{
		"nextCursor": page.NextCursor,
		"hasNext":    page.HasNext,
	})
}

// Update handles PATCH /deliverymen/:id with a partial body.
func (h *DeliveryManHandler) Update(c *gin.Context) {
	var req updateDeliveryManRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	d, err := h.Svc.Update(c.Request.Context(), application.UpdateInput{
		ID:       c.Param("id"),
		Name:     req.Name,
		Email:    req.Email,
		Cpf:      req.Cpf,
		Phone:    req.Phone,
		Password: req.Password,
		IsActive: req.IsActive,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, d.Snapshot(), "delivery person updated", nil)
}

// Delete handles DELETE /deliverymen/:id.
func (h *DeliveryManHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "delivery person deleted", nil)
}

// fail translates the error taxonomy to transport status codes. Internal
// details never leak: infrastructure kinds get a generic message.
func (h *DeliveryManHandler) fail(c *gin.Context, err error) {
	status, msg := statusForError(err)
	if status >= http.StatusInternalServerError && h.Logger != nil {
		h.Logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
	}
	response.Error[any](c, status, msg, nil)
}

func statusForError(err error) (int, string) {
	kind, ok := derrors.KindOf(err)
	if !ok {
		return http.StatusInternalServerError, "an unexpected error occurred"
	}
	switch kind {
	case derrors.KindNotFound:
		return http.StatusNotFound, err.Error()
	case derrors.KindInvalidEmail, derrors.KindInvalidCpf, derrors.KindInvalidPassword:
		return http.StatusBadRequest, err.Error()
	case derrors.KindApplication:
		return http.StatusBadRequest, err.Error()
	case derrors.KindDatabaseConnection, derrors.KindDatabaseQuery:
		return http.StatusInternalServerError, "a database error occurred"
	case derrors.KindPublish:
		return http.StatusBadGateway, "an infrastructure error occurred"
	default:
		return http.StatusInternalServerError, "an unexpected error occurred"
	}
}
