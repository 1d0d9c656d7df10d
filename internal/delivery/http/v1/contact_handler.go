package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact route (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", handler.SubmitContact)
}

// SubmitContact accepts a contact form submission and relays it by email.
// Responses carry either {"message": ...} with 200 or {"error": ...} with
// 400/500; the usecase owns the exact messages.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A body that does not parse is an unexpected failure, not a
		// caller-correctable validation error.
		c.Error(apperror.New(http.StatusInternalServerError, usecase.MsgUnexpected, err))
		return
	}

	if _, err := h.contactUC.SendContactMessage(c.Request.Context(), &req); err != nil {
		c.Error(err)
		return
	}

	response.Message(c, http.StatusOK, usecase.MsgSent)
}
