package contract

import (
	"net/http"
	"strconv"
	"strings"

	"hr-console/internal/shared/apperror"
	"hr-console/internal/shared/listview"
	"hr-console/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	crit := listview.Criteria{
		Query: strings.TrimSpace(c.Query("search")),
		Selectors: map[string]string{
			"department":     c.DefaultQuery("department", listview.All),
			"probation_type": c.DefaultQuery("probation_type", listview.All),
		},
	}

	pageResp, err := h.service.List(c.Request.Context(), crit, listview.Window{Page: page, Size: limit})
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message)
		return
	}

	response.Paged(c, http.StatusOK, pageResp.Rows, pageResp.Total)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Contract id must be numeric")
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message)
		return
	}

	response.Success(c, http.StatusOK, resp)
}
