package attendance

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

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Message)
}

var attendanceFields = listview.Fields[AttendanceResponse]{
	Searchable: []func(AttendanceResponse) string{
		func(a AttendanceResponse) string { return a.EmployeeName },
	},
	Categorical: map[string]func(AttendanceResponse) string{
		"status": func(a AttendanceResponse) string { return a.Status },
	},
}

func (h *Handler) ClockIn(c *gin.Context) {
	var req ClockInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Message)
		return
	}

	resp, err := h.service.ClockIn(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) ClockOut(c *gin.Context) {
	var req ClockOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Message)
		return
	}

	resp, err := h.service.ClockOut(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) GetAll(c *gin.Context) {
	role := strings.ToUpper(strings.TrimSpace(c.GetString("role")))

	rows, err := h.service.GetAll(c.Request.Context(), c.GetInt64("user_id"), isPrivilegedRole(role))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	crit := listview.Criteria{
		Query: strings.TrimSpace(c.Query("search")),
		Selectors: map[string]string{
			"status": c.DefaultQuery("status", listview.All),
		},
	}

	pageResp := listview.AssembleClient(rows, crit, attendanceFields, listview.Window{Page: page, Size: limit})
	response.Paged(c, http.StatusOK, pageResp.Rows, pageResp.Total)
}

func isPrivilegedRole(role string) bool {
	switch role {
	case "SUPER_ADMIN", "ADMIN", "HR", "MANAGER":
		return true
	default:
		return false
	}
}
