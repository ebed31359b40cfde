package employee

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"hr-console/internal/shared/apperror"
	"hr-console/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	service   Service
	uploadDir string
	logger    *zap.Logger
}

func NewHandler(service Service, uploadDir string, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, uploadDir: uploadDir, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Message)
}

// savePhoto stores an optional multipart photo and returns its path.
// Requests without a photo part return an empty path and no error.
func (h *Handler) savePhoto(c *gin.Context) (string, error) {
	file, err := c.FormFile("photo")
	if err != nil {
		return "", nil
	}

	name := fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(file.Filename))
	dst := filepath.Join(h.uploadDir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}
	return dst, nil
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warn("http create employee validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Message)
		return
	}

	photoPath, err := h.savePhoto(c)
	if err != nil {
		h.logger.Error("http create employee photo save failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "Could not store the uploaded photo")
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req, photoPath)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// List serves the grid: page/limit plus the filter criteria as query
// parameters, answered with one page of rows and the filtered total.
func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 {
		limit = 10
	}

	q := ListQuery{
		Search:     strings.TrimSpace(c.Query("search")),
		Department: c.Query("department"),
		Position:   c.Query("position"),
		Status:     c.Query("status"),
		Page:       page,
		Limit:      limit,
	}

	pageResp, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Paged(c, http.StatusOK, pageResp.Rows, pageResp.Total)
}

func (h *Handler) GetOptions(c *gin.Context) {
	resp, err := h.service.GetOptions(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateEmployeeRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warn("http update employee validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Message)
		return
	}

	photoPath, err := h.savePhoto(c)
	if err != nil {
		h.logger.Error("http update employee photo save failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "Could not store the uploaded photo")
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req, photoPath)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// UpdateOverride handles POST /employees/:id carrying a multipart form with
// _method=PUT. Browsers cannot send multipart bodies with PUT, so the
// console tunnels photo-bearing updates through POST.
func (h *Handler) UpdateOverride(c *gin.Context) {
	if c.PostForm("_method") != http.MethodPut {
		response.Error(c, http.StatusMethodNotAllowed, "Unsupported method override")
		return
	}
	h.Update(c)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
