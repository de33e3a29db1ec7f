package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/daniilsolovey/newsroom/internal/admin"
	"github.com/daniilsolovey/newsroom/internal/newsportal"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	uc  *newsportal.Manager
	log *slog.Logger
}

func NewAdminHandler(uc *newsportal.Manager, log *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:  uc,
		log: log,
	}
}

func (h *AdminHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// handleManagerError maps manager errors to response codes.
func (h *AdminHandler) handleManagerError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, newsportal.ErrNotFound):
		return h.handleError(c, err, http.StatusNotFound, err.Error())
	case errors.Is(err, newsportal.ErrInvalidInput):
		return h.handleError(c, err, http.StatusBadRequest, err.Error())
	}

	if hub := sentryecho.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
	}

	return h.handleError(c, err, http.StatusInternalServerError, "internal error")
}

func intParam(c echo.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v <= 0 {
		return 0, errors.New("invalid " + name)
	}
	return v, nil
}

// Models handles GET /admin/
// @Summary List admin models
// @Description Returns the registered models with their list display, filters, search fields, inlines and fieldsets
// @Tags admin
// @Produce json
// @Success 200 {array} rest.Model
// @Router /admin/ [get]
func (h *AdminHandler) Models(c echo.Context) error {
	return c.JSON(http.StatusOK, Map(h.uc.Models(), NewModel))
}

// ChangeList handles GET /admin/:model/
// @Summary Get model change list
// @Description Returns one page of rows rendered with the model list display. Every list filter is accepted as a query parameter named after the filter field.
// @Tags admin
// @Produce json
// @Param model path string true "Model name"
// @Param q query string false "Search terms"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 20)"
// @Param year query int false "Date hierarchy year"
// @Param month query int false "Date hierarchy month"
// @Param day query int false "Date hierarchy day"
// @Success 200 {object} rest.ChangeList
// @Failure 400,404,500 {object} map[string]string
// @Router /admin/{model}/ [get]
func (h *AdminHandler) ChangeList(c echo.Context) error {
	ctx := c.Request().Context()
	model := c.Param("model")

	var req ChangeListRequest
	if err := urlstruct.Unmarshal(ctx, c.QueryParams(), &req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	query := newsportal.ListQuery{
		Search:   req.Q,
		Filters:  make(map[string]string),
		Year:     req.Year,
		Month:    req.Month,
		Day:      req.Day,
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	for _, m := range h.uc.Models() {
		if m.Model != model {
			continue
		}
		for _, field := range m.ListFilter {
			if v := c.QueryParam(field); v != "" {
				query.Filters[field] = v
			}
		}
	}

	cl, err := h.uc.ChangeList(ctx, model, query)
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusOK, NewChangeList(*cl))
}

// ChangeForm handles GET /admin/:model/:id/
// @Summary Get article change form
// @Description Returns the article fieldsets with values and the tag inline
// @Tags admin
// @Produce json
// @Param model path string true "Model name, only article has a change form"
// @Param id path int true "Article ID"
// @Success 200 {object} rest.ArticleForm
// @Failure 400,404,500 {object} map[string]string
// @Router /admin/{model}/{id}/ [get]
func (h *AdminHandler) ChangeForm(c echo.Context) error {
	if c.Param("model") != admin.ModelArticle {
		return h.handleError(c, nil, http.StatusNotFound, "change form not found")
	}

	id, err := intParam(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, err.Error())
	}

	form, err := h.uc.Article(c.Request().Context(), id)
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusOK, NewArticleForm(*form))
}

// Create handles POST /admin/:model/
// @Summary Create a category, tag or article
// @Description Creates a record. An empty slug is derived from the name or title.
// @Tags admin
// @Accept json
// @Produce json
// @Param model path string true "category, tag or article"
// @Success 201 {object} object
// @Failure 400,404,500 {object} map[string]string
// @Router /admin/{model}/ [post]
func (h *AdminHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	switch c.Param("model") {
	case admin.ModelCategory:
		var req CategoryRequest
		if err := c.Bind(&req); err != nil {
			return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
		}

		row, err := h.uc.CreateCategory(ctx, newsportal.CategoryInput(req))
		if err != nil {
			return h.handleManagerError(c, err)
		}
		return c.JSON(http.StatusCreated, NewCategory(*row))
	case admin.ModelTag:
		var req TagRequest
		if err := c.Bind(&req); err != nil {
			return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
		}

		row, err := h.uc.CreateTag(ctx, newsportal.TagInput(req))
		if err != nil {
			return h.handleManagerError(c, err)
		}
		return c.JSON(http.StatusCreated, NewTag(*row))
	case admin.ModelArticle:
		var req ArticleRequest
		if err := c.Bind(&req); err != nil {
			return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
		}

		row, err := h.uc.CreateArticle(ctx, req.ToInput())
		if err != nil {
			return h.handleManagerError(c, err)
		}
		return c.JSON(http.StatusCreated, NewArticle(*row))
	}

	return h.handleError(c, nil, http.StatusNotFound, "model not found")
}

// AttachTag handles POST /admin/:model/:id/tags/:tagId
// @Summary Attach a tag to an article
// @Tags admin
// @Param model path string true "article"
// @Param id path int true "Article ID"
// @Param tagId path int true "Tag ID"
// @Success 204
// @Failure 400,404,500 {object} map[string]string
// @Router /admin/{model}/{id}/tags/{tagId} [post]
func (h *AdminHandler) AttachTag(c echo.Context) error {
	return h.articleTag(c, h.uc.AttachTag)
}

// DetachTag handles DELETE /admin/:model/:id/tags/:tagId
// @Summary Detach a tag from an article
// @Tags admin
// @Param model path string true "article"
// @Param id path int true "Article ID"
// @Param tagId path int true "Tag ID"
// @Success 204
// @Failure 400,404,500 {object} map[string]string
// @Router /admin/{model}/{id}/tags/{tagId} [delete]
func (h *AdminHandler) DetachTag(c echo.Context) error {
	return h.articleTag(c, h.uc.DetachTag)
}

func (h *AdminHandler) articleTag(c echo.Context, fn func(ctx context.Context, articleID, tagID int) error) error {
	if c.Param("model") != admin.ModelArticle {
		return h.handleError(c, nil, http.StatusNotFound, "inline not found")
	}

	articleID, err := intParam(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, err.Error())
	}

	tagID, err := intParam(c, "tagId")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, err.Error())
	}

	if err := fn(c.Request().Context(), articleID, tagID); err != nil {
		return h.handleManagerError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Health handles GET /health
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *AdminHandler) Health(c echo.Context) error {
	if err := h.uc.Ping(c.Request().Context()); err != nil {
		return h.handleError(c, err, http.StatusServiceUnavailable, "database unavailable")
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
