package routes

import (
	"errors"
	"net/http"

	"Feira/internal/contracts"
	appErrors "Feira/internal/errors"
	"Feira/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateList(c *gin.Context) {
	var body contracts.ListCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	entity, err := h.ListService.CreateList(ctx, userID, body.Name)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.ToListResponse(entity))
}

func (h *Handler) GetLists(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	lists, total, err := h.ListService.GetListsByUserID(ctx, userID, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	data := make([]contracts.ListResponse, 0, len(lists))
	for _, l := range lists {
		data = append(data, contracts.ToListResponse(l))
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(data, pagination.Page, pagination.Limit, total))
}

func (h *Handler) GetList(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	listID, err := h.parseListID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	entity, summary, err := h.ListService.GetSummary(ctx, listID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ToListDetailResponse(entity, summary))
}

func (h *Handler) DeleteList(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	listID, err := h.parseListID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.ListService.DeleteList(ctx, listID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Lista excluída com sucesso"})
}

func (h *Handler) GetRecipeQuery(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	listID, err := h.parseListID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	query, err := h.ListService.BuildRecipeQuery(ctx, listID, userID)
	if errors.Is(err, appErrors.ErrNothingToSearch) {
		c.JSON(http.StatusOK, contracts.MessageResponse{Message: appErrors.ErrNothingToSearch.Message})
		return
	}
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.RecipeQueryResponse{
		Query:     query.Query,
		SearchURL: query.SearchURL,
	})
}
