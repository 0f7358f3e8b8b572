package routes

import (
	"errors"
	"net/http"

	"Feira/internal/contracts"
	appErrors "Feira/internal/errors"
	"Feira/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

func (h *Handler) parseItemID(c *gin.Context) (ulid.ULID, error) {
	id := c.Param("itemId")
	if id == "" {
		return ulid.ULID{}, appErrors.NewValidationError("itemId", "é obrigatório")
	}
	itemID, err := pkg.ParseULID(id)
	if err != nil {
		return ulid.ULID{}, appErrors.NewValidationError("itemId", "formato inválido")
	}
	return itemID, nil
}

// AddItems recebe texto livre e devolve quantos itens foram reconhecidos.
func (h *Handler) AddItems(c *gin.Context) {
	var body contracts.ItemsAddRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

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
	_, added, err := h.ListService.AddItems(ctx, listID, userID, body.Text)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if added == 0 {
		c.JSON(http.StatusOK, contracts.ItemsAddResponse{Message: "Nada para adicionar", Added: 0})
		return
	}

	c.JSON(http.StatusCreated, contracts.ItemsAddResponse{Message: "Itens adicionados com sucesso", Added: added})
}

func (h *Handler) ToggleItem(c *gin.Context) {
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

	itemID, err := h.parseItemID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if _, err := h.ListService.ToggleItem(ctx, listID, userID, itemID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Item atualizado com sucesso"})
}

func (h *Handler) UpdateItem(c *gin.Context) {
	var body contracts.ItemUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

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

	itemID, err := h.parseItemID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if _, err := h.ListService.UpdateItem(ctx, listID, userID, itemID, body.Name, body.Price, body.ClearPrice); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Item atualizado com sucesso"})
}

func (h *Handler) DeleteItem(c *gin.Context) {
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

	itemID, err := h.parseItemID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if _, err := h.ListService.DeleteItem(ctx, listID, userID, itemID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Item removido com sucesso"})
}

// ClearChecked remove os itens comprados. Sem itens marcados responde
// cleared=false sem tocar no banco.
func (h *Handler) ClearChecked(c *gin.Context) {
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
	_, removed, err := h.ListService.ClearChecked(ctx, listID, userID)
	if errors.Is(err, appErrors.ErrNothingToClear) {
		c.JSON(http.StatusOK, contracts.ClearCheckedResponse{
			Message: appErrors.ErrNothingToClear.Message,
			Cleared: false,
		})
		return
	}
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ClearCheckedResponse{
		Message: "Itens comprados removidos",
		Cleared: true,
		Removed: removed,
	})
}
