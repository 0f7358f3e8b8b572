package routes

import (
	"io"

	"Feira/internal/logger"

	"github.com/gin-gonic/gin"
)

// StreamListEvents mantém uma conexão SSE entregando a coleção completa de
// itens após cada escrita na lista.
func (h *Handler) StreamListEvents(c *gin.Context) {
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

	// confirma que a lista existe e pertence ao usuário antes de abrir o stream
	entity, err := h.ListService.GetListByID(ctx, listID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	snapshots, cancel := h.ListService.Subscribe(listID)
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	logger.Info().
		Str("list_id", listID.String()).
		Msg("Assinante conectado ao stream de eventos")

	// snapshot inicial, depois um evento por escrita
	first := entity.Items
	c.Stream(func(w io.Writer) bool {
		if first != nil {
			c.SSEvent("items", first)
			first = nil
			return true
		}
		select {
		case snapshot, ok := <-snapshots:
			if !ok {
				return false
			}
			c.SSEvent("items", snapshot)
			return true
		case <-ctx.Done():
			return false
		}
	})
}
