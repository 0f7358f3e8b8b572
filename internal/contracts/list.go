package contracts

import (
	"time"

	"Feira/internal/domain/list"
)

type ListCreateRequest struct {
	Name string `json:"name" binding:"required"`
}

// ListResponse resume uma lista para a listagem, com o andamento das compras.
type ListResponse struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Done      int       `json:"done"`
	Total     int       `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ToListResponse(l *list.List) ListResponse {
	progress := l.Progress()
	return ListResponse{
		Id:        l.Id.String(),
		Name:      l.Name,
		Done:      progress.Done,
		Total:     progress.Total,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

// ListDetailResponse carrega a lista com a projeção derivada.
type ListDetailResponse struct {
	Id        string       `json:"id"`
	Name      string       `json:"name"`
	Items     []list.Item  `json:"items"`
	Summary   list.Summary `json:"summary"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

func ToListDetailResponse(l *list.List, summary list.Summary) ListDetailResponse {
	return ListDetailResponse{
		Id:        l.Id.String(),
		Name:      l.Name,
		Items:     l.Items,
		Summary:   summary,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
