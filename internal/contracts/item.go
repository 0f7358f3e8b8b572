package contracts

// ItemsAddRequest aceita texto livre: o tokenizador decide o que vira item.
// Texto vazio não é erro, apenas não adiciona nada.
type ItemsAddRequest struct {
	Text string `json:"text"`
}

type ItemsAddResponse struct {
	Message string `json:"message"`
	Added   int    `json:"added"`
}

type ItemUpdateRequest struct {
	Name       *string  `json:"name" binding:"omitempty"`
	Price      *float64 `json:"price" binding:"omitempty,gte=0"`
	ClearPrice bool     `json:"clearPrice"`
}

type ClearCheckedResponse struct {
	Message string `json:"message"`
	Cleared bool   `json:"cleared"`
	Removed int    `json:"removed"`
}

type RecipeQueryResponse struct {
	Query     string `json:"query"`
	SearchURL string `json:"searchUrl"`
}
