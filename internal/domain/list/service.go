package list

import (
	"context"
	"net/url"
	"strings"
	"time"

	"Feira/internal/domain/ingestion"
	"Feira/internal/domain/shared"
	appErrors "Feira/internal/errors"
	"Feira/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	shared.BaseService
	Repository Repository
	Ingestion  *ingestion.Service
	Notifier   *Notifier
}

func (s *Service) CreateList(ctx context.Context, userID ulid.ULID, name string) (*List, error) {
	if strings.TrimSpace(name) == "" {
		return nil, appErrors.NewValidationError("name", "é obrigatório")
	}

	if err := s.EnsureUserExists(ctx, userID); err != nil {
		return nil, err
	}

	now := time.Now()
	entity := &List{
		Id:        pkg.GenerateULIDObject(),
		UserId:    userID,
		Name:      shared.NormalizeName(name),
		Items:     []Item{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

func (s *Service) GetListByID(ctx context.Context, listID, userID ulid.ULID) (*List, error) {
	return s.Repository.GetByIdAndUser(ctx, listID, userID)
}

func (s *Service) GetListsByUserID(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*List, int64, error) {
	return s.Repository.GetByUserId(ctx, userID, pagination)
}

func (s *Service) DeleteList(ctx context.Context, listID, userID ulid.ULID) error {
	return s.Repository.Delete(ctx, listID, userID)
}

// DeleteAllForUser remove todas as listas do usuário, usado na exclusão de conta.
func (s *Service) DeleteAllForUser(ctx context.Context, userID ulid.ULID) error {
	return s.Repository.DeleteByUserId(ctx, userID)
}

// AddItems tokeniza e categoriza o texto livre, prefixa os itens novos na
// coleção e persiste por substituição integral. Entrada sem candidatos
// válidos não gera escrita e devolve contagem zero.
func (s *Service) AddItems(ctx context.Context, listID, userID ulid.ULID, input string) (*List, int, error) {
	entity, err := s.GetListByID(ctx, listID, userID)
	if err != nil {
		return nil, 0, err
	}

	parsed := s.Ingestion.ParseItems(input)
	if len(parsed) == 0 {
		return entity, 0, nil
	}

	newItems := make([]Item, 0, len(parsed))
	for _, p := range parsed {
		newItems = append(newItems, Item{
			Id:       pkg.GenerateULIDObject(),
			Name:     shared.CapitalizeFirst(p.Name),
			Category: p.Category,
			Checked:  false,
		})
	}

	next := Prepend(entity.Items, newItems)
	if err := s.replaceItems(ctx, entity, next); err != nil {
		return nil, 0, err
	}
	return entity, len(newItems), nil
}

func (s *Service) ToggleItem(ctx context.Context, listID, userID, itemID ulid.ULID) (*List, error) {
	entity, err := s.GetListByID(ctx, listID, userID)
	if err != nil {
		return nil, err
	}

	next, changed := Toggle(entity.Items, itemID)
	if !changed {
		return entity, nil
	}

	if err := s.replaceItems(ctx, entity, next); err != nil {
		return nil, err
	}
	return entity, nil
}

// UpdateItem renomeia e/ou define o preço de um item. Renomear para vazio
// ou para o mesmo nome é um no-op silencioso; o preço nunca dispara nova
// categorização.
func (s *Service) UpdateItem(ctx context.Context, listID, userID, itemID ulid.ULID, name *string, price *float64, clearPrice bool) (*List, error) {
	if price != nil && *price < 0 {
		return nil, appErrors.NewValidationError("price", "não pode ser negativo")
	}

	entity, err := s.GetListByID(ctx, listID, userID)
	if err != nil {
		return nil, err
	}

	next := entity.Items
	changed := false

	if name != nil {
		if renamed, ok := Rename(next, itemID, *name); ok {
			next = renamed
			changed = true
		}
	}

	if clearPrice {
		if updated, ok := SetPrice(next, itemID, nil); ok {
			next = updated
			changed = true
		}
	} else if price != nil {
		if updated, ok := SetPrice(next, itemID, price); ok {
			next = updated
			changed = true
		}
	}

	if !changed {
		return entity, nil
	}

	if err := s.replaceItems(ctx, entity, next); err != nil {
		return nil, err
	}
	return entity, nil
}

func (s *Service) DeleteItem(ctx context.Context, listID, userID, itemID ulid.ULID) (*List, error) {
	entity, err := s.GetListByID(ctx, listID, userID)
	if err != nil {
		return nil, err
	}

	next, changed := Remove(entity.Items, itemID)
	if !changed {
		return nil, appErrors.ErrItemNotFound
	}

	if err := s.replaceItems(ctx, entity, next); err != nil {
		return nil, err
	}
	return entity, nil
}

// ClearChecked remove todos os itens marcados. Sem itens marcados devolve
// ErrNothingToClear antes de qualquer escrita.
func (s *Service) ClearChecked(ctx context.Context, listID, userID ulid.ULID) (*List, int, error) {
	entity, err := s.GetListByID(ctx, listID, userID)
	if err != nil {
		return nil, 0, err
	}

	next, removed := RemoveChecked(entity.Items)
	if removed == 0 {
		return nil, 0, appErrors.ErrNothingToClear
	}

	if err := s.replaceItems(ctx, entity, next); err != nil {
		return nil, 0, err
	}
	return entity, removed, nil
}

// RecipeQuery monta a busca de receitas com os nomes dos itens pendentes.
type RecipeQuery struct {
	Query     string `json:"query"`
	SearchURL string `json:"searchUrl"`
}

func (s *Service) BuildRecipeQuery(ctx context.Context, listID, userID ulid.ULID) (*RecipeQuery, error) {
	entity, err := s.GetListByID(ctx, listID, userID)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entity.Items))
	for _, item := range entity.Items {
		if !item.Checked {
			names = append(names, item.Name)
		}
	}
	if len(names) == 0 {
		return nil, appErrors.ErrNothingToSearch
	}

	query := "receita com " + strings.Join(names, " ")
	return &RecipeQuery{
		Query:     query,
		SearchURL: "https://www.google.com/search?q=" + url.QueryEscape(query),
	}, nil
}

func (s *Service) GetSummary(ctx context.Context, listID, userID ulid.ULID) (*List, Summary, error) {
	entity, err := s.GetListByID(ctx, listID, userID)
	if err != nil {
		return nil, Summary{}, err
	}
	return entity, BuildSummary(entity.Items), nil
}

func (s *Service) Subscribe(listID ulid.ULID) (<-chan []Item, func()) {
	return s.Notifier.Subscribe(listID)
}

func (s *Service) replaceItems(ctx context.Context, entity *List, next []Item) error {
	if err := s.Repository.ReplaceItems(ctx, entity.Id, entity.UserId, next); err != nil {
		return err
	}
	entity.Items = next
	entity.UpdatedAt = time.Now()
	if s.Notifier != nil {
		s.Notifier.Publish(entity.Id, next)
	}
	return nil
}
