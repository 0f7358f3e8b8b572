package list_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"Feira/internal/domain/ingestion"
	"Feira/internal/domain/list"
	"Feira/internal/domain/shared"
	appErrors "Feira/internal/errors"
	"Feira/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type fakeListRepository struct {
	createFn         func(ctx context.Context, l *list.List) error
	deleteFn         func(ctx context.Context, id, userID ulid.ULID) error
	getByIdAndUserFn func(ctx context.Context, id, userID ulid.ULID) (*list.List, error)
	getByUserFn      func(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*list.List, int64, error)
	replaceItemsFn   func(ctx context.Context, id, userID ulid.ULID, items []list.Item) error
	deleteByUserFn   func(ctx context.Context, userID ulid.ULID) error
}

func (f *fakeListRepository) Create(ctx context.Context, l *list.List) error {
	if f.createFn != nil {
		return f.createFn(ctx, l)
	}
	return nil
}

func (f *fakeListRepository) Delete(ctx context.Context, id, userID ulid.ULID) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id, userID)
	}
	return nil
}

func (f *fakeListRepository) GetByIdAndUser(ctx context.Context, id, userID ulid.ULID) (*list.List, error) {
	if f.getByIdAndUserFn != nil {
		return f.getByIdAndUserFn(ctx, id, userID)
	}
	return nil, appErrors.ErrListNotFound
}

func (f *fakeListRepository) GetByUserId(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*list.List, int64, error) {
	if f.getByUserFn != nil {
		return f.getByUserFn(ctx, userID, pagination)
	}
	return nil, 0, nil
}

func (f *fakeListRepository) ReplaceItems(ctx context.Context, id, userID ulid.ULID, items []list.Item) error {
	if f.replaceItemsFn != nil {
		return f.replaceItemsFn(ctx, id, userID, items)
	}
	return nil
}

func (f *fakeListRepository) DeleteByUserId(ctx context.Context, userID ulid.ULID) error {
	if f.deleteByUserFn != nil {
		return f.deleteByUserFn(ctx, userID)
	}
	return nil
}

type fakeUserGetter struct {
	existsFn func(ctx context.Context, userID ulid.ULID) error
}

func (f *fakeUserGetter) Exists(ctx context.Context, userID ulid.ULID) error {
	if f.existsFn != nil {
		return f.existsFn(ctx, userID)
	}
	return nil
}

func (f *fakeUserGetter) GetByID(ctx context.Context, userID ulid.ULID) (interface{}, error) {
	return nil, nil
}

func newService(repo *fakeListRepository) *list.Service {
	return &list.Service{
		BaseService: shared.BaseService{
			UserChecker: shared.NewUserCheckerService(&fakeUserGetter{}),
		},
		Repository: repo,
		Ingestion:  ingestion.NewService(ingestion.NewDefaultCategorizer()),
		Notifier:   list.NewNotifier(),
	}
}

// repositório em memória para testes que precisam reler o estado gravado
func statefulRepo(l *list.List) *fakeListRepository {
	return &fakeListRepository{
		getByIdAndUserFn: func(ctx context.Context, id, userID ulid.ULID) (*list.List, error) {
			if id != l.Id || userID != l.UserId {
				return nil, appErrors.ErrListNotFound
			}
			clone := *l
			return &clone, nil
		},
		replaceItemsFn: func(ctx context.Context, id, userID ulid.ULID, items []list.Item) error {
			l.Items = items
			return nil
		},
	}
}

func TestCreateListValidations(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := ulid.Make()

	t.Run("empty name", func(t *testing.T) {
		svc := newService(&fakeListRepository{})
		_, err := svc.CreateList(ctx, userID, "   ")
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != "VALIDATION_ERROR" {
			t.Fatalf("expected VALIDATION_ERROR, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := newService(&fakeListRepository{})
		svc.UserChecker = shared.NewUserCheckerService(&fakeUserGetter{
			existsFn: func(ctx context.Context, userID ulid.ULID) error {
				return appErrors.ErrUserNotFound
			},
		})
		_, err := svc.CreateList(ctx, userID, "Feira da semana")
		if !errors.Is(err, appErrors.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("normalizes name", func(t *testing.T) {
		var created *list.List
		svc := newService(&fakeListRepository{
			createFn: func(ctx context.Context, l *list.List) error {
				created = l
				return nil
			},
		})
		entity, err := svc.CreateList(ctx, userID, "  feira da semana ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created == nil || entity.Name != "Feira Da Semana" {
			t.Fatalf("expected normalized name, got %q", entity.Name)
		}
		if len(entity.Items) != 0 {
			t.Fatalf("new list must start empty")
		}
	})
}

func TestAddItemsPrependsParsedCandidates(t *testing.T) {
	t.Parallel()

	existing := list.Item{Id: ulid.Make(), Name: "Sal", Category: "Mercearia"}
	l := &list.List{Id: ulid.Make(), UserId: ulid.Make(), Items: []list.Item{existing}}
	svc := newService(statefulRepo(l))

	entity, added, err := svc.AddItems(context.Background(), l.Id, l.UserId, "2kg arroz, 1/2 duzia de ovos e detergente Ypê")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added != 3 {
		t.Fatalf("expected 3 added, got %d", added)
	}
	if len(entity.Items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(entity.Items))
	}

	wantNames := []string{"2kg arroz", "1/2 duzia de ovos", "Detergente Ypê", "Sal"}
	wantCategories := []string{"Mercearia", "Laticínios", "Limpeza", "Mercearia"}
	for i, item := range entity.Items {
		if item.Name != wantNames[i] {
			t.Errorf("item %d: expected name %q, got %q", i, wantNames[i], item.Name)
		}
		if item.Category != wantCategories[i] {
			t.Errorf("item %d: expected category %q, got %q", i, wantCategories[i], item.Category)
		}
	}
	for _, item := range entity.Items[:3] {
		if item.Checked || item.Price != nil {
			t.Fatalf("new items must start unchecked and without price")
		}
		if pkg.IsEmptyULID(item.Id) {
			t.Fatalf("new items must receive an id")
		}
	}
}

func TestAddItemsEmptyInputNoWrite(t *testing.T) {
	t.Parallel()

	l := &list.List{Id: ulid.Make(), UserId: ulid.Make()}
	writes := 0
	repo := statefulRepo(l)
	inner := repo.replaceItemsFn
	repo.replaceItemsFn = func(ctx context.Context, id, userID ulid.ULID, items []list.Item) error {
		writes++
		return inner(ctx, id, userID, items)
	}
	svc := newService(repo)

	for _, input := range []string{"", "   ", " , e ,", "e"} {
		_, added, err := svc.AddItems(context.Background(), l.Id, l.UserId, input)
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", input, err)
		}
		if added != 0 {
			t.Fatalf("input %q: expected 0 added, got %d", input, added)
		}
	}
	if writes != 0 {
		t.Fatalf("expected no writes, got %d", writes)
	}
}

func TestToggleItemIdempotence(t *testing.T) {
	t.Parallel()

	itemID := ulid.Make()
	l := &list.List{Id: ulid.Make(), UserId: ulid.Make(), Items: []list.Item{
		{Id: itemID, Name: "Café", Category: "Mercearia", Checked: false},
	}}
	svc := newService(statefulRepo(l))
	ctx := context.Background()

	entity, err := svc.ToggleItem(ctx, l.Id, l.UserId, itemID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !entity.Items[0].Checked {
		t.Fatalf("expected item checked after first toggle")
	}

	entity, err = svc.ToggleItem(ctx, l.Id, l.UserId, itemID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entity.Items[0].Checked {
		t.Fatalf("expected item unchecked after second toggle")
	}
}

func TestToggleItemAbsentIdNoWrite(t *testing.T) {
	t.Parallel()

	l := &list.List{Id: ulid.Make(), UserId: ulid.Make(), Items: []list.Item{
		{Id: ulid.Make(), Name: "Café", Category: "Mercearia"},
	}}
	writes := 0
	repo := statefulRepo(l)
	repo.replaceItemsFn = func(ctx context.Context, id, userID ulid.ULID, items []list.Item) error {
		writes++
		return nil
	}
	svc := newService(repo)

	if _, err := svc.ToggleItem(context.Background(), l.Id, l.UserId, ulid.Make()); err != nil {
		t.Fatalf("absent id must be a no-op, got %v", err)
	}
	if writes != 0 {
		t.Fatalf("expected no writes, got %d", writes)
	}
}

func TestDeleteItemRoundTrip(t *testing.T) {
	t.Parallel()

	before := []list.Item{{Id: ulid.Make(), Name: "Sabão", Category: "Limpeza"}}
	l := &list.List{Id: ulid.Make(), UserId: ulid.Make(), Items: before}
	svc := newService(statefulRepo(l))
	ctx := context.Background()

	entity, added, err := svc.AddItems(ctx, l.Id, l.UserId, "banana")
	if err != nil || added != 1 {
		t.Fatalf("add failed: added=%d err=%v", added, err)
	}
	newID := entity.Items[0].Id

	entity, err = svc.DeleteItem(ctx, l.Id, l.UserId, newID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entity.Items) != 1 || entity.Items[0] != before[0] {
		t.Fatalf("expected collection restored to pre-add state, got %+v", entity.Items)
	}

	if _, err := svc.DeleteItem(ctx, l.Id, l.UserId, newID); !errors.Is(err, appErrors.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestUpdateItemRenameAndPrice(t *testing.T) {
	t.Parallel()

	itemID := ulid.Make()
	newList := func() *list.List {
		return &list.List{Id: ulid.Make(), UserId: ulid.Make(), Items: []list.Item{
			{Id: itemID, Name: "Arroz", Category: "Mercearia"},
		}}
	}
	ctx := context.Background()
	strPtr := func(s string) *string { return &s }
	floatPtr := func(f float64) *float64 { return &f }

	t.Run("rename and set price", func(t *testing.T) {
		l := newList()
		svc := newService(statefulRepo(l))
		entity, err := svc.UpdateItem(ctx, l.Id, l.UserId, itemID, strPtr("  Arroz integral "), floatPtr(8.9), false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		item := entity.Items[0]
		if item.Name != "Arroz integral" {
			t.Fatalf("expected trimmed rename, got %q", item.Name)
		}
		if item.Price == nil || *item.Price != 8.9 {
			t.Fatalf("expected price 8.9, got %v", item.Price)
		}
		if item.Category != "Mercearia" {
			t.Fatalf("update must never re-categorize, got %q", item.Category)
		}
	})

	t.Run("empty and unchanged rename are silent no-ops", func(t *testing.T) {
		l := newList()
		writes := 0
		repo := statefulRepo(l)
		repo.replaceItemsFn = func(ctx context.Context, id, userID ulid.ULID, items []list.Item) error {
			writes++
			return nil
		}
		svc := newService(repo)
		for _, name := range []string{"", "   ", "Arroz"} {
			entity, err := svc.UpdateItem(ctx, l.Id, l.UserId, itemID, strPtr(name), nil, false)
			if err != nil {
				t.Fatalf("rename %q: unexpected error: %v", name, err)
			}
			if entity.Items[0].Name != "Arroz" {
				t.Fatalf("rename %q: expected name kept, got %q", name, entity.Items[0].Name)
			}
		}
		if writes != 0 {
			t.Fatalf("expected no writes, got %d", writes)
		}
	})

	t.Run("negative price rejected", func(t *testing.T) {
		l := newList()
		svc := newService(statefulRepo(l))
		_, err := svc.UpdateItem(ctx, l.Id, l.UserId, itemID, nil, floatPtr(-1), false)
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != "VALIDATION_ERROR" {
			t.Fatalf("expected VALIDATION_ERROR, got %v", err)
		}
	})

	t.Run("clear price", func(t *testing.T) {
		l := newList()
		price := 5.0
		l.Items[0].Price = &price
		svc := newService(statefulRepo(l))
		entity, err := svc.UpdateItem(ctx, l.Id, l.UserId, itemID, nil, nil, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entity.Items[0].Price != nil {
			t.Fatalf("expected price cleared, got %v", *entity.Items[0].Price)
		}
	})
}

func TestClearCheckedIdempotentSignal(t *testing.T) {
	t.Parallel()

	l := &list.List{Id: ulid.Make(), UserId: ulid.Make(), Items: []list.Item{
		{Id: ulid.Make(), Name: "Alface", Category: "Hortifruti", Checked: true},
		{Id: ulid.Make(), Name: "Pão", Category: "Padaria", Checked: false},
		{Id: ulid.Make(), Name: "Leite", Category: "Laticínios", Checked: true},
	}}
	writes := 0
	repo := statefulRepo(l)
	inner := repo.replaceItemsFn
	repo.replaceItemsFn = func(ctx context.Context, id, userID ulid.ULID, items []list.Item) error {
		writes++
		return inner(ctx, id, userID, items)
	}
	svc := newService(repo)
	ctx := context.Background()

	entity, removed, err := svc.ClearChecked(ctx, l.Id, l.UserId)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != 2 || len(entity.Items) != 1 || entity.Items[0].Name != "Pão" {
		t.Fatalf("expected only unchecked item kept, got %+v", entity.Items)
	}
	if writes != 1 {
		t.Fatalf("expected one write, got %d", writes)
	}

	_, _, err = svc.ClearChecked(ctx, l.Id, l.UserId)
	if !errors.Is(err, appErrors.ErrNothingToClear) {
		t.Fatalf("expected ErrNothingToClear on second call, got %v", err)
	}
	if writes != 1 {
		t.Fatalf("nothing-to-clear must not write, got %d writes", writes)
	}
}

func TestBuildRecipeQuery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("joins unchecked names", func(t *testing.T) {
		l := &list.List{Id: ulid.Make(), UserId: ulid.Make(), Items: []list.Item{
			{Id: ulid.Make(), Name: "Frango", Category: "Açougue"},
			{Id: ulid.Make(), Name: "Leite", Category: "Laticínios", Checked: true},
			{Id: ulid.Make(), Name: "Alho", Category: "Hortifruti"},
		}}
		svc := newService(statefulRepo(l))
		query, err := svc.BuildRecipeQuery(ctx, l.Id, l.UserId)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if query.Query != "receita com Frango Alho" {
			t.Fatalf("unexpected query: %q", query.Query)
		}
		if !strings.HasPrefix(query.SearchURL, "https://www.google.com/search?q=") {
			t.Fatalf("unexpected search url: %q", query.SearchURL)
		}
	})

	t.Run("everything checked", func(t *testing.T) {
		l := &list.List{Id: ulid.Make(), UserId: ulid.Make(), Items: []list.Item{
			{Id: ulid.Make(), Name: "Leite", Category: "Laticínios", Checked: true},
		}}
		svc := newService(statefulRepo(l))
		if _, err := svc.BuildRecipeQuery(ctx, l.Id, l.UserId); !errors.Is(err, appErrors.ErrNothingToSearch) {
			t.Fatalf("expected ErrNothingToSearch, got %v", err)
		}
	})
}

func TestNotifierDeliversAfterWrite(t *testing.T) {
	t.Parallel()

	itemID := ulid.Make()
	l := &list.List{Id: ulid.Make(), UserId: ulid.Make(), Items: []list.Item{
		{Id: itemID, Name: "Café", Category: "Mercearia"},
	}}
	svc := newService(statefulRepo(l))

	ch, cancel := svc.Subscribe(l.Id)
	defer cancel()

	if _, err := svc.ToggleItem(context.Background(), l.Id, l.UserId, itemID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case snapshot := <-ch:
		if len(snapshot) != 1 || !snapshot[0].Checked {
			t.Fatalf("expected checked snapshot, got %+v", snapshot)
		}
	default:
		t.Fatalf("expected a snapshot after the write")
	}
}

func TestReplaceFailureLeavesStateUnchanged(t *testing.T) {
	t.Parallel()

	itemID := ulid.Make()
	l := &list.List{Id: ulid.Make(), UserId: ulid.Make(), Items: []list.Item{
		{Id: itemID, Name: "Café", Category: "Mercearia"},
	}}
	repo := statefulRepo(l)
	repo.replaceItemsFn = func(ctx context.Context, id, userID ulid.ULID, items []list.Item) error {
		return appErrors.NewDatabaseError(errors.New("conexão recusada"))
	}
	svc := newService(repo)

	if _, err := svc.ToggleItem(context.Background(), l.Id, l.UserId, itemID); err == nil {
		t.Fatalf("expected persistence failure to propagate")
	}
	if l.Items[0].Checked {
		t.Fatalf("failed write must not mutate stored state")
	}
}
