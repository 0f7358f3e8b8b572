package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"Feira/internal/domain/list"
	appErrors "Feira/internal/errors"
	"Feira/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type ListRepository struct {
	DB *gorm.DB
}

// listDB guarda a coleção de itens como documento JSON na própria linha da
// lista. Toda mutação regrava a coleção inteira (último gravador vence).
type listDB struct {
	Id        string    `gorm:"type:varchar(26);primaryKey"`
	UserId    string    `gorm:"type:varchar(26);index:idx_lists_user_id;not null"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Items     string    `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt time.Time `gorm:"autoCreateTime;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null"`
}

func (listDB) TableName() string {
	return "lists"
}

func toDomainList(ldb *listDB) (*list.List, error) {
	id, err := pkg.ParseULID(ldb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	uid, err := pkg.ParseULID(ldb.UserId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	items := []list.Item{}
	if ldb.Items != "" {
		if err := json.Unmarshal([]byte(ldb.Items), &items); err != nil {
			return nil, appErrors.ErrInternalServer.WithError(err)
		}
	}

	return &list.List{
		Id:        id,
		UserId:    uid,
		Name:      ldb.Name,
		Items:     items,
		CreatedAt: ldb.CreatedAt,
		UpdatedAt: ldb.UpdatedAt,
	}, nil
}

func toDBList(l *list.List) (*listDB, error) {
	items := l.Items
	if items == nil {
		items = []list.Item{}
	}
	encoded, err := json.Marshal(items)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return &listDB{
		Id:        l.Id.String(),
		UserId:    l.UserId.String(),
		Name:      l.Name,
		Items:     string(encoded),
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}, nil
}

func (r *ListRepository) Create(ctx context.Context, l *list.List) error {
	ldb, err := toDBList(l)
	if err != nil {
		return err
	}
	if err := r.DB.WithContext(ctx).Table("lists").Create(ldb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *ListRepository) Delete(ctx context.Context, id, userID ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("lists").
		Where("id = ? AND user_id = ?", id.String(), userID.String()).
		Delete(&listDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrListNotFound
	}
	return nil
}

func (r *ListRepository) GetByIdAndUser(ctx context.Context, id, userID ulid.ULID) (*list.List, error) {
	var ldb listDB
	if err := r.DB.WithContext(ctx).Table("lists").
		Where("id = ? AND user_id = ?", id.String(), userID.String()).
		First(&ldb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrListNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainList(&ldb)
}

func (r *ListRepository) GetByUserId(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*list.List, int64, error) {
	query := r.DB.WithContext(ctx).Table("lists").Where("user_id = ?", userID.String())

	lists, total, err := pkg.Paginate[list.List, listDB](query, pagination, "created_at DESC", toDomainList)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return lists, total, nil
}

// ReplaceItems regrava a coleção completa de itens da lista.
func (r *ListRepository) ReplaceItems(ctx context.Context, id, userID ulid.ULID, items []list.Item) error {
	if items == nil {
		items = []list.Item{}
	}
	encoded, err := json.Marshal(items)
	if err != nil {
		return appErrors.ErrInternalServer.WithError(err)
	}

	result := r.DB.WithContext(ctx).Table("lists").
		Where("id = ? AND user_id = ?", id.String(), userID.String()).
		Updates(map[string]interface{}{
			"items":      string(encoded),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrListNotFound
	}
	return nil
}

func (r *ListRepository) DeleteByUserId(ctx context.Context, userID ulid.ULID) error {
	if err := r.DB.WithContext(ctx).Table("lists").
		Where("user_id = ?", userID.String()).
		Delete(&listDB{}).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}
