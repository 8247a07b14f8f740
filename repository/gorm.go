package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/nmapp/checkbackend/models"
)

// NewGormStore wires the gorm-backed repositories. The *gorm.DB must be opened
// with TranslateError so unique-index violations surface as ErrDuplicatedKey
// regardless of driver.
func NewGormStore(db *gorm.DB) Store {
	return Store{
		Users:   &gormUsers{db: db},
		History: &gormHistory{db: db},
	}
}

type gormUsers struct {
	db *gorm.DB
}

func (r *gormUsers) Create(ctx context.Context, user *models.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

func (r *gormUsers) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *gormUsers) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findOne(ctx, "username = ?", username)
}

func (r *gormUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *gormUsers) findOne(ctx context.Context, query string, arg string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where(query, arg).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *gormUsers) UsernameTaken(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username = ?", username)
}

func (r *gormUsers) EmailTaken(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email = ?", email)
}

func (r *gormUsers) exists(ctx context.Context, query string, arg string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where(query, arg).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

type gormHistory struct {
	db *gorm.DB
}

func (r *gormHistory) Create(ctx context.Context, record *models.DownloadHistory) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *gormHistory) ListByUser(ctx context.Context, userID uint) ([]models.DownloadHistory, error) {
	records := []models.DownloadHistory{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("downloaded_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *gormHistory) DeleteByID(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.DownloadHistory{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormHistory) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&models.DownloadHistory{}).Error
}
