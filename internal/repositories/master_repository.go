package repositories

import (
	"context"
	"errors"

	"refurbmart/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MasterRepositoryInterface interface {
	CreateMaster(ctx context.Context, master *db_models.MasterOption) error
	FindMasterByID(ctx context.Context, id string) (*db_models.MasterOption, error)
	FindMasterByTypeAndName(ctx context.Context, optionType, name string) (*db_models.MasterOption, error)
	ListMasters(ctx context.Context, optionType string) ([]db_models.MasterOption, error)
	DeleteMaster(ctx context.Context, id string) error

	CreateSubMaster(ctx context.Context, sub *db_models.SubMasterOption) error
	FindSubMasterByID(ctx context.Context, id string) (*db_models.SubMasterOption, error)
	FindSubMasterByKey(ctx context.Context, masterID uuid.UUID, parentID *uuid.UUID, name string) (*db_models.SubMasterOption, error)
	ListSubMasters(ctx context.Context, masterID string) ([]db_models.SubMasterOption, error)
	DeleteSubMaster(ctx context.Context, id string) error
}

func NewMasterRepository(db *gorm.DB) MasterRepositoryInterface {
	return &masterRepository{db: db}
}

type masterRepository struct {
	db *gorm.DB
}

func (r *masterRepository) CreateMaster(ctx context.Context, master *db_models.MasterOption) error {
	return r.db.WithContext(ctx).Create(master).Error
}

func (r *masterRepository) FindMasterByID(ctx context.Context, id string) (*db_models.MasterOption, error) {
	var master db_models.MasterOption
	err := r.db.WithContext(ctx).First(&master, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &master, nil
}

func (r *masterRepository) FindMasterByTypeAndName(ctx context.Context, optionType, name string) (*db_models.MasterOption, error) {
	var master db_models.MasterOption
	err := r.db.WithContext(ctx).
		Where("type = ? AND name = ?", optionType, name).
		First(&master).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &master, nil
}

func (r *masterRepository) ListMasters(ctx context.Context, optionType string) ([]db_models.MasterOption, error) {
	var masters []db_models.MasterOption
	query := r.db.WithContext(ctx).Order("type ASC, name ASC")
	if optionType != "" {
		query = query.Where("type = ?", optionType)
	}
	if err := query.Find(&masters).Error; err != nil {
		return nil, err
	}
	return masters, nil
}

func (r *masterRepository) DeleteMaster(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.MasterOption{}, "id = ?", id).Error
}

func (r *masterRepository) CreateSubMaster(ctx context.Context, sub *db_models.SubMasterOption) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *masterRepository) FindSubMasterByID(ctx context.Context, id string) (*db_models.SubMasterOption, error) {
	var sub db_models.SubMasterOption
	err := r.db.WithContext(ctx).First(&sub, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *masterRepository) FindSubMasterByKey(ctx context.Context, masterID uuid.UUID, parentID *uuid.UUID, name string) (*db_models.SubMasterOption, error) {
	var sub db_models.SubMasterOption
	query := r.db.WithContext(ctx).Where("master_id = ? AND name = ?", masterID, name)
	if parentID != nil {
		query = query.Where("parent_id = ?", *parentID)
	} else {
		query = query.Where("parent_id IS NULL")
	}
	err := query.First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *masterRepository) ListSubMasters(ctx context.Context, masterID string) ([]db_models.SubMasterOption, error) {
	var subs []db_models.SubMasterOption
	query := r.db.WithContext(ctx).Order("name ASC")
	if masterID != "" {
		query = query.Where("master_id = ?", masterID)
	}
	if err := query.Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *masterRepository) DeleteSubMaster(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.SubMasterOption{}, "id = ?", id).Error
}
