package employee

import (
	"context"

	"gorm.io/gorm"
)

type ListFilter struct {
	Department     string
	IncludeBlocked bool
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context, filter ListFilter) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByDeviceIDs(ctx context.Context, deviceIDs []string) ([]Employee, error)
	FindOptions(ctx context.Context) ([]Employee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Employee, error) {
	var emps []Employee
	q := r.db.WithContext(ctx)
	if !filter.IncludeBlocked {
		q = q.Where("is_blocked = ?", false)
	}
	if filter.Department != "" {
		q = q.Where("LOWER(department) = LOWER(?)", filter.Department)
	}
	err := q.Order("full_name ASC").Find(&emps).Error
	return emps, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var emp Employee
	err := r.db.WithContext(ctx).First(&emp, "id = ?", id).Error
	return &emp, err
}

func (r *repository) FindByDeviceIDs(ctx context.Context, deviceIDs []string) ([]Employee, error) {
	var emps []Employee
	if len(deviceIDs) == 0 {
		return emps, nil
	}
	err := r.db.WithContext(ctx).
		Where("zktime_id IN ?", deviceIDs).
		Find(&emps).Error
	return emps, err
}

func (r *repository) FindOptions(ctx context.Context) ([]Employee, error) {
	var emps []Employee
	err := r.db.WithContext(ctx).
		Select("id", "username", "full_name", "department").
		Where("is_blocked = ?", false).
		Where("LOWER(role) <> ?", RoleAdmin).
		Order("full_name ASC").
		Find(&emps).Error
	return emps, err
}
