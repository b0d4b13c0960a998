package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/aarlint/wokeometer-api/internal/domain/entities"
	"gorm.io/gorm"
)

// GormAssessmentRepository implements AssessmentRepository on Postgres.
type GormAssessmentRepository struct {
	db *gorm.DB
}

// NewAssessmentRepository creates a new GormAssessmentRepository.
func NewAssessmentRepository(db *gorm.DB) *GormAssessmentRepository {
	return &GormAssessmentRepository{db: db}
}

func (r *GormAssessmentRepository) Create(ctx context.Context, a *entities.Assessment) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("failed to create assessment: %w", err)
	}
	return nil
}

// CreateAll inserts a batch inside one transaction so a partial import never
// reaches the table.
func (r *GormAssessmentRepository) CreateAll(ctx context.Context, batch []entities.Assessment) error {
	if len(batch) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&batch).Error; err != nil {
			return fmt.Errorf("failed to import assessments: %w", err)
		}
		return nil
	})
}

func (r *GormAssessmentRepository) FindByID(ctx context.Context, id string) (*entities.Assessment, error) {
	var a entities.Assessment
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entities.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assessment: %w", err)
	}
	return &a, nil
}

// FindByTitle returns every assessment for an exact title match. Titles are
// the join key and are not normalized.
func (r *GormAssessmentRepository) FindByTitle(ctx context.Context, title string) ([]entities.Assessment, error) {
	var out []entities.Assessment
	if err := r.db.WithContext(ctx).
		Where("show_name = ?", title).
		Order("created_at desc").
		Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list assessments for title: %w", err)
	}
	return out, nil
}

func (r *GormAssessmentRepository) FindByOwner(ctx context.Context, ownerID string) ([]entities.Assessment, error) {
	var out []entities.Assessment
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at desc").
		Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list assessments for owner: %w", err)
	}
	return out, nil
}

// Update replaces the mutable columns of a row. The WHERE clause carries both
// id and user_id; a caller that does not own the row updates nothing.
func (r *GormAssessmentRepository) Update(ctx context.Context, ownerID string, a *entities.Assessment) error {
	res := r.db.WithContext(ctx).
		Model(&entities.Assessment{}).
		Where("id = ? AND user_id = ?", a.ID, ownerID).
		Updates(map[string]interface{}{
			"show_name":    a.ShowName,
			"questions":    a.Questions,
			"category":     a.Category,
			"show_details": a.ShowDetails,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update assessment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return r.missing(ctx, a.ID)
	}
	return nil
}

func (r *GormAssessmentRepository) Delete(ctx context.Context, ownerID, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&entities.Assessment{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete assessment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return r.missing(ctx, id)
	}
	return nil
}

// missing distinguishes "row does not exist" from "row belongs to someone
// else" after a zero-row mutation.
func (r *GormAssessmentRepository) missing(ctx context.Context, id string) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Assessment{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check assessment ownership: %w", err)
	}
	if count > 0 {
		return entities.ErrForbidden
	}
	return entities.ErrNotFound
}
