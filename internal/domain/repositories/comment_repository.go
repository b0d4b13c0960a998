package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/aarlint/wokeometer-api/internal/domain/entities"
	"gorm.io/gorm"
)

// GormCommentRepository implements CommentRepository on Postgres.
type GormCommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new GormCommentRepository.
func NewCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

func (r *GormCommentRepository) Create(ctx context.Context, c *entities.Comment) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *GormCommentRepository) FindByTitle(ctx context.Context, title string) ([]entities.Comment, error) {
	var out []entities.Comment
	if err := r.db.WithContext(ctx).
		Where("show_name = ?", title).
		Order("created_at desc").
		Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments for title: %w", err)
	}
	return out, nil
}

func (r *GormCommentRepository) FindByID(ctx context.Context, id string) (*entities.Comment, error) {
	var c entities.Comment
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entities.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comment: %w", err)
	}
	return &c, nil
}

func (r *GormCommentRepository) Delete(ctx context.Context, ownerID, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&entities.Comment{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&entities.Comment{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check comment ownership: %w", err)
		}
		if count > 0 {
			return entities.ErrForbidden
		}
		return entities.ErrNotFound
	}
	return nil
}
