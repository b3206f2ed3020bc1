package store

import (
	"context"

	"github.com/fitpulse/gym-api/internal/models"
	"github.com/fitpulse/gym-api/internal/utils"
	"gorm.io/gorm"
)

type VoteDirection string

const (
	VoteUp   VoteDirection = "up"
	VoteDown VoteDirection = "down"
)

func (s *Store) CreateForumPost(ctx context.Context, p *models.ForumPost) error {
	return s.DB.WithContext(ctx).Create(p).Error
}

// ListForumPosts returns the page window in insertion order plus the total count.
func (s *Store) ListForumPosts(ctx context.Context, page PageRequest) ([]*models.ForumPost, int64, error) {
	var total int64
	if err := s.DB.WithContext(ctx).Model(&models.ForumPost{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var posts []*models.ForumPost
	if err := s.DB.WithContext(ctx).
		Order("id asc").
		Offset(page.Offset()).Limit(page.Limit).
		Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (s *Store) LatestForumPosts(ctx context.Context, n int) ([]*models.ForumPost, error) {
	var posts []*models.ForumPost
	if err := s.DB.WithContext(ctx).Order("id asc").Limit(n).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// VotePost bumps the up or down counter by one in a single statement, then
// re-reads the post. A missing post id mutates nothing. The re-read may see
// a concurrent vote; that is fine, counters only ever grow.
func (s *Store) VotePost(ctx context.Context, postID string, dir VoteDirection) (*models.ForumPost, error) {
	column := "up_votes"
	if dir == VoteDown {
		column = "down_votes"
	}

	res := s.DB.WithContext(ctx).Model(&models.ForumPost{}).
		Where("id = ?", postID).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, utils.ErrNotFound
	}

	var post models.ForumPost
	if err := s.DB.WithContext(ctx).First(&post, "id = ?", postID).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &post, nil
}
