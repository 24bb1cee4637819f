package services

import (
	"errors"
	"testing"

	"teacup/internal/apperrors"
	"teacup/internal/models"
	"teacup/internal/utils"
)

// 这两条失败路径在构建查询之前就返回，不需要数据库
func TestBuildFeedErrors(t *testing.T) {
	t.Run("personalized without viewer", func(t *testing.T) {
		_, err := BuildFeed(nil, utils.FeedModePersonalized, FeedOptions{})
		if !errors.Is(err, apperrors.ErrUnauthenticated) {
			t.Errorf("err = %v, want ErrUnauthenticated", err)
		}
	})

	t.Run("unknown mode", func(t *testing.T) {
		viewer := &models.User{Username: "alice"}
		viewer.ID = 1
		_, err := BuildFeed(viewer, "newest", FeedOptions{})
		if !errors.Is(err, apperrors.ErrValidation) {
			t.Errorf("err = %v, want ErrValidation", err)
		}
	})
}
