package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/updatehub/database/models"
	"github.com/l3montree-dev/updatehub/utils"
	"gorm.io/gorm"
)

type commentRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Comment, *gorm.DB]
}

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Comment](db),
	}
}
