package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/updatehub/database/models"
	"github.com/l3montree-dev/updatehub/utils"
	"gorm.io/gorm"
)

type buildRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Build, *gorm.DB]
}

func NewBuildRepository(db *gorm.DB) *buildRepository {
	return &buildRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Build](db),
	}
}

func (g *buildRepository) FindByNVR(nvr string) (models.Build, error) {
	var build models.Build
	err := g.db.Preload("Package").Preload("Release").First(&build, "nvr = ?", nvr).Error
	return build, err
}
