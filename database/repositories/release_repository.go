package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/updatehub/database/models"
	"github.com/l3montree-dev/updatehub/utils"
	"gorm.io/gorm"
)

type releaseRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Release, *gorm.DB]
}

func NewReleaseRepository(db *gorm.DB) *releaseRepository {
	return &releaseRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Release](db),
	}
}

func (g *releaseRepository) FindByName(name string) (models.Release, error) {
	var release models.Release
	err := g.db.First(&release, "name = ?", name).Error
	return release, err
}
