package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/updatehub/database/models"
	"github.com/l3montree-dev/updatehub/utils"
	"gorm.io/gorm"
)

type packageRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Package, *gorm.DB]
}

func NewPackageRepository(db *gorm.DB) *packageRepository {
	return &packageRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Package](db),
	}
}

func (g *packageRepository) FindByName(name string) (models.Package, error) {
	var pkg models.Package
	err := g.db.First(&pkg, "name = ?", name).Error
	return pkg, err
}
