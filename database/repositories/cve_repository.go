package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/updatehub/database/models"
	"github.com/l3montree-dev/updatehub/utils"
	"gorm.io/gorm"
)

type cveRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.CVE, *gorm.DB]
}

func NewCVERepository(db *gorm.DB) *cveRepository {
	return &cveRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.CVE](db),
	}
}

func (g *cveRepository) FindByCVEID(cveID string) (models.CVE, error) {
	var cve models.CVE
	err := g.db.First(&cve, "cve_id = ?", cveID).Error
	return cve, err
}

func (g *cveRepository) CountUpdateReferences(tx *gorm.DB, id uuid.UUID) (int64, error) {
	var count int64
	err := g.GetDB(tx).Table("update_cves").Where("cve_id = ?", id).Count(&count).Error
	return count, err
}

func (g *cveRepository) Delete(tx *gorm.DB, id uuid.UUID) error {
	if err := g.GetDB(tx).Model(&models.CVE{Model: models.Model{ID: id}}).Association("Bugs").Clear(); err != nil {
		return err
	}
	return g.GetDB(tx).Delete(&models.CVE{}, "id = ?", id).Error
}
