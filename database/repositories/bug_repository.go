package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/updatehub/database/models"
	"github.com/l3montree-dev/updatehub/utils"
	"gorm.io/gorm"
)

type bugRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Bug, *gorm.DB]
}

func NewBugRepository(db *gorm.DB) *bugRepository {
	return &bugRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Bug](db),
	}
}

func (g *bugRepository) FindByBugID(bugID int) (models.Bug, error) {
	var bug models.Bug
	err := g.db.Preload("CVEs").First(&bug, "bug_id = ?", bugID).Error
	return bug, err
}

func (g *bugRepository) CountUpdateReferences(tx *gorm.DB, id uuid.UUID) (int64, error) {
	var count int64
	err := g.GetDB(tx).Table("update_bugs").Where("bug_id = ?", id).Count(&count).Error
	return count, err
}

// Delete also clears the bug-cve join rows so no stray association survives
// the garbage collection.
func (g *bugRepository) Delete(tx *gorm.DB, id uuid.UUID) error {
	if err := g.GetDB(tx).Model(&models.Bug{Model: models.Model{ID: id}}).Association("CVEs").Clear(); err != nil {
		return err
	}
	return g.GetDB(tx).Delete(&models.Bug{}, "id = ?", id).Error
}
