package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/updatehub/database/models"
	"github.com/l3montree-dev/updatehub/dtos"
	"github.com/l3montree-dev/updatehub/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type updateRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Update, *gorm.DB]
}

func NewUpdateRepository(db *gorm.DB) *updateRepository {
	return &updateRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Update](db),
	}
}

func (g *updateRepository) preload(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Release").
		Preload("Builds.Package").
		Preload("Builds.Release").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Bugs").
		Preload("CVEs")
}

func (g *updateRepository) Read(id uuid.UUID) (models.Update, error) {
	var update models.Update
	err := g.preload(g.db).First(&update, "id = ?", id).Error
	return update, err
}

// ReadForUpdate acquires a row lock on the update before loading its
// aggregate. Association preloads run as separate queries, so the lock is
// taken on the base row first.
func (g *updateRepository) ReadForUpdate(tx *gorm.DB, id uuid.UUID) (models.Update, error) {
	var update models.Update
	err := g.GetDB(tx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&update, "id = ?", id).Error
	if err != nil {
		return update, err
	}
	err = g.preload(g.GetDB(tx)).First(&update, "id = ?", id).Error
	return update, err
}

// Save persists the update row itself. Associations are managed explicitly
// (AppendBug, comment repository, ...), never by cascade from here.
func (g *updateRepository) Save(tx *gorm.DB, update *models.Update) error {
	return g.GetDB(tx).Omit(clause.Associations).Save(update).Error
}

func (g *updateRepository) Create(tx *gorm.DB, update *models.Update) error {
	return g.GetDB(tx).Omit(clause.Associations).Create(update).Error
}

func (g *updateRepository) FindByRequest(action dtos.RequestAction) ([]models.Update, error) {
	var updates []models.Update
	err := g.preload(g.db).Find(&updates, "request = ?", string(action)).Error
	return updates, err
}

// LatestAlias scans aliases of the form {prefix}-{year}-{seq}. The exclusion
// keeps prefixes that extend each other apart: a FEDORA scan must not pick up
// FEDORA-EPEL aliases.
func (g *updateRepository) LatestAlias(tx *gorm.DB, idPrefix string) (string, error) {
	var alias string
	err := g.GetDB(tx).Model(&models.Update{}).
		Where("alias LIKE ?", idPrefix+"-%").
		Where("alias NOT LIKE ?", idPrefix+"-%-%-%").
		Order("alias DESC").
		Limit(1).
		Pluck("alias", &alias).Error
	return alias, err
}

func (g *updateRepository) AppendBug(tx *gorm.DB, update *models.Update, bug *models.Bug) error {
	return g.GetDB(tx).Model(update).Association("Bugs").Append(bug)
}

func (g *updateRepository) RemoveBug(tx *gorm.DB, update *models.Update, bug *models.Bug) error {
	return g.GetDB(tx).Model(update).Association("Bugs").Delete(bug)
}

func (g *updateRepository) AppendCVE(tx *gorm.DB, update *models.Update, cve *models.CVE) error {
	return g.GetDB(tx).Model(update).Association("CVEs").Append(cve)
}

func (g *updateRepository) RemoveCVE(tx *gorm.DB, update *models.Update, cve *models.CVE) error {
	return g.GetDB(tx).Model(update).Association("CVEs").Delete(cve)
}
