package postgres

import (
	"catalog/internal/domain/entity"
	"catalog/internal/errors"
	"catalog/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates every catalog table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.PersonModel{},
		&model.AliasModel{},
		&model.MovieModel{},
		&model.UserModel{},
		&model.SessionModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate entity tables")
	}

	for _, kind := range entity.RoleKinds {
		table, _ := model.RoleTable(kind)
		if err := db.Table(table).AutoMigrate(&model.RoleModel{}); err != nil {
			return errors.Wrapf(err, "failed to migrate %s", table)
		}
		// The join tables share one model, so their movie_id indexes are named by hand.
		if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_" + table + "_movie_id ON " + table + " (movie_id)").Error; err != nil {
			return errors.Wrapf(err, "failed to index %s", table)
		}
	}

	return nil
}
