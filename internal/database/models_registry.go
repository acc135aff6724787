package database

import "github.com/DylanDHubert/hotmess/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Share{},
		&models.Follow{},
		&models.Conversation{},
		&models.Message{},
	}
}
