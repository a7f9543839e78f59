package database

import (
	"fmt"
	"log"

	"api/config"
	"api/models"
	"api/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

var DefaultAdminEmail = "admin@admin.com"
var DefaultPassword = "admin"

// InitDB initializes the database connection, migrates the models and populates the database with default values if needed
func InitDB() {
    dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable TimeZone=UTC", config.PostgresHost, config.PostgresPort, config.PostgresUser, config.PostgresDB, config.PostgresPassword)

    var err error
    DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
    if err != nil {
        log.Fatal("failed to connect database: ", err)
    }

    if err := Migrate(DB); err != nil {
        log.Fatal("failed to migrate database: ", err)
    }

    Populate()
}

// Migrate runs the schema migration on the given connection. It is shared
// between InitDB and the test suites, which run against an in-memory database.
func Migrate(db *gorm.DB) error {
    err := db.AutoMigrate(
        &models.User{},
        &models.Role{},
        &models.Competition{},
        &models.Category{},
        &models.Photo{},
        &models.Vote{},
        &models.Report{},
        &models.Winner{},
    )
    if err != nil {
        return err
    }

    // Title uniqueness only applies to non-deleted photos, which AutoMigrate
    // cannot express. Both postgres and sqlite accept this partial index.
    return db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_photos_owner_title
        ON photos (user_id, competition_id, category_id, title)
        WHERE status <> 'deleted'`).Error
}

// Populate populates the database with default roles and an admin account if needed
func Populate() {
    roles := map[string]*models.Role{}
    for _, name := range []string{models.RoleUser, models.RoleAdmin, models.RoleSuperAdmin} {
        var role models.Role
        if err := DB.Where("name = ?", name).First(&role).Error; err != nil {
            role = models.Role{Name: name}
            DB.Create(&role)
            log.Println("Default role created:", name)
        }
        roles[name] = &role
    }

    var countUser int64
    DB.Model(&models.User{}).Count(&countUser)
    if countUser == 0 {
        // Create the default admin with a password either from the .env file or the DefaultPassword constant
        password := DefaultPassword
        if config.DefaultPassword != "" {
            password = config.DefaultPassword
        }

        password, err := utils.HashPassword(password)
        if err != nil {
            panic(err)
        }

        user := models.User{
            Email:         DefaultAdminEmail,
            Firstname:     "Admin",
            Lastname:      "Admin",
            Password:      password,
            EmailVerified: true,
            LastConnected: nil,
            Roles:         []*models.Role{roles[models.RoleSuperAdmin]},
        }
        DB.Create(&user)
        log.Println("Default admin user created")
    }
}
