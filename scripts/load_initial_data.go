package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"quiroclinic-backend/internal/config"
	"quiroclinic-backend/internal/database"
	"quiroclinic-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type OrganizationData struct {
	Name     string        `yaml:"name"`
	Slug     string        `yaml:"slug"`
	Users    []UserData    `yaml:"users"`
	Patients []PatientData `yaml:"patients"`
}

type UserData struct {
	FirstName string   `yaml:"first_name"`
	LastName  string   `yaml:"last_name"`
	Email     string   `yaml:"email"`
	Password  string   `yaml:"password"`
	Owner     bool     `yaml:"owner,omitempty"`
	Roles     []string `yaml:"roles"`
}

type PatientData struct {
	Name      string        `yaml:"name"`
	LastName  string        `yaml:"last_name"`
	Age       int           `yaml:"age"`
	Gender    string        `yaml:"gender"`
	Weight    float64       `yaml:"weight"`
	Education string        `yaml:"education"`
	Sport     string        `yaml:"sport"`
	RestHours int           `yaml:"rest_hours"`
	CreatedBy string        `yaml:"created_by"`
	Measures  []MeasureData `yaml:"measures,omitempty"`
}

type MeasureData struct {
	Name        string  `yaml:"name"`
	BodyZone    string  `yaml:"body_zone"`
	Value       float64 `yaml:"value"`
	Unit        string  `yaml:"unit"`
	Description string  `yaml:"description,omitempty"`
	CreatedBy   string  `yaml:"created_by"`
}

type DemoFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

func main() {
	log.Println("🚀 Loading demo data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	defs, err := database.LoadRoleDefinitions(cfg.RolesFile)
	if err != nil {
		log.Printf("Role definitions file not readable (%v), using built-in defaults", err)
		defs = database.DefaultRoleDefinitions()
	}
	if err := database.SeedRolesAndPermissions(db, defs); err != nil {
		log.Fatalf("Failed to seed roles and permissions: %v", err)
	}

	if err := loadDemoData(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load demo data: %v", err)
	}

	log.Println("✅ Demo data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel:    logger.Silent,
		AutoMigrate: true,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDemoData(db *gorm.DB, dataDir string) error {
	raw, err := os.ReadFile(filepath.Join(dataDir, "demo.yaml"))
	if err != nil {
		return fmt.Errorf("failed to read demo.yaml: %w", err)
	}

	var file DemoFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("failed to parse demo.yaml: %w", err)
	}

	for _, orgData := range file.Organizations {
		if err := loadOrganization(db, orgData); err != nil {
			return fmt.Errorf("failed to load organization %q: %w", orgData.Name, err)
		}
	}
	return nil
}

func loadOrganization(db *gorm.DB, data OrganizationData) error {
	// Idempotent by organization name
	var org models.Organization
	err := db.Where("name = ?", data.Name).First(&org).Error
	if err == nil {
		log.Printf("Organization %q already exists, skipping", data.Name)
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	org = models.Organization{Name: data.Name, Slug: data.Slug}
	if err := db.Create(&org).Error; err != nil {
		return err
	}
	log.Printf("Created organization %q", org.Name)

	usersByEmail := make(map[string]*models.User, len(data.Users))
	for _, userData := range data.Users {
		user, err := loadUser(db, org.ID, userData)
		if err != nil {
			return fmt.Errorf("user %q: %w", userData.Email, err)
		}
		usersByEmail[user.Email] = user
	}

	for _, patientData := range data.Patients {
		if err := loadPatient(db, org.ID, usersByEmail, patientData); err != nil {
			return fmt.Errorf("patient %q: %w", patientData.Name, err)
		}
	}
	return nil
}

func loadUser(db *gorm.DB, orgID uuid.UUID, data UserData) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var roles []models.Role
	if len(data.Roles) > 0 {
		if err := db.Where("name IN ?", data.Roles).Find(&roles).Error; err != nil {
			return nil, err
		}
		if len(roles) != len(data.Roles) {
			return nil, fmt.Errorf("unknown role in %v", data.Roles)
		}
	}

	user := models.User{
		FirstName:           data.FirstName,
		LastName:            data.LastName,
		Email:               data.Email,
		PasswordHash:        string(hash),
		OrganizationID:      &orgID,
		IsOrganizationOwner: data.Owner,
		Roles:               roles,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	log.Printf("  Created user %q", user.Email)
	return &user, nil
}

func loadPatient(db *gorm.DB, orgID uuid.UUID, users map[string]*models.User, data PatientData) error {
	creator, ok := users[data.CreatedBy]
	if !ok {
		return fmt.Errorf("created_by %q does not match any user in the organization", data.CreatedBy)
	}

	patient := models.Patient{
		Name:           data.Name,
		LastName:       data.LastName,
		Age:            data.Age,
		Gender:         models.Gender(data.Gender),
		Weight:         data.Weight,
		Education:      data.Education,
		Sport:          data.Sport,
		RestHours:      data.RestHours,
		UserID:         creator.ID,
		OrganizationID: orgID,
	}
	if err := db.Create(&patient).Error; err != nil {
		return err
	}
	log.Printf("  Created patient %q %q", patient.Name, patient.LastName)

	for _, measureData := range data.Measures {
		measureCreator, ok := users[measureData.CreatedBy]
		if !ok {
			return fmt.Errorf("measure created_by %q does not match any user", measureData.CreatedBy)
		}
		measure := models.Measure{
			Name:           measureData.Name,
			BodyZone:       measureData.BodyZone,
			Value:          measureData.Value,
			Unit:           measureData.Unit,
			Description:    measureData.Description,
			PatientID:      patient.ID,
			UserID:         measureCreator.ID,
			OrganizationID: orgID,
		}
		if err := db.Create(&measure).Error; err != nil {
			return err
		}
	}
	return nil
}
