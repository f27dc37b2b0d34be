package models

import (
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var pluralIES = regexp.MustCompile("ies$")

// Connect opens the SQLite database, migrates the schema and seeds the
// default categories if there are none.
//
// The caller owns the returned connection and closes it when done.
func Connect(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},

		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// SQLite only supports one writer. A single connection avoids SQLITE_BUSY errors.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = registerCallbacks(db)
	if err != nil {
		return nil, err
	}

	err = migrate(db)
	if err != nil {
		return nil, err
	}

	err = SeedCategories(db)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func registerCallbacks(db *gorm.DB) error {
	registrations := []struct {
		processor interface {
			Register(string, func(*gorm.DB)) error
		}
		name     string
		callback func(*gorm.DB)
	}{
		{db.Callback().Query().After("*"), "finsight:after_query", queryCallback},
		{db.Callback().Query().After("*"), "finsight:after_query_general", generalCallback},
		{db.Callback().Create().After("*"), "finsight:after_create", createUpdateCallback},
		{db.Callback().Create().After("*"), "finsight:after_create_general", generalCallback},
		{db.Callback().Update().After("*"), "finsight:after_update", createUpdateCallback},
		{db.Callback().Update().After("*"), "finsight:after_update_general", generalCallback},
		{db.Callback().Delete().After("*"), "finsight:after_delete_general", generalCallback},
		{db.Callback().Row().After("*"), "finsight:after_row_general", generalCallback},
	}

	for _, r := range registrations {
		err := r.processor.Register(r.name, r.callback)
		if err != nil {
			return fmt.Errorf("registering callback %s failed: %w", r.name, err)
		}
	}

	return nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")
		name = pluralIES.ReplaceAllString(name, "y")
		name = strings.TrimSuffix(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// Category IDs are unique per type
	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: categories.id, categories.type") {
		db.Error = ErrCategoryExists
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	db.Error = GeneralError(db.Error)
}

// GeneralError logs database and driver errors and replaces them with
// ErrGeneral. All other errors are returned unchanged.
//
// Errors that do not pass through the gorm callbacks, e.g. from starting
// a transaction, need to be translated with it explicitly.
func GeneralError(err error) error {
	if err == nil {
		return nil
	}

	// "sql: database is closed" is hard-coded in the database/sql package
	if errors.Is(err, sql.ErrConnDone) || err.Error() == "sql: database is closed" || reflect.TypeOf(err) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", err, err.Error())
		return ErrGeneral
	}

	return err
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(Category{}, Income{}, Expense{}, Budget{}, Goal{}, Debt{}, Repayment{}, MonthClosure{}, MatchRule{}, Setting{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}

// SeedCategories creates the default categories if no category exists.
func SeedCategories(db *gorm.DB) error {
	var count int64
	err := db.Model(&Category{}).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	categories := DefaultCategories()
	err = db.Create(&categories).Error
	if err != nil {
		return fmt.Errorf("seeding default categories failed: %w", err)
	}

	return nil
}
