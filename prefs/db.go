package prefs

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xy-planning-network/waymark"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// PG Docs: https://www.postgresql.org/docs/current/libpq-connect.html#LIBPQ-PARAMKEYWORDS
const cxnStr = "host=%s port=%s dbname=%s user=%s password=%s sslmode=%s"

// Cf., https://www.postgresql.org/docs/current/errcodes-appendix.html
var errUniqViolation = regexp.MustCompile(`SQLSTATE (23505)`)

// CxnConfig holds connection information used to connect to a PostgreSQL database.
type CxnConfig struct {
	IsTestDB bool
	URL      string
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
}

// Connect creates a database connection through GORM according to the
// connection config and runs all migrations.
func Connect(config *CxnConfig, migrations []Migration, env waymark.Environment) (*gorm.DB, error) {
	// https://gorm.io/docs/logger.html
	c := gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	}

	if env.IsDevelopment() {
		c.Colorful = true
	}

	db, err := gorm.Open(postgres.Open(buildCxnStr(config)), &gorm.Config{
		Logger: gormlogger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), c),
		NamingStrategy: schema.NamingStrategy{
			NameReplacer: strings.NewReplacer("Table", ""),
		},
		NowFunc: func() time.Time {
			return time.Now().Truncate(time.Microsecond)
		},
	})
	if err != nil {
		return nil, err
	}

	if config.IsTestDB {
		if err := db.Exec("DROP SCHEMA IF EXISTS public CASCADE;").Error; err != nil {
			return nil, err
		}
	}

	if err := MigrateUp(db, "public", migrations); err != nil {
		return nil, err
	}

	return db, nil
}

func buildCxnStr(config *CxnConfig) string {
	if config.URL != "" {
		return config.URL
	}

	if config.SSLMode == "" {
		// PG Docs: https://www.postgresql.org/docs/current/libpq-ssl.html#LIBPQ-SSL-SSLMODE-STATEMENTS
		config.SSLMode = "prefer"
	}

	return fmt.Sprintf(
		cxnStr,
		config.Host,
		config.Port,
		config.Name,
		config.User,
		config.Password,
		config.SSLMode,
	)
}

// WipeDB queries for all of the tables and then drops the data in those tables.
func WipeDB(db *gorm.DB) error {
	var tables []string
	err := db.
		Table("information_schema.tables").
		Select("table_name").
		Where("table_schema = ?", "public").
		Not("table_type = ?", "VIEW").
		Pluck("table_name", &tables).
		Error
	if err != nil {
		return err
	}

	return db.Exec(fmt.Sprintf("TRUNCATE %s CASCADE;", strings.Join(tables, ", "))).Error
}

// A DBStore persists named profiles and their settings to PostgreSQL.
type DBStore struct {
	db *gorm.DB
}

// NewDBStore constructs a *DBStore from an established connection.
func NewDBStore(db *gorm.DB) *DBStore { return &DBStore{db: db} }

// DB exposes the underlying *gorm.DB backing DBStore.
//
// NB: use in exceptional circumstances only.
func (s *DBStore) DB() *gorm.DB { return s.db }

// CreateProfile stores a new named profile.
//
// A name already stored returns ErrExists.
func (s *DBStore) CreateProfile(ctx context.Context, name string) (Profile, error) {
	if name == "" {
		return Profile{}, fmt.Errorf("%w: profile needs a name", waymark.ErrMissingData)
	}

	p := Profile{ExternalID: uuid.New(), Name: name}
	err := s.db.WithContext(ctx).Create(&p).Error
	switch {
	case err == nil:
		return p, nil

	case errUniqViolation.MatchString(err.Error()):
		return Profile{}, fmt.Errorf("%w: profile %q", waymark.ErrExists, name)

	default:
		return Profile{}, fmt.Errorf("%w: failed creating profile: %s", waymark.ErrUnexpected, err)
	}
}

// Profile retrieves the profile named name along with its settings.
func (s *DBStore) Profile(ctx context.Context, name string) (Profile, error) {
	var p Profile
	err := s.db.WithContext(ctx).Preload("Settings").Where("name = ?", name).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Profile{}, fmt.Errorf("%w: profile %q", waymark.ErrNotFound, name)
	}

	if err != nil {
		return Profile{}, fmt.Errorf("%w: %s", waymark.ErrUnexpected, err)
	}

	return p, nil
}

// Profiles lists all stored profiles, oldest first, without their settings.
func (s *DBStore) Profiles(ctx context.Context) ([]Profile, error) {
	var ps []Profile
	if err := s.db.WithContext(ctx).Order("id").Find(&ps).Error; err != nil {
		return nil, fmt.Errorf("%w: %s", waymark.ErrUnexpected, err)
	}

	return ps, nil
}

// Load reads the profile's stored values.
func (s *DBStore) Load(ctx context.Context, profileID uint) (Values, error) {
	var rows []Setting
	if err := s.db.WithContext(ctx).Where("profile_id = ?", profileID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: %s", waymark.ErrUnexpected, err)
	}

	vs := make(Values, len(rows))
	for _, row := range rows {
		vs[Key(row.Key)] = row.Value
	}

	return vs, nil
}

// Save upserts vs into the profile's settings inside one transaction.
func (s *DBStore) Save(ctx context.Context, profileID uint, vs Values) error {
	if profileID == 0 {
		return fmt.Errorf("%w: profile has not been stored", waymark.ErrMissingData)
	}

	if len(vs) == 0 {
		return fmt.Errorf("%w: no values to save", waymark.ErrMissingData)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for k, v := range vs {
			res := tx.Model(new(Setting)).
				Where("profile_id = ? AND key = ?", profileID, string(k)).
				Update("value", v)
			if res.Error != nil {
				return fmt.Errorf("%w: failed saving %s: %s", waymark.ErrUnexpected, k, res.Error)
			}

			if res.RowsAffected > 0 {
				continue
			}

			row := Setting{ProfileID: profileID, Key: string(k), Value: v}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("%w: failed saving %s: %s", waymark.ErrUnexpected, k, err)
			}
		}

		return nil
	})
}

// DeleteProfile removes the profile; its settings cascade away with it.
func (s *DBStore) DeleteProfile(ctx context.Context, profileID uint) error {
	res := s.db.WithContext(ctx).Delete(&Profile{Model: Model{ID: profileID}})
	if res.Error != nil {
		return fmt.Errorf("%w: %s", waymark.ErrUnexpected, res.Error)
	}

	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: profile %d", waymark.ErrNotFound, profileID)
	}

	return nil
}
