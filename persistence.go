package genetic_crossover

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	sqlite "github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	gorm "gorm.io/gorm"
)

// MemoryPath as PersistenceConfig.Path keeps the database in memory under
// PersistenceConfig.Name.
const MemoryPath = ":memory:"

var ErrRecordNotFound = errors.New("crossover record not found")

type PersistenceConfig struct {
	Name          string   `toml:"name"`
	Path          string   `toml:"path"`
	SQLitePragmas []string `toml:"sqlite_pragmas"`
	SQLiteOptions []string `toml:"sqlite_options"`
	BatchSize     int      `toml:"batch_size"`
}

type Persistence struct {
	Config *PersistenceConfig
	DB     *gorm.DB
}

// DSN builds the sqlite connection string: path/name followed by the
// _pragma parameters and then the raw options.
func (config *PersistenceConfig) DSN() string {
	var params []string
	for _, prag := range config.SQLitePragmas {
		params = append(params, fmt.Sprintf("_pragma=%s", prag))
	}
	params = append(params, config.SQLiteOptions...)

	var path strings.Builder
	if config.Path == MemoryPath {
		path.WriteString("file:")
		path.WriteString(config.Name)
		params = append([]string{"mode=memory", "cache=shared"}, params...)
	} else {
		path.WriteString(filepath.Join(config.Path, config.Name))
	}

	if len(params) > 0 {
		path.WriteRune('?')
		path.WriteString(strings.Join(params, "&"))
	}
	return path.String()
}

func NewPersistence(config *PersistenceConfig) (*Persistence, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	if len(config.Path) == 0 {
		return nil, fmt.Errorf("Path to database must be defined")
	}

	if len(config.Name) == 0 {
		return nil, fmt.Errorf("Name of database must be defined")
	}

	batchSize := config.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	db, err := gorm.Open(sqlite.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("Failed to open %s: %w", config.DSN(), err)
	}

	db = db.Session(&gorm.Session{PrepareStmt: true, CreateBatchSize: batchSize})

	p := &Persistence{Config: config, DB: db}
	if err = p.initialize(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Persistence) initialize() error {
	if err := p.DB.AutoMigrate(&CrossoverRecord{}); err != nil {
		return fmt.Errorf("Failed to migrate crossover records: %w", err)
	}
	return nil
}

func (p *Persistence) Shutdown() error {
	sqldb, err := p.DB.DB()
	if err != nil {
		return fmt.Errorf("Failed to retrieve raw DB: %w", err)
	}
	return sqldb.Close()
}

func (p *Persistence) SaveRecords(records []*CrossoverRecord) error {
	if len(records) == 0 {
		return nil
	}

	batchSize := p.Config.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	if result := p.DB.CreateInBatches(records, batchSize); result.Error != nil {
		return fmt.Errorf("Failed to call gorm.CreateInBatches(): %w", result.Error)
	}

	Logger.WithFields(logrus.Fields{
		"records": len(records),
		"db":      p.Config.Name,
	}).Debug("Saved crossover records")
	return nil
}

func (p *Persistence) LoadRecord(id string) (*CrossoverRecord, error) {
	var record CrossoverRecord
	result := p.DB.Where("uuid = ?", id).Limit(1).Find(&record)
	if result.Error != nil {
		return nil, fmt.Errorf("Failed to load crossover record %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
	}
	return &record, nil
}

// ListRecords returns the newest records first.
func (p *Persistence) ListRecords(limit int) ([]*CrossoverRecord, error) {
	if limit <= 0 {
		limit = DefaultRecordListLimit
	}
	var records []*CrossoverRecord
	if result := p.DB.Order("id desc").Limit(limit).Find(&records); result.Error != nil {
		return nil, fmt.Errorf("Failed to list crossover records: %w", result.Error)
	}
	return records, nil
}

func (p *Persistence) CountRecords() (uint, error) {
	var count int64
	if result := p.DB.Model(&CrossoverRecord{}).Count(&count); result.Error != nil {
		return 0, fmt.Errorf("Failed to count crossover records: %w", result.Error)
	}
	return uint(count), nil
}
