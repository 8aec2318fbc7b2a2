package store

import (
	"bytes"

	"github.com/jinzhu/gorm"
	log "github.com/sirupsen/logrus"

	"github.com/outbreaklab/casecount-api/pipeline"
	"github.com/outbreaklab/casecount-api/schema"
)

const historyLogPrefix = "history"

// HistoryCore - the exported wide data table, one generation at a time
type HistoryCore interface {
	Ping() error
	ReplaceDataTable(rows []schema.DataTableRow) error
	GetDataTable() ([]schema.DataTableRow, error)
	IsNewData(rows []schema.DataTableRow) (bool, error)
}

// HistoryStore is an implementation of HistoryCore on postgres
type HistoryStore struct {
	ormDB *gorm.DB
}

func NewHistoryStore(ormDB *gorm.DB) *HistoryStore {
	return &HistoryStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *HistoryStore) Ping() error {
	return s.ormDB.DB().Ping()
}

// Migrate creates the data table if it does not exist yet.
func (s *HistoryStore) Migrate() error {
	return s.ormDB.AutoMigrate(&schema.DataTableRow{}).Error
}

// ReplaceDataTable swaps in a new generation of the table atomically.
func (s *HistoryStore) ReplaceDataTable(rows []schema.DataTableRow) error {
	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Delete(&schema.DataTableRow{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	for i := range rows {
		if err := tx.Create(&rows[i]).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}
	log.WithFields(log.Fields{"prefix": historyLogPrefix, "records": len(rows)}).Debug("replaced data table")
	return nil
}

// GetDataTable returns the stored table in its canonical order. Sorting
// happens here rather than in the query: a locale collation on the database
// side orders names with spaces differently from the byte-wise order the
// canonical CSV comparison assumes.
func (s *HistoryStore) GetDataTable() ([]schema.DataTableRow, error) {
	var rows []schema.DataTableRow
	if err := s.ormDB.Find(&rows).Error; err != nil {
		return nil, err
	}
	pipeline.SortDataTable(rows)
	return rows, nil
}

// IsNewData reports whether rows differ from the stored table. Tables are
// compared by their canonical CSV renderings; that sidesteps float round-trip
// and null-versus-empty questions a field-by-field comparison would raise.
func (s *HistoryStore) IsNewData(rows []schema.DataTableRow) (bool, error) {
	stored, err := s.GetDataTable()
	if err != nil {
		return false, err
	}

	storedCSV, err := pipeline.DataTableCSV(stored)
	if err != nil {
		return false, err
	}
	newCSV, err := pipeline.DataTableCSV(rows)
	if err != nil {
		return false, err
	}
	return !bytes.Equal(newCSV, storedCSV), nil
}
