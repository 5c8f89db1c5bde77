package store

import (
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// document è l'unica tabella: un archivio chiave/valore di documenti JSON,
// uno per collezione. Ogni salvataggio riscrive il documento per intero.
type document struct {
	Key string `gorm:"primaryKey;size:64"`
	Doc string `gorm:"type:text"`
}

func (document) TableName() string { return "documents" }

// KV è l'adapter di persistenza: carica e salva documenti JSON con nome.
type KV struct {
	db *gorm.DB
}

// OpenKV apre l'archivio documenti. Il DSN sceglie il driver: un DSN postgres
// (URL o lista chiave=valore) usa postgres, qualsiasi altra cosa è trattata
// come percorso di un file sqlite.
func OpenKV(dsn string) (*KV, error) {
	dial := dialectorFor(dsn)

	var db *gorm.DB
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		db, err = gorm.Open(dial, &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if err == nil {
			break
		}
		log.Printf("failed to connect to store (attempt %d/%d): %v", i, maxAttempts, err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&document{}); err != nil {
		return nil, err
	}
	return &KV{db: db}, nil
}

func dialectorFor(dsn string) gorm.Dialector {
	lower := strings.ToLower(dsn)
	if strings.HasPrefix(lower, "postgres://") ||
		strings.HasPrefix(lower, "postgresql://") ||
		strings.Contains(lower, "host=") {
		return postgres.Open(dsn)
	}
	return sqlite.Open(dsn)
}

// Load restituisce il documento salvato sotto key, o absent=false se non esiste.
// Il contenuto viene restituito così com'è, senza alcuna validazione di schema.
func (k *KV) Load(key string) (json.RawMessage, bool, error) {
	var d document
	err := k.db.First(&d, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return json.RawMessage(d.Doc), true, nil
}

// Save riscrive per intero il documento sotto key.
func (k *KV) Save(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return k.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"doc"}),
	}).Create(&document{Key: key, Doc: string(raw)}).Error
}
