package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/renato0307/sitegrab/internal/domain"
	"github.com/renato0307/sitegrab/internal/logging"
	"github.com/renato0307/sitegrab/internal/ports"
	"github.com/renato0307/sitegrab/paths"
)

// MemoryDSN selects a private in-memory database: state survives UI reloads
// but not a process restart
const MemoryDSN = ""

// SQLiteRepository implements ports.CaptureStateRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.CaptureStateRepository = (*SQLiteRepository)(nil)

// gormLogger wraps the sitegrab logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("SITEGRAB_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens the capture state database. An empty dbPath
// (MemoryDSN) uses an in-memory database; anything else is a file path.
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	dsn := fmt.Sprintf("file:sitegrab-%s?mode=memory&cache=shared", uuid.New().String())
	inMemory := dbPath == MemoryDSN
	if !inMemory {
		dsn = paths.ExpandPath(dbPath)

		// Ensure directory exists
		if err := os.MkdirAll(filepath.Dir(dsn), 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if !inMemory {
		// Enable WAL mode for concurrent access
		db.Exec("PRAGMA journal_mode=WAL")
		db.Exec("PRAGMA synchronous=NORMAL")
	}
	db.Exec("PRAGMA busy_timeout=5000")

	if err := db.AutoMigrate(&CaptureStateModel{}); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			return nil, fmt.Errorf("failed to migrate capture state schema: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	// A single connection serializes writers and keeps an in-memory database alive
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	logging.Logger.Debug("Capture state database opened", "in_memory", inMemory, "path", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Load implements CaptureStateReader.Load. An empty database reports an inactive capture.
func (r *SQLiteRepository) Load(ctx context.Context) (*domain.CaptureStatus, error) {
	var model CaptureStateModel
	err := r.db.WithContext(ctx).First(&model, captureStateID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &domain.CaptureStatus{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load capture state: %w", err)
	}
	return captureStateModelToDomain(model), nil
}

// SetActive implements CaptureStateWriter.SetActive
func (r *SQLiteRepository) SetActive(ctx context.Context, active bool, sessionID, baseURL string) error {
	model := CaptureStateModel{
		Active:    active,
		BaseURL:   baseURL,
		ID:        captureStateID,
		SessionID: sessionID,
	}
	return withRetry(func() error {
		err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"active", "base_url", "session_id", "updated_at"}),
		}).Create(&model).Error
		if err != nil {
			return fmt.Errorf("failed to save capture state: %w", err)
		}
		return nil
	}, 3)
}

// SetFileCount implements CaptureStateWriter.SetFileCount
func (r *SQLiteRepository) SetFileCount(ctx context.Context, count int) error {
	if count < 0 {
		return fmt.Errorf("file count must not be negative: %d", count)
	}
	model := CaptureStateModel{
		FileCount: count,
		ID:        captureStateID,
	}
	return withRetry(func() error {
		err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"file_count", "updated_at"}),
		}).Create(&model).Error
		if err != nil {
			return fmt.Errorf("failed to save file count: %w", err)
		}
		return nil
	}, 3)
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
