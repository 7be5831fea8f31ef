package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/altamirahr/hris-service/internal/models"
)

// RunBackup dumps the database to the backup directory via pg_dump and
// records the run. Failed runs are recorded too so the dashboard shows them.
func (s *Service) RunBackup(createdBy string) (*models.Backup, error) {
	if err := os.MkdirAll(s.config.BackupDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create backup dir: %w", err)
	}

	filename := fmt.Sprintf("hris-%s-%s.sql",
		time.Now().Format("20060102-150405"), uuid.NewString()[:8])
	path := filepath.Join(s.config.BackupDir, filename)

	backup := &models.Backup{
		Filename:  filename,
		Status:    models.BackupStatusCompleted,
		CreatedBy: createdBy,
	}

	cmd := exec.Command(s.config.PGDumpPath, "--dbname="+s.config.DBConn, "--file="+path)
	if out, err := cmd.CombinedOutput(); err != nil {
		s.log.Errorf("pg_dump failed: %v: %s", err, out)
		backup.Status = models.BackupStatusFailed
		if recErr := s.repo.CreateBackup(backup); recErr != nil {
			return nil, recErr
		}
		return backup, fmt.Errorf("pg_dump failed: %w", err)
	}

	size, checksum, err := fileDigest(path)
	if err != nil {
		return nil, err
	}
	backup.SizeBytes = size
	backup.Checksum = checksum

	if err := s.repo.CreateBackup(backup); err != nil {
		return nil, err
	}
	s.log.Infof("Backup completed: %s (%d bytes)", filename, size)
	return backup, nil
}

func fileDigest(path string) (int64, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, "", fmt.Errorf("failed to open backup file: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	size, err := io.Copy(h, f)
	if err != nil {
		return 0, "", fmt.Errorf("failed to hash backup file: %w", err)
	}
	return size, hex.EncodeToString(h.Sum(nil)), nil
}

// ListBackups retrieves all backup records
func (s *Service) ListBackups() ([]*models.Backup, error) {
	return s.repo.ListBackups()
}

// DeleteBackup removes a backup record and its file. A missing file is not
// an error; the record still goes away.
func (s *Service) DeleteBackup(id int64) error {
	backup, err := s.repo.FindBackupByID(id)
	if err != nil {
		return err
	}
	path := filepath.Join(s.config.BackupDir, backup.Filename)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove backup file: %w", err)
	}
	return s.repo.DeleteBackup(id)
}

// ScheduledBackup is the cron entry point for nightly backups
func (s *Service) ScheduledBackup() {
	if _, err := s.RunBackup("scheduler"); err != nil {
		s.log.Errorf("Scheduled backup failed: %v", err)
	}
}
