package texio

import (
	"fmt"
	"io"
	"os"
	"time"

	"latex-cleanup/internal/logger"
)

// CreateBackup copies the file at path to a timestamped sibling before it
// gets overwritten. Returns the backup path.
func CreateBackup(path string) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", fmt.Errorf("file does not exist: %s", path)
	}

	backupPath := path + ".backup_" + time.Now().Format("20060102_150405")
	if err := copyFile(path, backupPath); err != nil {
		return "", fmt.Errorf("failed to copy file: %w", err)
	}

	logger.Info("backup created", logger.String("backupPath", backupPath))
	return backupPath, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
