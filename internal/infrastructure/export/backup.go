package export

import (
	"encoding/json"
	"fmt"
	"time"

	"invtrack/internal/domain/inventory"
)

const JSONType = "application/json"

// Backup - полный снимок базы: комнаты с устройствами, сотрудники, категории
type Backup struct {
	CreatedAt time.Time        `json:"created_at"`
	Report    inventory.Report `json:"report"`
}

// BackupFileName возвращает backup_<yyyymmdd_hhmmss>.json
func BackupFileName(now time.Time) string {
	return fmt.Sprintf("backup_%s.json", now.Format("20060102_150405"))
}

func BuildBackupJSON(report inventory.Report, now time.Time) ([]byte, error) {
	data, err := json.MarshalIndent(Backup{CreatedAt: now.UTC(), Report: report}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode backup: %w", err)
	}
	return data, nil
}
