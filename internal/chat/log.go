package chat

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Log appends transcript lines to a per-run CSV file. Write failures are
// logged and swallowed: losing a log line must never break the chat.
type Log struct {
	file   *os.File
	writer *csv.Writer
	logger *zap.Logger
}

// OpenLog creates logs/chat_YYYYMMDD_HHMMSS.csv with a header row.
func OpenLog(dir string, now time.Time, logger *zap.Logger) (*Log, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, now.Format("chat_20060102_150405")+".csv")
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create session log: %w", err)
	}

	l := &Log{file: file, writer: csv.NewWriter(file), logger: logger}
	if err := l.writer.Write([]string{"time", "role", "text"}); err != nil {
		file.Close()
		return nil, fmt.Errorf("write log header: %w", err)
	}
	l.writer.Flush()

	logger.Info("session log opened", zap.String("path", path))
	return l, nil
}

// Append writes one transcript line and flushes.
func (l *Log) Append(m Message) {
	if err := l.writer.Write([]string{m.Time.Format(time.RFC3339), m.Role, m.Text}); err != nil {
		l.logger.Warn("session log write failed", zap.Error(err))
		return
	}
	l.writer.Flush()
	if err := l.writer.Error(); err != nil {
		l.logger.Warn("session log flush failed", zap.Error(err))
	}
}

func (l *Log) Close() error {
	l.writer.Flush()
	return l.file.Close()
}
