package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"socialpulse/internal/repository"
)

type ExportService interface {
	Export(ctx context.Context, userID int64, format string) (data []byte, contentType string, err error)
}

type exportService struct {
	pr      repository.PostRepository
	storage *StorageService
}

func NewExportService(pr repository.PostRepository, storage *StorageService) ExportService {
	return &exportService{pr: pr, storage: storage}
}

func (s *exportService) Export(ctx context.Context, userID int64, format string) ([]byte, string, error) {
	posts, err := s.pr.ListAllByUserID(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	var data []byte
	var contentType, ext string

	switch format {
	case "csv":
		var buf bytes.Buffer
		w := csv.NewWriter(&buf)
		w.Write([]string{"ID", "Content", "Likes", "Comments", "Shares", "Date"})
		for _, p := range posts {
			content := p.Content
			if len(content) > 50 {
				content = content[:50]
			}
			w.Write([]string{
				strconv.FormatInt(p.ID, 10),
				content,
				strconv.Itoa(p.Likes),
				strconv.Itoa(p.Comments),
				strconv.Itoa(p.Shares),
				p.PostDate.Format(time.RFC3339),
			})
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, "", err
		}
		data, contentType, ext = buf.Bytes(), "text/csv", "csv"

	default:
		payload := map[string]any{
			"posts":       posts,
			"exported_at": time.Now(),
		}
		data, err = json.Marshal(payload)
		if err != nil {
			return nil, "", err
		}
		contentType, ext = "application/json", "json"
	}

	// Best effort: a storage failure must not fail the download itself.
	if s.storage != nil && s.storage.Enabled() {
		key := fmt.Sprintf("exports/%d/%s.%s", userID, uuid.NewString(), ext)
		if err := s.storage.Upload(ctx, key, data, contentType); err != nil {
			slog.Info(err.Error())
		}
	}

	return data, contentType, nil
}
