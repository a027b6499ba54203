package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"

	"restopanel/internal/apierror"
	"restopanel/internal/datamode"
	"restopanel/internal/repository"
)

// uploadChunkSize is the granularity of remote upload progress reporting.
const uploadChunkSize = 256 * 1024

// mockStockImages are served round-robin when uploads run in mock mode.
var mockStockImages = []string{
	"https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=1200",
	"https://images.unsplash.com/photo-1414235077428-338989a2e8c0?w=1200",
	"https://images.unsplash.com/photo-1552566626-52f8b828add9?w=1200",
	"https://images.unsplash.com/photo-1559339352-11d035aa65de?w=1200",
}

// MockUploadTick paces the simulated progress ramp; tests shrink it.
var MockUploadTick = 150 * time.Millisecond

type StorageService interface {
	// UploadImage stores an image and returns its served URL. onProgress, if
	// non-nil, receives monotonically increasing percentages ending at 100.
	UploadImage(ctx context.Context, r io.Reader, filename string, size int64, onProgress func(percent int)) (string, error)
	// OpenImage streams a previously uploaded image by its ID. Only remote
	// uploads are served here; mock uploads resolve to external stock URLs.
	OpenImage(ctx context.Context, id string) (io.ReadCloser, string, error)
}

type storageService struct {
	repos    *repository.Store
	db       *mongo.Database // nil when remote is not configured
	mockSeqC chan uint32
}

func NewStorageService(repos *repository.Store, db *mongo.Database) StorageService {
	s := &storageService{repos: repos, db: db, mockSeqC: make(chan uint32, 1)}
	s.mockSeqC <- 0
	return s
}

func (s *storageService) UploadImage(ctx context.Context, r io.Reader, filename string, size int64, onProgress func(percent int)) (string, error) {
	if s.repos.Mode() == datamode.Remote {
		if s.db == nil {
			return "", apierror.NewBackendUnavailable("image upload requires a configured remote backend")
		}
		return s.uploadRemote(ctx, r, filename, size, onProgress)
	}
	return s.uploadMock(ctx, r, onProgress)
}

// uploadMock drains the stream and walks a fixed progress ramp so callers see
// the same upload lifecycle as in remote mode, then hands back a stock URL.
func (s *storageService) uploadMock(ctx context.Context, r io.Reader, onProgress func(int)) (string, error) {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", apierror.NewValidation("unreadable upload: " + err.Error())
	}
	for _, pct := range []int{15, 40, 65, 85, 100} {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(MockUploadTick):
		}
		if onProgress != nil {
			onProgress(pct)
		}
	}
	seq := <-s.mockSeqC
	s.mockSeqC <- seq + 1
	url := mockStockImages[int(seq)%len(mockStockImages)]
	log.Debug().Str("url", url).Msg("mock image upload resolved")
	return url, nil
}

func (s *storageService) uploadRemote(ctx context.Context, r io.Reader, filename string, size int64, onProgress func(int)) (string, error) {
	bucket, err := gridfs.NewBucket(s.db)
	if err != nil {
		return "", err
	}
	stream, err := bucket.OpenUploadStream(filename)
	if err != nil {
		return "", err
	}

	written := int64(0)
	lastPct := -1
	buf := make([]byte, uploadChunkSize)
	for {
		if err := ctx.Err(); err != nil {
			stream.Abort()
			return "", err
		}
		n, rerr := r.Read(buf)
		if n > 0 {
			if _, werr := stream.Write(buf[:n]); werr != nil {
				stream.Abort()
				return "", werr
			}
			written += int64(n)
			if onProgress != nil && size > 0 {
				pct := int(written * 100 / size)
				if pct > 100 {
					pct = 100
				}
				if pct > lastPct {
					lastPct = pct
					onProgress(pct)
				}
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			stream.Abort()
			return "", rerr
		}
	}
	if err := stream.Close(); err != nil {
		return "", err
	}
	if onProgress != nil && lastPct < 100 {
		onProgress(100)
	}

	fileID, ok := stream.FileID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected gridfs file id type %T", stream.FileID)
	}
	log.Info().Str("file_id", fileID.Hex()).Str("filename", filename).Int64("bytes", written).Msg("image uploaded")
	return "/v1/images/" + fileID.Hex(), nil
}

func (s *storageService) OpenImage(ctx context.Context, id string) (io.ReadCloser, string, error) {
	if s.db == nil {
		return nil, "", apierror.NewBackendUnavailable("image serving requires a configured remote backend")
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, "", apierror.NewNotFound("image", id)
	}
	bucket, err := gridfs.NewBucket(s.db)
	if err != nil {
		return nil, "", err
	}
	stream, err := bucket.OpenDownloadStream(oid)
	if err != nil {
		if err == gridfs.ErrFileNotFound {
			return nil, "", apierror.NewNotFound("image", id)
		}
		return nil, "", err
	}
	name := stream.GetFile().Name
	return stream, name, nil
}
