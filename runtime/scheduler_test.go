package runtime

import (
	"context"
	"io"
	"log/slog"
	"media-lab/domain"
	"media-lab/errors"
	"media-lab/infrastructure/storage"
	"media-lab/mocks"
	"sync"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func silentLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// setupPartStore initializes a temporary in-memory Badger instance.
func setupPartStore(t *testing.T) *storage.PartRepository {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return storage.NewPartRepository(db, silentLogger())
}

// startLanes runs every scheduler lane until the test ends.
func startLanes(t *testing.T, s *DownloadScheduler) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	for _, lane := range s.Lanes() {
		go func() { _ = lane.Run(ctx) }()
	}
}

func testDownloadRequest() domain.DownloadRequest {
	return domain.DownloadRequest{
		ID:            42,
		Size:          2_000_000,
		PartSize:      512_000,
		DCID:          2,
		AccessHash:    777,
		FileReference: []byte{0xAA},
		FileType:      "video/mp4",
		Folder:        1,
		MessageID:     "msg-1",
	}
}

// partBytes mirrors what the server would return for one range request:
// a full part, or the remainder for the final one.
func partBytes(req domain.PartRequest, size int64) []byte {
	remaining := size - req.OffsetSize
	if remaining > int64(req.PartSize) {
		remaining = int64(req.PartSize)
	}
	data := make([]byte, remaining)
	for i := range data {
		data[i] = byte(req.OffsetSize / int64(req.PartSize))
	}
	return data
}

func TestDownloadScheduler_RoundRobinAssignment(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := NewDownloadScheduler(
		NewTransferRegistry(), mocks.NewMockITransport(ctrl), setupPartStore(t),
		mocks.NewMockIReferenceRefresher(ctrl), 4, 8, 0, silentLogger(),
	)

	// 5 sequential requests over 4 lanes land on lanes 0,1,2,3,0 in that
	// order, regardless of how busy each lane is.
	var lanes []int
	for i := 0; i < 5; i++ {
		lanes = append(lanes, s.nextLane())
	}
	req.Equal([]int{0, 1, 2, 3, 0}, lanes)
}

func TestDownloadScheduler_DownloadsAllPartsAndAssembles(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := NewTransferRegistry()
	store := setupPartStore(t)
	transport := mocks.NewMockITransport(ctrl)
	refresher := mocks.NewMockIReferenceRefresher(ctrl)

	request := testDownloadRequest()

	var mu sync.Mutex
	var offsets []int64
	transport.EXPECT().
		DownloadFilePart(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r domain.PartRequest) ([]byte, error) {
			mu.Lock()
			offsets = append(offsets, r.OffsetSize)
			mu.Unlock()
			return partBytes(r, request.Size), nil
		}).
		Times(4)

	s := NewDownloadScheduler(registry, transport, store, refresher, 2, 8, 0, silentLogger())
	startLanes(t, s)

	key := s.Download(context.Background(), request)
	req.Equal(domain.NewFileKey(42, 2_000_000, ""), key)

	req.Eventually(func() bool {
		entry, ok := registry.GetDownloading(key)
		return ok && entry.Complete()
	}, 2*time.Second, 5*time.Millisecond)

	entry, _ := registry.GetDownloading(key)
	req.Equal(3, entry.LastPart)
	req.Equal(100, entry.Progress)
	req.False(entry.Downloading)

	// Parts were fetched strictly in order within the lane.
	mu.Lock()
	req.Equal([]int64{0, 512_000, 1_024_000, 1_536_000}, offsets)
	mu.Unlock()

	// The assembled blob carries all bytes in part order.
	blob, mime, err := store.ReadBlob(entry.BlobKey)
	req.NoError(err)
	req.Len(blob, 2_000_000)
	req.Equal(byte(0), blob[0])
	req.Equal(byte(3), blob[len(blob)-1])
	req.Equal("video/mp4", mime)
}

func TestDownloadScheduler_ResumesAfterTransientFailure(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := NewTransferRegistry()
	store := setupPartStore(t)
	transport := mocks.NewMockITransport(ctrl)
	refresher := mocks.NewMockIReferenceRefresher(ctrl)

	request := testDownloadRequest()

	// Scenario: 2,000,000 bytes in 512,000-byte parts -> 4 parts. Parts
	// 0..2 succeed, part 3 fails once, a second call resumes at part 3 only.
	var mu sync.Mutex
	counts := map[int64]int{}
	transport.EXPECT().
		DownloadFilePart(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r domain.PartRequest) ([]byte, error) {
			mu.Lock()
			counts[r.OffsetSize]++
			first := counts[r.OffsetSize] == 1
			mu.Unlock()
			if r.OffsetSize == 1_536_000 && first {
				return nil, errors.NewTransportError("INTERNAL_SERVER_ERROR")
			}
			return partBytes(r, request.Size), nil
		}).
		Times(5)

	s := NewDownloadScheduler(registry, transport, store, refresher, 2, 8, 0, silentLogger())
	startLanes(t, s)

	key := s.Download(context.Background(), request)

	// First run stops after the failure, with parts 0..2 banked.
	req.Eventually(func() bool {
		entry, ok := registry.GetDownloading(key)
		return ok && !entry.Downloading
	}, 2*time.Second, 5*time.Millisecond)

	entry, _ := registry.GetDownloading(key)
	req.Equal(2, entry.LastPart)
	req.False(entry.Complete())

	// Second explicit call resumes from part 3, never refetching 0..2.
	s.Download(context.Background(), request)

	req.Eventually(func() bool {
		entry, ok := registry.GetDownloading(key)
		return ok && entry.Complete()
	}, 2*time.Second, 5*time.Millisecond)

	mu.Lock()
	req.Equal(map[int64]int{0: 1, 512_000: 1, 1_024_000: 1, 1_536_000: 2}, counts)
	mu.Unlock()
}

func TestDownloadScheduler_PausesOnExpiredReference(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := NewTransferRegistry()
	transport := mocks.NewMockITransport(ctrl)
	refresher := mocks.NewMockIReferenceRefresher(ctrl)

	request := testDownloadRequest()

	// The one distinguished transport failure, on the very first part.
	transport.EXPECT().
		DownloadFilePart(gomock.Any(), gomock.Any()).
		Return(nil, errors.NewTransportError(errors.FileReferenceExpired)).
		Times(1)

	// The engine asks for the owning message to be refreshed, once, and
	// does not auto-resume.
	refresher.EXPECT().
		RefreshMessage(gomock.Any(), domain.FolderID(1), "msg-1", gomock.Nil()).
		Return(nil).
		Times(1)

	s := NewDownloadScheduler(registry, transport, setupPartStore(t), refresher, 2, 8, 0, silentLogger())
	startLanes(t, s)

	key := s.Download(context.Background(), request)

	req.Eventually(func() bool {
		entry, ok := registry.GetDownloading(key)
		return ok && !entry.Downloading
	}, 2*time.Second, 5*time.Millisecond)

	// lastPart is untouched; no further part request goes out.
	entry, _ := registry.GetDownloading(key)
	req.Equal(-1, entry.LastPart)
	req.False(entry.Complete())

	time.Sleep(50 * time.Millisecond)
}

func TestDownloadScheduler_CancelStopsBeforeNextPart(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := NewTransferRegistry()
	transport := mocks.NewMockITransport(ctrl)
	refresher := mocks.NewMockIReferenceRefresher(ctrl)

	request := testDownloadRequest()

	// The first fetch blocks until the test releases it, so the cancel
	// lands while the part is in flight.
	gate := make(chan struct{})
	transport.EXPECT().
		DownloadFilePart(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r domain.PartRequest) ([]byte, error) {
			<-gate
			return partBytes(r, request.Size), nil
		}).
		Times(1)

	s := NewDownloadScheduler(registry, transport, setupPartStore(t), refresher, 2, 8, 0, silentLogger())
	startLanes(t, s)

	key := s.Download(context.Background(), request)

	// Cancel while part 0 is in flight, then release it.
	s.Cancel(key)
	close(gate)

	// The in-flight part completes and is recorded; no further part is
	// fetched (the mock would fail on a second call).
	req.Eventually(func() bool {
		entry, ok := registry.GetDownloading(key)
		return ok && entry.LastPart == 0
	}, 2*time.Second, 5*time.Millisecond)

	time.Sleep(50 * time.Millisecond)

	entry, _ := registry.GetDownloading(key)
	req.False(entry.Downloading)
	req.False(entry.Complete())
}

func TestDownloadScheduler_NoOpWhenActiveOrComplete(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := NewTransferRegistry()
	transport := mocks.NewMockITransport(ctrl)
	refresher := mocks.NewMockIReferenceRefresher(ctrl)

	s := NewDownloadScheduler(registry, transport, setupPartStore(t), refresher, 4, 8, 0, silentLogger())
	startLanes(t, s)

	request := testDownloadRequest()

	// Given an entry already downloading
	registry.PutDownloading(domain.DownloadingFile{
		ID: request.ID, Size: request.Size, PartSize: request.PartSize,
		PartsCount: 4, LastPart: 0, Downloading: true,
	})
	s.Download(context.Background(), request)

	// And an entry already complete
	done := domain.DownloadingFile{
		ID: 7, Size: 100, PartSize: 100, PartsCount: 1, LastPart: 0,
		BlobKey: "blob:7_100",
	}
	registry.PutDownloading(done)
	s.Download(context.Background(), domain.DownloadRequest{
		ID: 7, Size: 100, PartSize: 100, DCID: 2,
	})

	// Then no task was queued and no transport call happened.
	req.Equal(0, s.next)
}

func TestDownloadScheduler_ConcurrencyNeverExceedsLaneCount(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := NewTransferRegistry()
	transport := mocks.NewMockITransport(ctrl)
	refresher := mocks.NewMockIReferenceRefresher(ctrl)

	const laneCount = 2

	var mu sync.Mutex
	inflight, maxInflight := 0, 0
	transport.EXPECT().
		DownloadFilePart(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r domain.PartRequest) ([]byte, error) {
			mu.Lock()
			inflight++
			if inflight > maxInflight {
				maxInflight = inflight
			}
			mu.Unlock()

			time.Sleep(20 * time.Millisecond)

			mu.Lock()
			inflight--
			mu.Unlock()
			return make([]byte, r.PartSize), nil
		}).
		Times(4)

	s := NewDownloadScheduler(registry, transport, setupPartStore(t), refresher, laneCount, 8, 0, silentLogger())
	startLanes(t, s)

	// 4 single-part files racing over 2 lanes.
	var keys []domain.FileKey
	for i := 1; i <= 4; i++ {
		keys = append(keys, s.Download(context.Background(), domain.DownloadRequest{
			ID: domain.FileID(i), Size: 1000, PartSize: 1000, DCID: 2,
		}))
	}

	req.Eventually(func() bool {
		for _, key := range keys {
			entry, ok := registry.GetDownloading(key)
			if !ok || !entry.Complete() {
				return false
			}
		}
		return true
	}, 2*time.Second, 5*time.Millisecond)

	mu.Lock()
	req.LessOrEqual(maxInflight, laneCount)
	mu.Unlock()
}

func TestDownloadScheduler_ResetForgetsEverything(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := NewTransferRegistry()
	store := setupPartStore(t)
	transport := mocks.NewMockITransport(ctrl)
	refresher := mocks.NewMockIReferenceRefresher(ctrl)

	request := domain.DownloadRequest{ID: 9, Size: 1000, PartSize: 1000, DCID: 2}
	transport.EXPECT().
		DownloadFilePart(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r domain.PartRequest) ([]byte, error) {
			return make([]byte, r.PartSize), nil
		}).
		Times(1)

	s := NewDownloadScheduler(registry, transport, store, refresher, 2, 8, 0, silentLogger())
	startLanes(t, s)

	key := s.Download(context.Background(), request)
	req.Eventually(func() bool {
		entry, ok := registry.GetDownloading(key)
		return ok && entry.Complete()
	}, 2*time.Second, 5*time.Millisecond)

	entry, _ := registry.GetDownloading(key)

	s.Reset(key)

	_, ok := registry.GetDownloading(key)
	req.False(ok)
	_, _, err := store.ReadBlob(entry.BlobKey)
	req.ErrorIs(err, errors.ErrBlobNotFound)
}
