package repositories

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"media-lab/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func silentLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMessageStore_CreateMessageAssignsIdentity(t *testing.T) {
	req := require.New(t)
	store := NewMessageStore(nil, silentLogger())

	created := store.CreateMessage(1, domain.Message{})
	req.NotEmpty(created.ID)
	req.False(created.CreatedAt.IsZero())
	req.Equal(domain.FolderID(1), created.Folder)

	got, ok := store.GetMessage(1, created.ID)
	req.True(ok)
	req.Equal(created.ID, got.ID)

	// An explicit id is kept as-is.
	explicit := store.CreateMessage(1, domain.Message{ID: "m-1"})
	req.Equal("m-1", explicit.ID)
	req.Len(store.Messages(1), 2)
}

func TestMessageStore_SendingMessageLifecycle(t *testing.T) {
	req := require.New(t)
	store := NewMessageStore(nil, silentLogger())

	_, ok := store.GetSendingMessage(1)
	req.False(ok)

	store.SetSendingMessage(1, domain.Message{ID: "out-1", Files: []domain.InputFile{{Key: "1_10"}}})

	msg, ok := store.GetSendingMessage(1)
	req.True(ok)
	req.Equal("out-1", msg.ID)
	req.Equal(domain.FolderID(1), msg.Folder)

	// One pending message per folder, visible in the snapshot.
	store.SetSendingMessage(2, domain.Message{ID: "out-2"})
	req.Len(store.SendingMessages(), 2)

	store.DeleteSendingMessage(1)
	_, ok = store.GetSendingMessage(1)
	req.False(ok)
	req.Len(store.SendingMessages(), 1)
}

func TestMessageStore_ActiveFolder(t *testing.T) {
	req := require.New(t)
	store := NewMessageStore(nil, silentLogger())

	req.Equal(domain.FolderID(0), store.ActiveFolder())
	store.SetActiveFolder(7)
	req.Equal(domain.FolderID(7), store.ActiveFolder())
}

func TestMessageStore_RefreshMessage(t *testing.T) {
	req := require.New(t)

	// The refresh source hands back the message with a new file reference.
	refresh := func(_ context.Context, folder domain.FolderID, id string) (domain.Message, error) {
		return domain.Message{
			ID:     id,
			Folder: folder,
			Media:  &domain.Media{ID: 42, FileReference: []byte{0x02}},
		}, nil
	}
	store := NewMessageStore(refresh, silentLogger())
	store.CreateMessage(1, domain.Message{
		ID:    "m-1",
		Media: &domain.Media{ID: 42, FileReference: []byte{0x01}},
	})

	var continued bool
	req.NoError(store.RefreshMessage(context.Background(), 1, "m-1", func() { continued = true }))

	// The stored copy carries the refreshed reference and the continuation
	// ran after the replacement.
	req.True(continued)
	msg, ok := store.GetMessage(1, "m-1")
	req.True(ok)
	media, ok := msg.FindMedia(42)
	req.True(ok)
	req.Equal([]byte{0x02}, media.FileReference)
}

func TestMessageStore_RefreshMessageFailures(t *testing.T) {
	req := require.New(t)

	// No refresh source configured
	store := NewMessageStore(nil, silentLogger())
	req.Error(store.RefreshMessage(context.Background(), 1, "m-1", nil))

	// The source itself fails: stored copy untouched, no continuation
	failing := NewMessageStore(func(context.Context, domain.FolderID, string) (domain.Message, error) {
		return domain.Message{}, fmt.Errorf("gone")
	}, silentLogger())
	failing.CreateMessage(1, domain.Message{ID: "m-1", Media: &domain.Media{ID: 42, FileReference: []byte{0x01}}})

	var continued bool
	req.Error(failing.RefreshMessage(context.Background(), 1, "m-1", func() { continued = true }))
	req.False(continued)

	msg, _ := failing.GetMessage(1, "m-1")
	req.Equal([]byte{0x01}, msg.Media.FileReference)
}
