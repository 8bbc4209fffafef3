// Package repositories holds the runtime message state the engine
// collaborates with: the per-folder outgoing queue and the folder history
// used for file reference recovery. All of it is in-memory and lost on
// restart; an interactive client rebuilds it from the server.
package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"media-lab/domain"
	"sync"
	"time"

	"github.com/google/uuid"
)

// RefreshFunc re-fetches one message from the remote service. The store
// replaces its copy with the result.
type RefreshFunc func(ctx context.Context, folder domain.FolderID, id string) (domain.Message, error)

// MessageStore implements the outbox, the message source and the reference
// refresher consumed by the transfer engine.
type MessageStore struct {
	mu      sync.RWMutex
	active  domain.FolderID
	sending map[domain.FolderID]domain.Message
	history map[domain.FolderID]map[string]domain.Message
	refresh RefreshFunc
	log     *slog.Logger
}

func NewMessageStore(refresh RefreshFunc, log *slog.Logger) *MessageStore {
	return &MessageStore{
		sending: make(map[domain.FolderID]domain.Message),
		history: make(map[domain.FolderID]map[string]domain.Message),
		refresh: refresh,
		log:     log,
	}
}

// CreateMessage appends a message to the folder history, assigning an id
// and timestamp when missing.
func (s *MessageStore) CreateMessage(folder domain.FolderID, msg domain.Message) domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	msg.Folder = folder

	if _, ok := s.history[folder]; !ok {
		s.history[folder] = make(map[string]domain.Message)
	}
	s.history[folder][msg.ID] = msg
	return msg
}

func (s *MessageStore) GetMessage(folder domain.FolderID, id string) (domain.Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	msg, ok := s.history[folder][id]
	return msg, ok
}

// Messages returns a snapshot of the folder history.
func (s *MessageStore) Messages(folder domain.FolderID) []domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	messages := make([]domain.Message, 0, len(s.history[folder]))
	for _, msg := range s.history[folder] {
		messages = append(messages, msg)
	}
	return messages
}

func (s *MessageStore) SetMessage(folder domain.FolderID, msg domain.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.history[folder]; !ok {
		s.history[folder] = make(map[string]domain.Message)
	}
	s.history[folder][msg.ID] = msg
}

func (s *MessageStore) ActiveFolder() domain.FolderID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *MessageStore) SetActiveFolder(folder domain.FolderID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = folder
}

func (s *MessageStore) GetSendingMessage(folder domain.FolderID) (domain.Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	msg, ok := s.sending[folder]
	return msg, ok
}

func (s *MessageStore) SetSendingMessage(folder domain.FolderID, msg domain.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg.Folder = folder
	s.sending[folder] = msg
}

func (s *MessageStore) DeleteSendingMessage(folder domain.FolderID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sending, folder)
}

func (s *MessageStore) SendingMessages() map[domain.FolderID]domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make(map[domain.FolderID]domain.Message, len(s.sending))
	for folder, msg := range s.sending {
		snapshot[folder] = msg
	}
	return snapshot
}

// RefreshMessage re-fetches the message and replaces the stored copy, then
// runs the continuation once the refreshed reference is available.
func (s *MessageStore) RefreshMessage(ctx context.Context, folder domain.FolderID, id string, onRefreshed func()) error {
	if s.refresh == nil {
		return fmt.Errorf("no refresh source configured")
	}

	msg, err := s.refresh(ctx, folder, id)
	if err != nil {
		return fmt.Errorf("refresh message %s: %w", id, err)
	}

	s.SetMessage(folder, msg)
	s.log.Debug("Message refreshed", "folder", folder, "message_id", id)

	if onRefreshed != nil {
		onRefreshed()
	}
	return nil
}
