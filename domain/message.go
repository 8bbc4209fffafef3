// Messages are modelled only as far as the transfer engine touches them:
// the media locators a download needs, and the pending file list an upload
// consumes.
package domain

import (
	"time"
)

type FolderID int64

// Media is the slice of a message the engine cares about: the remote
// locators of one attached file.
type Media struct {
	ID            FileID
	Size          int64
	DCID          int
	AccessHash    int64
	FileReference []byte
	FileType      string
}

// Message is an entry of a folder's history or of the outgoing queue.
type Message struct {
	ID     string
	Folder FolderID

	// Media is the primary attachment; Extras holds secondary media such as
	// a grouped album or a link preview document.
	Media  *Media
	Extras []Media

	// Files are the attachments still pending upload on an outgoing message.
	Files []InputFile

	// ParentID and Position form the positional marker of a sent-file
	// placeholder message.
	ParentID string
	Position int

	CreatedAt time.Time
}

// FindMedia scans the primary media first, then the secondary media.
func (m Message) FindMedia(id FileID) (Media, bool) {
	if m.Media != nil && m.Media.ID == id {
		return *m.Media, true
	}
	for _, extra := range m.Extras {
		if extra.ID == id {
			return extra, true
		}
	}
	return Media{}, false
}

// HasFile reports whether the outgoing message still references key.
func (m Message) HasFile(key FileKey) bool {
	for _, f := range m.Files {
		if f.Key == key {
			return true
		}
	}
	return false
}
