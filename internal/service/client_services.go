package service

import (
	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// ClientServices groups the client services. The notes service follows the
// auth session: every session change updates its owner scope.
type ClientServices struct {
	NotesService ClientNotesService
	AuthService  ClientAuthService
	RefreshJob   ClientSessionRefreshJob

	unfollow func()
}

func NewClientServices(notes adapter.NotesGateway, auth adapter.AuthGateway, redirectTo string, providers []string, log *logger.Logger) *ClientServices {
	notesSvc := NewClientNotesService(notes, log)
	authSvc := NewClientAuthService(auth, redirectTo, providers, log)

	unfollow := authSvc.Subscribe(func(session *models.Session) {
		notesSvc.SetOwner(session.UserID())
	})

	return &ClientServices{
		NotesService: notesSvc,
		AuthService:  authSvc,
		RefreshJob:   NewClientSessionRefreshJob(authSvc, log),
		unfollow:     unfollow,
	}
}

// Close stops the refresh job and releases every subscription.
func (s *ClientServices) Close() {
	s.RefreshJob.Stop()
	if s.unfollow != nil {
		s.unfollow()
		s.unfollow = nil
	}
	s.AuthService.Close()
}
