package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/models"
)

func TestClientServices_NotesFollowSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	notesGW := mock.NewMockNotesGateway(ctrl)
	authGW := mock.NewMockAuthGateway(ctrl)

	var onChange func(models.AuthEvent, *models.Session)
	unsubscribed := false
	authGW.EXPECT().GetSession(gomock.Any()).Return(signedIn("u1"), nil)
	authGW.EXPECT().Subscribe(gomock.Any()).DoAndReturn(func(fn func(models.AuthEvent, *models.Session)) func() {
		onChange = fn
		return func() { unsubscribed = true }
	})

	services := NewClientServices(notesGW, authGW, testRedirect, nil, logger.Nop())
	require.NoError(t, services.AuthService.Activate(context.Background()))

	owner := "u1"
	notesGW.EXPECT().List(gomock.Any(), models.ListOptions{Owner: &owner}).Return([]models.Note{note("1", "A", t0)}, nil)
	require.True(t, services.NotesService.Refresh(context.Background()))
	require.Len(t, services.NotesService.Snapshot().Notes, 1)

	// signing out drops the previous owner's notes
	onChange(models.AuthEventSignedOut, nil)
	assert.Empty(t, services.NotesService.Snapshot().Notes)

	notesGW.EXPECT().List(gomock.Any(), models.ListOptions{}).Return([]models.Note{}, nil)
	require.True(t, services.NotesService.Refresh(context.Background()))

	services.Close()
	assert.True(t, unsubscribed)
}
