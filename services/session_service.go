package services

import (
	"errors"

	"github.com/meghk47/FindWorker/entity"
	"github.com/meghk47/FindWorker/repository"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrUnknownLanguage = errors.New("unknown language")
	ErrUnknownView     = errors.New("unknown view")
)

// The three locales the original app offers. Only English screens
// actually exist; the choice is stored and never consulted again.
var languages = []string{"English", "Hindi", "Marathi"}

var views = []string{
	entity.ViewLanguageSelect,
	entity.ViewCustomerDashboard,
	entity.ViewAdminDashboard,
}

// SessionService owns the per-login navigation state. It replaces the
// desktop controller's ambient globals with an explicit record.
type SessionService struct {
	sessionRepo *repository.SessionRepository
}

func NewSessionService(repo *repository.SessionRepository) *SessionService {
	return &SessionService{sessionRepo: repo}
}

// Open starts a session for a freshly logged-in user. Admins land on
// the admin dashboard directly; everyone else goes through language
// selection first.
func (s *SessionService) Open(user *entity.User) (*entity.Session, error) {
	view := entity.ViewLanguageSelect
	if user.Role == "admin" {
		view = entity.ViewAdminDashboard
	}

	sess := &entity.Session{
		Token:       uuid.New().String(),
		Username:    user.Username,
		Role:        user.Role,
		Language:    "English",
		CurrentView: view,
	}
	if err := s.sessionRepo.Create(sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *SessionService) Get(token string) (*entity.Session, error) {
	sess, err := s.sessionRepo.FindByToken(token)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// SetLanguage stores the chosen language and moves the session to the
// customer dashboard.
func (s *SessionService) SetLanguage(token, language string) (*entity.Session, error) {
	valid := false
	for _, l := range languages {
		if l == language {
			valid = true
			break
		}
	}
	if !valid {
		return nil, ErrUnknownLanguage
	}

	sess, err := s.Get(token)
	if err != nil {
		return nil, err
	}
	sess.Language = language
	sess.CurrentView = entity.ViewCustomerDashboard
	if err := s.sessionRepo.Save(sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// SwitchView is the only navigation primitive: it overwrites the
// current view, with no back stack.
func (s *SessionService) SwitchView(token, view string) (*entity.Session, error) {
	valid := false
	for _, v := range views {
		if v == view {
			valid = true
			break
		}
	}
	if !valid {
		return nil, ErrUnknownView
	}

	sess, err := s.Get(token)
	if err != nil {
		return nil, err
	}
	sess.CurrentView = view
	if err := s.sessionRepo.Save(sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *SessionService) Close(token string) error {
	return s.sessionRepo.DeleteByToken(token)
}
