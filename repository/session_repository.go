package repository

import (
	"github.com/meghk47/FindWorker/entity"

	"gorm.io/gorm"
)

// SessionRepository talks to the sessions table only.
type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(sess *entity.Session) error {
	return r.DB.Create(sess).Error
}

func (r *SessionRepository) FindByToken(token string) (*entity.Session, error) {
	var sess entity.Session
	if err := r.DB.Where("token = ?", token).First(&sess).Error; err != nil {
		return nil, err
	}
	return &sess, nil
}

func (r *SessionRepository) Save(sess *entity.Session) error {
	return r.DB.Save(sess).Error
}

func (r *SessionRepository) DeleteByToken(token string) error {
	return r.DB.Where("token = ?", token).Delete(&entity.Session{}).Error
}
