package repository

import (
	"pretexta_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB    *gorm.DB
	Cache *ContentCache
}

func NewQuizRepository(db *gorm.DB, cache *ContentCache) *QuizRepository {
	return &QuizRepository{DB: db, Cache: cache}
}

func (r *QuizRepository) FindAll(limit int) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	if r.Cache.Get(cacheKeyQuizzes, &quizzes) {
		return quizzes, nil
	}

	err := r.DB.Order("created_at asc").Limit(limit).Find(&quizzes).Error
	if err != nil {
		return nil, err
	}
	r.Cache.Set(cacheKeyQuizzes, quizzes)
	return quizzes, nil
}

func (r *QuizRepository) FindByID(id string) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.DB.Where("id = ?", id).First(&quiz).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *QuizRepository) Create(quiz *model.Quiz) error {
	if err := r.DB.Create(quiz).Error; err != nil {
		return err
	}
	r.Cache.Invalidate(cacheKeyQuizzes)
	return nil
}
