package repository

import (
	"pretexta_backend/internal/model"

	"gorm.io/gorm"
)

type ChallengeRepository struct {
	DB    *gorm.DB
	Cache *ContentCache
}

func NewChallengeRepository(db *gorm.DB, cache *ContentCache) *ChallengeRepository {
	return &ChallengeRepository{DB: db, Cache: cache}
}

func (r *ChallengeRepository) FindAll(limit int) ([]model.Challenge, error) {
	var challenges []model.Challenge
	if r.Cache.Get(cacheKeyChallenges, &challenges) {
		return challenges, nil
	}

	err := r.DB.Order("created_at asc").Limit(limit).Find(&challenges).Error
	if err != nil {
		return nil, err
	}
	r.Cache.Set(cacheKeyChallenges, challenges)
	return challenges, nil
}

func (r *ChallengeRepository) FindByID(id string) (*model.Challenge, error) {
	var challenge model.Challenge
	if err := r.DB.Where("id = ?", id).First(&challenge).Error; err != nil {
		return nil, err
	}
	return &challenge, nil
}

func (r *ChallengeRepository) Create(challenge *model.Challenge) error {
	if err := r.DB.Create(challenge).Error; err != nil {
		return err
	}
	r.Cache.Invalidate(cacheKeyChallenges)
	return nil
}
