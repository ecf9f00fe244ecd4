package service

import (
	"errors"
	"pretexta_backend/internal/model"
	"pretexta_backend/internal/util"

	"gorm.io/gorm"
)

const contentListLimit = 1000

// ContentService serves the challenge and quiz libraries.
type ContentService struct {
	Challenges ChallengeStore
	Quizzes    QuizStore
}

func NewContentService(challenges ChallengeStore, quizzes QuizStore) *ContentService {
	return &ContentService{
		Challenges: challenges,
		Quizzes:    quizzes,
	}
}

func (s *ContentService) ListChallenges() ([]model.Challenge, error) {
	challenges, err := s.Challenges.FindAll(contentListLimit)
	if err != nil {
		return nil, err
	}
	if challenges == nil {
		challenges = []model.Challenge{}
	}
	return challenges, nil
}

func (s *ContentService) GetChallenge(id string) (*model.Challenge, error) {
	challenge, err := s.Challenges.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrChallengeNotFound
	}
	return challenge, err
}

func (s *ContentService) CreateChallenge(challenge *model.Challenge) error {
	return s.Challenges.Create(challenge)
}

func (s *ContentService) ListQuizzes() ([]model.Quiz, error) {
	quizzes, err := s.Quizzes.FindAll(contentListLimit)
	if err != nil {
		return nil, err
	}
	if quizzes == nil {
		quizzes = []model.Quiz{}
	}
	return quizzes, nil
}

func (s *ContentService) GetQuiz(id string) (*model.Quiz, error) {
	quiz, err := s.Quizzes.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuizNotFound
	}
	return quiz, err
}

func (s *ContentService) CreateQuiz(quiz *model.Quiz) error {
	return s.Quizzes.Create(quiz)
}
