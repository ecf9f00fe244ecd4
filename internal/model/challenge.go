package model

import (
	"gorm.io/datatypes"
)

// Challenge is a branching social engineering scenario. Nodes and localized
// content are free-form documents.
type Challenge struct {
	Document
	Title              string                      `gorm:"size:255;not null" json:"title" binding:"required"`
	Description        string                      `gorm:"type:text" json:"description" binding:"required"`
	Difficulty         string                      `gorm:"size:32" json:"difficulty" binding:"required"`
	CialdiniCategories datatypes.JSONSlice[string] `json:"cialdini_categories" binding:"required"`
	EstimatedTime      int                         `json:"estimated_time"`
	Nodes              datatypes.JSON              `json:"nodes" binding:"required"`
	Metadata           datatypes.JSONMap           `json:"metadata"`
	ContentEN          datatypes.JSONMap           `gorm:"column:content_en" json:"content_en,omitempty"`
	ContentID          datatypes.JSONMap           `gorm:"column:content_id" json:"content_id,omitempty"`
}

func (Challenge) TableName() string {
	return "challenges"
}

type Quiz struct {
	Document
	Title              string                      `gorm:"size:255;not null" json:"title" binding:"required"`
	Description        string                      `gorm:"type:text" json:"description" binding:"required"`
	Difficulty         string                      `gorm:"size:32" json:"difficulty" binding:"required"`
	CialdiniCategories datatypes.JSONSlice[string] `json:"cialdini_categories" binding:"required"`
	Questions          datatypes.JSON              `json:"questions" binding:"required"`
	ContentEN          datatypes.JSONMap           `gorm:"column:content_en" json:"content_en,omitempty"`
	ContentID          datatypes.JSONMap           `gorm:"column:content_id" json:"content_id,omitempty"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
