package repository

import (
	"pretexta_backend/internal/model"

	"gorm.io/gorm"
)

type SimulationRepository struct {
	DB *gorm.DB
}

func NewSimulationRepository(db *gorm.DB) *SimulationRepository {
	return &SimulationRepository{DB: db}
}

func (r *SimulationRepository) Create(sim *model.Simulation) error {
	return r.DB.Create(sim).Error
}

// FindRecent returns the newest simulations first.
func (r *SimulationRepository) FindRecent(limit int) ([]model.Simulation, error) {
	var sims []model.Simulation
	err := r.DB.Order("started_at desc").Limit(limit).Find(&sims).Error
	return sims, err
}

func (r *SimulationRepository) FindByID(id string) (*model.Simulation, error) {
	var sim model.Simulation
	if err := r.DB.Where("id = ?", id).First(&sim).Error; err != nil {
		return nil, err
	}
	return &sim, nil
}

// Update applies column updates to an existing simulation. Matching is checked
// separately because MySQL reports unchanged rows as unaffected.
func (r *SimulationRepository) Update(id string, updates map[string]interface{}) error {
	var count int64
	if err := r.DB.Model(&model.Simulation{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	if len(updates) == 0 {
		return nil
	}
	return r.DB.Model(&model.Simulation{}).Where("id = ?", id).Updates(updates).Error
}

func (r *SimulationRepository) Delete(id string) error {
	result := r.DB.Where("id = ?", id).Delete(&model.Simulation{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
