package repositories

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pn-nangabulik-backend/models"
)

type SurveyRepository struct {
	DB *gorm.DB
}

func NewSurveyRepository(DB *gorm.DB) *SurveyRepository {
	return &SurveyRepository{DB: DB}
}

func (r *SurveyRepository) GetAll(year int) ([]models.Survey, error) {
	var surveys []models.Survey
	q := r.DB.Order("year desc, category asc, quarter asc")
	if year != 0 {
		q = q.Where("year = ?", year)
	}
	err := q.Find(&surveys).Error
	return surveys, err
}

// Upsert berdasar kunci gabungan (year, category, quarter)
func (r *SurveyRepository) Upsert(survey *models.Survey) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "year"}, {Name: "category"}, {Name: "quarter"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"percentage": survey.Percentage,
			"report_url": survey.ReportURL,
			"updated_at": time.Now(),
		}),
	}).Create(survey).Error
}

func (r *SurveyRepository) Delete(id uint) error {
	var survey models.Survey
	if err := r.DB.First(&survey, id).Error; err != nil {
		return err
	}
	return r.DB.Delete(&models.Survey{}, id).Error
}
