package store

import (
	"studio/models"

	"gorm.io/gorm"
)

type CartStore struct{ db *gorm.DB }

func NewCartStore(db *gorm.DB) *CartStore { return &CartStore{db: db} }

// Add inserts a cart line.
func (s *CartStore) Add(item *models.CartItem) error {
	return s.db.Create(item).Error
}

// ForEmail returns the caller's cart lines.
func (s *CartStore) ForEmail(email string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := s.db.Where("email = ?", email).Find(&items).Error
	return items, err
}

// FindByID fetches a single cart line.
func (s *CartStore) FindByID(id uint) (models.CartItem, error) {
	var item models.CartItem
	err := s.db.First(&item, id).Error
	return item, err
}

// Delete removes one cart line by id and reports deleted rows.
func (s *CartStore) Delete(id uint) (int64, error) {
	res := s.db.Delete(&models.CartItem{}, id)
	return res.RowsAffected, res.Error
}

// DeleteByIDs removes every cart line whose id is in the purchased list.
func (s *CartStore) DeleteByIDs(ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := s.db.Where("id IN ?", ids).Delete(&models.CartItem{})
	return res.RowsAffected, res.Error
}

// CountByCourse groups live cart lines by course id. GET /courses uses this
// as its enrollment figure: it measures pre-purchase cart activity, not paid
// enrollment. Known metric-accuracy issue, kept as the original reports it.
func (s *CartStore) CountByCourse() (map[uint]int64, error) {
	var rows []struct {
		CourseID uint
		Total    int64
	}
	err := s.db.Model(&models.CartItem{}).
		Select("course_id, count(*) as total").
		Group("course_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.CourseID] = row.Total
	}
	return counts, nil
}
