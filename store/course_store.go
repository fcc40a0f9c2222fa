package store

import (
	"studio/models"

	"gorm.io/gorm"
)

type CourseStore struct{ db *gorm.DB }

func NewCourseStore(db *gorm.DB) *CourseStore { return &CourseStore{db: db} }

// Create inserts a course record.
func (s *CourseStore) Create(course *models.Course) error {
	return s.db.Create(course).Error
}

// Published returns every course that is not in the moderation queue.
// Anything other than "pending" counts as published, whatever string an
// admin happened to write.
func (s *CourseStore) Published() ([]models.Course, error) {
	var courses []models.Course
	err := s.db.Where("status <> ?", models.StatusPending).Find(&courses).Error
	return courses, err
}

// ByInstructor filters by instructor email; an empty email returns all.
func (s *CourseStore) ByInstructor(email string) ([]models.Course, error) {
	var courses []models.Course
	db := s.db
	if email != "" {
		db = db.Where("instructor_email = ?", email)
	}
	err := db.Find(&courses).Error
	return courses, err
}

// ByStatus returns courses with the given moderation status.
func (s *CourseStore) ByStatus(status string) ([]models.Course, error) {
	var courses []models.Course
	err := s.db.Where("status = ?", status).Find(&courses).Error
	return courses, err
}

// SetStatus writes the status verbatim and reports matched rows. No value
// validation: the moderation endpoint accepts any string.
func (s *CourseStore) SetStatus(id uint, status string) (int64, error) {
	res := s.db.Model(&models.Course{}).Where("id = ?", id).Update("status", status)
	return res.RowsAffected, res.Error
}

// ReserveSeat decrements the seat counter and increments the enrolled
// counter in one conditional update. Zero rows affected means the course is
// missing or sold out; the single-row update is the only atomicity the
// enrollment transaction relies on.
func (s *CourseStore) ReserveSeat(id uint) (int64, error) {
	res := s.db.Model(&models.Course{}).
		Where("id = ? AND seats > 0", id).
		Updates(map[string]interface{}{
			"seats":    gorm.Expr("seats - 1"),
			"enrolled": gorm.Expr("enrolled + 1"),
		})
	return res.RowsAffected, res.Error
}
