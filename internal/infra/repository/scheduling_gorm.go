package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/studysched/tutor-scheduler/internal/domain/scheduling"
	"github.com/studysched/tutor-scheduler/internal/httperr"
	"github.com/studysched/tutor-scheduler/internal/models"
)

type SchedulingGormRepository struct {
	db *gorm.DB
}

func NewSchedulingGormRepository(db *gorm.DB) *SchedulingGormRepository {
	return &SchedulingGormRepository{db: db}
}

// --------------------------------------------------
// User
// --------------------------------------------------

func (r *SchedulingGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Course
// --------------------------------------------------

func (r *SchedulingGormRepository) GetCourseForTutor(
	ctx context.Context,
	courseID uint,
	tutorID uint,
) (*models.Course, error) {

	var course models.Course
	if err := r.db.WithContext(ctx).
		Where("id = ? AND tutor_id = ?", courseID, tutorID).
		First(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// --------------------------------------------------
// Availability blocks
// --------------------------------------------------

func (r *SchedulingGormRepository) ListBlocksForTutor(
	ctx context.Context,
	tutorID uint,
) ([]models.AvailabilityBlock, error) {

	var blocks []models.AvailabilityBlock
	if err := r.db.WithContext(ctx).
		Where("tutor_id = ?", tutorID).
		Order("start_time ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}

	return blocks, nil
}

func (r *SchedulingGormRepository) GetBlockForTutor(
	ctx context.Context,
	blockID uint,
	tutorID uint,
) (*models.AvailabilityBlock, error) {

	var block models.AvailabilityBlock
	if err := r.db.WithContext(ctx).
		Where("id = ? AND tutor_id = ?", blockID, tutorID).
		First(&block).Error; err != nil {
		return nil, err
	}

	return &block, nil
}

func (r *SchedulingGormRepository) CreateBlock(
	ctx context.Context,
	block *models.AvailabilityBlock,
) error {
	return r.db.WithContext(ctx).Create(block).Error
}

func (r *SchedulingGormRepository) UpdateBlock(
	ctx context.Context,
	block *models.AvailabilityBlock,
) error {
	return r.db.WithContext(ctx).Save(block).Error
}

func (r *SchedulingGormRepository) DeleteBlock(
	ctx context.Context,
	blockID uint,
	tutorID uint,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND tutor_id = ?", blockID, tutorID).
		Delete(&models.AvailabilityBlock{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("block_not_found")
	}
	return nil
}

// --------------------------------------------------
// Sessions
// --------------------------------------------------

func (r *SchedulingGormRepository) CreateSession(
	ctx context.Context,
	session *models.TutoringSession,
) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *SchedulingGormRepository) GetSession(
	ctx context.Context,
	id uint,
) (*models.TutoringSession, error) {

	var session models.TutoringSession
	if err := r.db.WithContext(ctx).
		Preload("Tutor").
		Preload("Course").
		First(&session, id).Error; err != nil {
		return nil, err
	}

	return &session, nil
}

func (r *SchedulingGormRepository) GetSessionForTutor(
	ctx context.Context,
	sessionID uint,
	tutorID uint,
) (*models.TutoringSession, error) {

	var session models.TutoringSession
	if err := r.db.WithContext(ctx).
		Where("id = ? AND tutor_id = ?", sessionID, tutorID).
		First(&session).Error; err != nil {
		return nil, err
	}

	return &session, nil
}

func (r *SchedulingGormRepository) UpdateSession(
	ctx context.Context,
	session *models.TutoringSession,
) error {
	return r.db.WithContext(ctx).Save(session).Error
}

func (r *SchedulingGormRepository) ListSessions(
	ctx context.Context,
	filter domain.SessionFilter,
) ([]models.TutoringSession, error) {

	q := r.db.WithContext(ctx).
		Preload("Tutor").
		Preload("Course")

	if filter.TutorID != 0 {
		q = q.Where("tutor_id = ?", filter.TutorID)
	}
	if len(filter.Statuses) > 0 {
		q = q.Where("status IN ?", filter.Statuses)
	}

	var sessions []models.TutoringSession
	if err := q.Order("start_time ASC").Find(&sessions).Error; err != nil {
		return nil, err
	}

	return sessions, nil
}

func (r *SchedulingGormRepository) ListSessionsForPeriod(
	ctx context.Context,
	tutorID uint,
	start time.Time,
	end time.Time,
) ([]models.TutoringSession, error) {

	var sessions []models.TutoringSession
	if err := r.db.WithContext(ctx).
		Preload("Tutor").
		Preload("Course").
		Where(
			"tutor_id = ? AND start_time >= ? AND start_time < ?",
			tutorID, start, end,
		).
		Order("start_time ASC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}

	return sessions, nil
}

func (r *SchedulingGormRepository) AssertNoSessionOverlap(
	ctx context.Context,
	tutorID uint,
	start time.Time,
	end time.Time,
) error {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.TutoringSession{}).
		Where(
			"tutor_id = ? AND status NOT IN ('CANCELLED', 'COMPLETED') AND start_time < ? AND end_time > ?",
			tutorID,
			end,
			start,
		).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrBusiness("time_conflict")
	}

	return nil
}

// --------------------------------------------------
// Bookings
// --------------------------------------------------

func (r *SchedulingGormRepository) BookSession(
	ctx context.Context,
	sessionID uint,
	studentID uint,
	reference string,
) (*models.Booking, error) {

	var booking *models.Booking

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var session models.TutoringSession
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&session, sessionID).Error; err != nil {
			return httperr.ErrBusiness("session_not_found")
		}

		// duplicate claim by the same student, checked under the row lock so
		// rapid double submits cannot both pass
		var count int64
		if err := tx.
			Model(&models.Booking{}).
			Where(
				"session_id = ? AND student_id = ? AND status IN ('PENDING', 'CONFIRMED')",
				sessionID, studentID,
			).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrBusiness("booking_conflict")
		}

		if domain.SessionStatus(session.Status) != domain.SessionAvailable {
			return httperr.ErrBusiness("session_not_bookable")
		}

		booking = &models.Booking{
			Reference: reference,
			SessionID: sessionID,
			StudentID: studentID,
			Status:    string(domain.InitialBookingStatus()),
		}
		if err := tx.Create(booking).Error; err != nil {
			return err
		}

		session.Status = string(domain.SessionPending)
		return tx.Save(&session).Error
	})
	if err != nil {
		return nil, err
	}

	return booking, nil
}

func (r *SchedulingGormRepository) GetBookingForStudent(
	ctx context.Context,
	bookingID uint,
	studentID uint,
) (*models.Booking, error) {

	var booking models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Session").
		Where("id = ? AND student_id = ?", bookingID, studentID).
		First(&booking).Error; err != nil {
		return nil, err
	}

	return &booking, nil
}

func (r *SchedulingGormRepository) GetBookingForTutor(
	ctx context.Context,
	bookingID uint,
	tutorID uint,
) (*models.Booking, error) {

	var booking models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Session").
		Joins("JOIN tutoring_sessions ON tutoring_sessions.id = bookings.session_id").
		Where("bookings.id = ? AND tutoring_sessions.tutor_id = ?", bookingID, tutorID).
		First(&booking).Error; err != nil {
		return nil, err
	}

	return &booking, nil
}

func (r *SchedulingGormRepository) UpdateBooking(
	ctx context.Context,
	booking *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

func (r *SchedulingGormRepository) ListBookingsForStudent(
	ctx context.Context,
	studentID uint,
	statuses []string,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Preload("Session").
		Preload("Session.Tutor").
		Preload("Session.Course").
		Where("student_id = ?", studentID)

	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}

	var bookings []models.Booking
	if err := q.Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *SchedulingGormRepository) ActiveBookingForSession(
	ctx context.Context,
	sessionID uint,
	studentID uint,
) (*models.Booking, error) {

	var booking models.Booking
	err := r.db.WithContext(ctx).
		Where(
			"session_id = ? AND student_id = ? AND status IN ('PENDING', 'CONFIRMED')",
			sessionID, studentID,
		).
		First(&booking).Error

	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

func (r *SchedulingGormRepository) ReleaseSessionIfUnbooked(
	ctx context.Context,
	sessionID uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var session models.TutoringSession
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&session, sessionID).Error; err != nil {
			return err
		}

		status := domain.SessionStatus(session.Status)
		if status != domain.SessionPending && status != domain.SessionConfirmed {
			return nil
		}

		var count int64
		if err := tx.
			Model(&models.Booking{}).
			Where(
				"session_id = ? AND status IN ('PENDING', 'CONFIRMED')",
				sessionID,
			).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		session.Status = string(domain.SessionAvailable)
		return tx.Save(&session).Error
	})
}

func (r *SchedulingGormRepository) CancelActiveBookingsForSession(
	ctx context.Context,
	sessionID uint,
	now time.Time,
) error {

	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"session_id = ? AND status IN ('PENDING', 'CONFIRMED')",
			sessionID,
		).
		Updates(map[string]any{
			"status":       string(domain.BookingCancelled),
			"cancelled_at": now,
		}).Error
}

// Compile-time check
var _ domain.Repository = (*SchedulingGormRepository)(nil)
