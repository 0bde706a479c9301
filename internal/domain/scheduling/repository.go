package scheduling

import (
	"context"
	"time"

	"github.com/studysched/tutor-scheduler/internal/models"
)

type SessionFilter struct {
	TutorID  uint
	Statuses []string
}

type Repository interface {
	// -------- User --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Course --------
	GetCourseForTutor(
		ctx context.Context,
		courseID uint,
		tutorID uint,
	) (*models.Course, error)

	// -------- Availability blocks --------
	ListBlocksForTutor(
		ctx context.Context,
		tutorID uint,
	) ([]models.AvailabilityBlock, error)

	GetBlockForTutor(
		ctx context.Context,
		blockID uint,
		tutorID uint,
	) (*models.AvailabilityBlock, error)

	CreateBlock(
		ctx context.Context,
		block *models.AvailabilityBlock,
	) error

	UpdateBlock(
		ctx context.Context,
		block *models.AvailabilityBlock,
	) error

	DeleteBlock(
		ctx context.Context,
		blockID uint,
		tutorID uint,
	) error

	// -------- Sessions --------
	CreateSession(
		ctx context.Context,
		session *models.TutoringSession,
	) error

	GetSession(
		ctx context.Context,
		id uint,
	) (*models.TutoringSession, error)

	GetSessionForTutor(
		ctx context.Context,
		sessionID uint,
		tutorID uint,
	) (*models.TutoringSession, error)

	UpdateSession(
		ctx context.Context,
		session *models.TutoringSession,
	) error

	ListSessions(
		ctx context.Context,
		filter SessionFilter,
	) ([]models.TutoringSession, error)

	ListSessionsForPeriod(
		ctx context.Context,
		tutorID uint,
		start time.Time,
		end time.Time,
	) ([]models.TutoringSession, error)

	AssertNoSessionOverlap(
		ctx context.Context,
		tutorID uint,
		start time.Time,
		end time.Time,
	) error

	// -------- Bookings --------
	// BookSession claims a session for a student atomically: the session row
	// is locked, the duplicate-booking assertion runs under the lock, and an
	// AVAILABLE session moves to PENDING with the new booking.
	BookSession(
		ctx context.Context,
		sessionID uint,
		studentID uint,
		reference string,
	) (*models.Booking, error)

	GetBookingForStudent(
		ctx context.Context,
		bookingID uint,
		studentID uint,
	) (*models.Booking, error)

	GetBookingForTutor(
		ctx context.Context,
		bookingID uint,
		tutorID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		booking *models.Booking,
	) error

	ListBookingsForStudent(
		ctx context.Context,
		studentID uint,
		statuses []string,
	) ([]models.Booking, error)

	ActiveBookingForSession(
		ctx context.Context,
		sessionID uint,
		studentID uint,
	) (*models.Booking, error)

	// ReleaseSessionIfUnbooked reverts a claimed session to AVAILABLE when no
	// active booking remains on it.
	ReleaseSessionIfUnbooked(
		ctx context.Context,
		sessionID uint,
	) error

	CancelActiveBookingsForSession(
		ctx context.Context,
		sessionID uint,
		now time.Time,
	) error
}
