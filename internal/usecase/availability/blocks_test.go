package availability

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/studysched/tutor-scheduler/internal/audit"
	domain "github.com/studysched/tutor-scheduler/internal/domain/scheduling"
	"github.com/studysched/tutor-scheduler/internal/httperr"
	"github.com/studysched/tutor-scheduler/internal/models"
)

// --- fake repository ---

type fakeBlockRepo struct {
	domain.Repository

	nextID uint
	blocks map[uint]models.AvailabilityBlock
}

func newFakeBlockRepo() *fakeBlockRepo {
	return &fakeBlockRepo{
		nextID: 1,
		blocks: make(map[uint]models.AvailabilityBlock),
	}
}

func (f *fakeBlockRepo) ListBlocksForTutor(ctx context.Context, tutorID uint) ([]models.AvailabilityBlock, error) {
	var out []models.AvailabilityBlock
	for id := uint(1); id < f.nextID; id++ {
		if b, ok := f.blocks[id]; ok && b.TutorID == tutorID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBlockRepo) GetBlockForTutor(ctx context.Context, blockID, tutorID uint) (*models.AvailabilityBlock, error) {
	b, ok := f.blocks[blockID]
	if !ok || b.TutorID != tutorID {
		return nil, httperr.ErrBusiness("block_not_found")
	}
	return &b, nil
}

func (f *fakeBlockRepo) CreateBlock(ctx context.Context, block *models.AvailabilityBlock) error {
	block.ID = f.nextID
	f.nextID++
	f.blocks[block.ID] = *block
	return nil
}

func (f *fakeBlockRepo) UpdateBlock(ctx context.Context, block *models.AvailabilityBlock) error {
	f.blocks[block.ID] = *block
	return nil
}

func (f *fakeBlockRepo) DeleteBlock(ctx context.Context, blockID, tutorID uint) error {
	b, ok := f.blocks[blockID]
	if !ok || b.TutorID != tutorID {
		return httperr.ErrBusiness("block_not_found")
	}
	delete(f.blocks, blockID)
	return nil
}

// --- helpers ---

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil), zap.NewNop())
}

func testLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Santiago")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func wantBusinessCode(t *testing.T, err error, want string) {
	t.Helper()
	code, ok := httperr.BusinessCode(err)
	if !ok {
		t.Fatalf("err = %v, want business error %q", err, want)
	}
	if code != want {
		t.Fatalf("business code = %q, want %q", code, want)
	}
}

// --- tests ---

func TestCreateBlockRoundTrip(t *testing.T) {
	repo := newFakeBlockRepo()
	loc := testLocation(t)
	uc := NewCreateBlock(repo, testDispatcher(), loc)

	block, blocks, err := uc.Execute(context.Background(), CreateBlockInput{
		TutorID: 1,
		Date:    "2025-03-10",
		Start:   "09:00",
		End:     "12:00",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Monday 09:00 in Santiago is Monday 12:00 UTC, so the tag stays LUNES.
	if block.Weekday != "LUNES" {
		t.Errorf("weekday = %s, want LUNES", block.Weekday)
	}
	if got := block.EndTime.Sub(block.StartTime); got != 3*time.Hour {
		t.Errorf("window length = %v, want 3h", got)
	}
	if block.StartTime.Location() != time.UTC {
		t.Error("start not stored as UTC instant")
	}

	// The returned list is server state after the write.
	if len(blocks) != 1 || blocks[0].ID != block.ID {
		t.Fatalf("refetched list = %+v, want the created block", blocks)
	}

	listed, err := NewListBlocks(repo).Execute(context.Background(), 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 || !listed[0].StartTime.Equal(block.StartTime) {
		t.Errorf("list after create = %+v", listed)
	}
}

func TestCreateBlockValidation(t *testing.T) {
	repo := newFakeBlockRepo()
	uc := NewCreateBlock(repo, testDispatcher(), testLocation(t))

	cases := []struct {
		name string
		in   CreateBlockInput
		want string
	}{
		{"missing date", CreateBlockInput{TutorID: 1, Start: "09:00", End: "10:00"}, "validation_error"},
		{"missing start", CreateBlockInput{TutorID: 1, Date: "2025-03-10", End: "10:00"}, "validation_error"},
		{"bad date", CreateBlockInput{TutorID: 1, Date: "10-03-2025", Start: "09:00", End: "10:00"}, "validation_error"},
		{"bad clock", CreateBlockInput{TutorID: 1, Date: "2025-03-10", Start: "9am", End: "10:00"}, "validation_error"},
		{"inverted", CreateBlockInput{TutorID: 1, Date: "2025-03-10", Start: "12:00", End: "09:00"}, "invalid_time_range"},
		{"zero length", CreateBlockInput{TutorID: 1, Date: "2025-03-10", Start: "09:00", End: "09:00"}, "invalid_time_range"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := uc.Execute(context.Background(), tc.in)
			wantBusinessCode(t, err, tc.want)
		})
	}

	if len(repo.blocks) != 0 {
		t.Errorf("%d blocks persisted by rejected input", len(repo.blocks))
	}
}

func TestUpdateBlockMergesFields(t *testing.T) {
	repo := newFakeBlockRepo()
	loc := testLocation(t)
	dispatcher := testDispatcher()

	created, _, err := NewCreateBlock(repo, dispatcher, loc).Execute(context.Background(), CreateBlockInput{
		TutorID: 1,
		Date:    "2025-03-10",
		Start:   "09:00",
		End:     "12:00",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Only the end moves; date and start carry over from stored state.
	newEnd := "13:30"
	updated, blocks, err := NewUpdateBlock(repo, dispatcher, loc).Execute(context.Background(), UpdateBlockInput{
		TutorID: 1,
		BlockID: created.ID,
		End:     &newEnd,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if !updated.StartTime.Equal(created.StartTime) {
		t.Errorf("start moved: %v -> %v", created.StartTime, updated.StartTime)
	}
	if got := updated.EndTime.Sub(updated.StartTime); got != 4*time.Hour+30*time.Minute {
		t.Errorf("window length = %v, want 4h30m", got)
	}
	if len(blocks) != 1 || !blocks[0].EndTime.Equal(updated.EndTime) {
		t.Errorf("refetched list = %+v, want updated block", blocks)
	}

	// Moving the date re-derives the weekday tag.
	newDate := "2025-03-12"
	updated, _, err = NewUpdateBlock(repo, dispatcher, loc).Execute(context.Background(), UpdateBlockInput{
		TutorID: 1,
		BlockID: created.ID,
		Date:    &newDate,
	})
	if err != nil {
		t.Fatalf("update date: %v", err)
	}
	if updated.Weekday != "MIERCOLES" {
		t.Errorf("weekday = %s, want MIERCOLES", updated.Weekday)
	}
}

func TestUpdateBlockErrors(t *testing.T) {
	repo := newFakeBlockRepo()
	loc := testLocation(t)
	dispatcher := testDispatcher()

	created, _, err := NewCreateBlock(repo, dispatcher, loc).Execute(context.Background(), CreateBlockInput{
		TutorID: 1,
		Date:    "2025-03-10",
		Start:   "09:00",
		End:     "12:00",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	uc := NewUpdateBlock(repo, dispatcher, loc)

	_, _, err = uc.Execute(context.Background(), UpdateBlockInput{TutorID: 1, BlockID: 999})
	wantBusinessCode(t, err, "block_not_found")

	// Ownership is enforced: another tutor cannot touch the block.
	_, _, err = uc.Execute(context.Background(), UpdateBlockInput{TutorID: 2, BlockID: created.ID})
	wantBusinessCode(t, err, "block_not_found")

	badEnd := "08:00"
	_, _, err = uc.Execute(context.Background(), UpdateBlockInput{TutorID: 1, BlockID: created.ID, End: &badEnd})
	wantBusinessCode(t, err, "invalid_time_range")

	// The rejected update must not leak into stored state.
	stored, _ := repo.GetBlockForTutor(context.Background(), created.ID, 1)
	if !stored.EndTime.Equal(created.EndTime) {
		t.Errorf("stored end moved by rejected update: %v", stored.EndTime)
	}
}

func TestDeleteBlock(t *testing.T) {
	repo := newFakeBlockRepo()
	loc := testLocation(t)
	dispatcher := testDispatcher()

	createUC := NewCreateBlock(repo, dispatcher, loc)
	first, _, err := createUC.Execute(context.Background(), CreateBlockInput{
		TutorID: 1, Date: "2025-03-10", Start: "09:00", End: "10:00",
	})
	if err != nil {
		t.Fatal(err)
	}
	second, _, err := createUC.Execute(context.Background(), CreateBlockInput{
		TutorID: 1, Date: "2025-03-11", Start: "14:00", End: "16:00",
	})
	if err != nil {
		t.Fatal(err)
	}

	uc := NewDeleteBlock(repo, dispatcher)

	blocks, err := uc.Execute(context.Background(), 1, first.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(blocks) != 1 || blocks[0].ID != second.ID {
		t.Errorf("list after delete = %+v, want only the second block", blocks)
	}

	_, err = uc.Execute(context.Background(), 1, first.ID)
	wantBusinessCode(t, err, "block_not_found")

	_, err = uc.Execute(context.Background(), 2, second.ID)
	wantBusinessCode(t, err, "block_not_found")
}
