package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Naveen122004/portfolio-service/internal/domain"
	"github.com/Naveen122004/portfolio-service/internal/events"
	"github.com/Naveen122004/portfolio-service/internal/repository"
	apperrors "github.com/Naveen122004/portfolio-service/pkg/util"
)

type fakeTestimonialRepo struct {
	records    map[string]*domain.Testimonial
	nextID     int
	failCreate error
	failList   error
}

func newFakeTestimonialRepo() *fakeTestimonialRepo {
	return &fakeTestimonialRepo{records: make(map[string]*domain.Testimonial)}
}

func (f *fakeTestimonialRepo) Create(_ context.Context, t *domain.Testimonial) error {
	if f.failCreate != nil {
		return f.failCreate
	}
	f.nextID++
	t.ID = fmt.Sprintf("t-%d", f.nextID)
	t.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(f.nextID) * time.Minute)
	copied := *t
	f.records[t.ID] = &copied
	return nil
}

func (f *fakeTestimonialRepo) GetByID(_ context.Context, id string) (*domain.Testimonial, error) {
	t, ok := f.records[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *t
	return &copied, nil
}

func (f *fakeTestimonialRepo) List(_ context.Context, filter repository.TestimonialFilter) ([]domain.Testimonial, error) {
	if f.failList != nil {
		return nil, f.failList
	}
	var result []domain.Testimonial
	for _, t := range f.records {
		if len(filter.Statuses) > 0 {
			matched := false
			for _, s := range filter.Statuses {
				if t.Status == s {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		result = append(result, *t)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (f *fakeTestimonialRepo) UpdateStatus(_ context.Context, id string, status domain.TestimonialStatus) error {
	t, ok := f.records[id]
	if !ok {
		return pgx.ErrNoRows
	}
	t.Status = status
	return nil
}

func (f *fakeTestimonialRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.records[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.records, id)
	return nil
}

func (f *fakeTestimonialRepo) CountByStatus(_ context.Context) (map[domain.TestimonialStatus]int, error) {
	counts := make(map[domain.TestimonialStatus]int)
	for _, t := range f.records {
		counts[t.Status]++
	}
	return counts, nil
}

func validInput() TestimonialInput {
	return TestimonialInput{
		Name:    "Jo",
		Email:   "jo@x.com",
		Message: "Great work on the project!",
		Rating:  5,
	}
}

func newService(repo repository.TestimonialRepository) *TestimonialService {
	return NewTestimonialService(TestimonialDependencies{
		TestimonialRepo: repo,
		Dispatcher:      events.NewInMemoryDispatcher(),
	})
}

func domainCode(t *testing.T, err error) string {
	t.Helper()
	var de *apperrors.DomainError
	if !errors.As(err, &de) {
		t.Fatalf("expected DomainError, got %v", err)
	}
	return de.Code
}

func TestSubmitValidCreatesPending(t *testing.T) {
	repo := newFakeTestimonialRepo()
	svc := newService(repo)

	created, err := svc.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if created.Status != domain.TestimonialStatusPending {
		t.Fatalf("expected pending, got %q", created.Status)
	}
	if created.ID == "" {
		t.Fatal("expected server-assigned id")
	}
	if len(repo.records) != 1 {
		t.Fatalf("expected exactly one record, got %d", len(repo.records))
	}
}

func TestSubmitTrimsTextFields(t *testing.T) {
	repo := newFakeTestimonialRepo()
	svc := newService(repo)

	input := validInput()
	input.Name = "  Jo  "
	input.Message = "  Great work on the project!  "
	input.Role = "  Software Engineer  "
	input.Company = "   "

	created, err := svc.Submit(context.Background(), input)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if created.Name != "Jo" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
	if created.Message != "Great work on the project!" {
		t.Fatalf("expected trimmed message, got %q", created.Message)
	}
	if created.Role == nil || *created.Role != "Software Engineer" {
		t.Fatalf("expected trimmed role, got %v", created.Role)
	}
	if created.Company != nil {
		t.Fatalf("expected whitespace-only company to be dropped, got %v", created.Company)
	}
}

func TestSubmitReportsFirstViolatedField(t *testing.T) {
	cases := []struct {
		name      string
		mutate    func(*TestimonialInput)
		wantField string
	}{
		{"name too short", func(in *TestimonialInput) { in.Name = "J" }, "name"},
		{"name too long", func(in *TestimonialInput) { in.Name = strings.Repeat("a", 101) }, "name"},
		{"email invalid", func(in *TestimonialInput) { in.Email = "not-an-email" }, "email"},
		{"email empty", func(in *TestimonialInput) { in.Email = "" }, "email"},
		{"role too long", func(in *TestimonialInput) { in.Role = strings.Repeat("r", 101) }, "role"},
		{"company too long", func(in *TestimonialInput) { in.Company = strings.Repeat("c", 101) }, "company"},
		{"message too short", func(in *TestimonialInput) { in.Message = "too short" }, "message"},
		{"message too long", func(in *TestimonialInput) { in.Message = strings.Repeat("m", 1001) }, "message"},
		{"rating zero", func(in *TestimonialInput) { in.Rating = 0 }, "rating"},
		{"rating too high", func(in *TestimonialInput) { in.Rating = 6 }, "rating"},
		{"name violation reported before rating", func(in *TestimonialInput) {
			in.Name = "J"
			in.Rating = 0
		}, "name"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeTestimonialRepo()
			svc := newService(repo)
			input := validInput()
			tc.mutate(&input)

			_, err := svc.Submit(context.Background(), input)
			if err == nil {
				t.Fatal("expected validation error")
			}
			var de *apperrors.DomainError
			if !errors.As(err, &de) {
				t.Fatalf("expected DomainError, got %v", err)
			}
			if de.Code != "VALIDATION_FAILED" {
				t.Fatalf("expected VALIDATION_FAILED, got %q", de.Code)
			}
			if got := de.Details["field"]; got != tc.wantField {
				t.Fatalf("expected field %q, got %v", tc.wantField, got)
			}
			if len(repo.records) != 0 {
				t.Fatalf("expected zero records persisted, got %d", len(repo.records))
			}
		})
	}
}

func TestSubmitLengthBoundsCountCharactersNotBytes(t *testing.T) {
	ctx := context.Background()

	t.Run("single multibyte character name is too short", func(t *testing.T) {
		repo := newFakeTestimonialRepo()
		svc := newService(repo)
		input := validInput()
		input.Name = "é" // one character, two bytes

		_, err := svc.Submit(ctx, input)
		var de *apperrors.DomainError
		if !errors.As(err, &de) || de.Code != "VALIDATION_FAILED" {
			t.Fatalf("expected VALIDATION_FAILED, got %v", err)
		}
		if de.Details["field"] != "name" {
			t.Fatalf("expected name violation, got %v", de.Details)
		}
		if len(repo.records) != 0 {
			t.Fatal("undersized name must not be persisted")
		}
	})

	t.Run("nine multibyte character message is too short", func(t *testing.T) {
		svc := newService(newFakeTestimonialRepo())
		input := validInput()
		input.Message = strings.Repeat("ü", 9)

		_, err := svc.Submit(ctx, input)
		var de *apperrors.DomainError
		if !errors.As(err, &de) || de.Details["field"] != "message" {
			t.Fatalf("expected message violation, got %v", err)
		}
	})

	t.Run("hundred multibyte character name is accepted", func(t *testing.T) {
		svc := newService(newFakeTestimonialRepo())
		input := validInput()
		input.Name = strings.Repeat("é", 100)

		if _, err := svc.Submit(ctx, input); err != nil {
			t.Fatalf("100-character name must pass, got %v", err)
		}
	})

	t.Run("thousand multibyte character message is accepted", func(t *testing.T) {
		svc := newService(newFakeTestimonialRepo())
		input := validInput()
		input.Message = strings.Repeat("ü", 1000)

		if _, err := svc.Submit(ctx, input); err != nil {
			t.Fatalf("1000-character message must pass, got %v", err)
		}
	})
}

func TestSubmitWrapsPersistenceFailure(t *testing.T) {
	repo := newFakeTestimonialRepo()
	repo.failCreate = errors.New("connection refused")
	svc := newService(repo)

	_, err := svc.Submit(context.Background(), validInput())
	if code := domainCode(t, err); code != "SUBMISSION_FAILED" {
		t.Fatalf("expected SUBMISSION_FAILED, got %q", code)
	}
}

func TestListApprovedOnlyReturnsApproved(t *testing.T) {
	repo := newFakeTestimonialRepo()
	svc := newService(repo)
	ctx := context.Background()

	first, _ := svc.Submit(ctx, validInput())
	second, _ := svc.Submit(ctx, validInput())
	if _, err := svc.Approve(ctx, "admin-1", second.ID); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if _, err := svc.Reject(ctx, "admin-1", first.ID); err != nil {
		t.Fatalf("reject: %v", err)
	}

	feed, err := svc.ListApproved(ctx)
	if err != nil {
		t.Fatalf("list approved: %v", err)
	}
	if len(feed) != 1 {
		t.Fatalf("expected 1 approved record, got %d", len(feed))
	}
	if feed[0].ID != second.ID {
		t.Fatalf("expected %q in feed, got %q", second.ID, feed[0].ID)
	}
	for _, item := range feed {
		if item.Status != domain.TestimonialStatusApproved {
			t.Fatalf("feed leaked status %q", item.Status)
		}
	}
}

func TestListApprovedEmptyFeedIsNotAnError(t *testing.T) {
	svc := newService(newFakeTestimonialRepo())

	feed, err := svc.ListApproved(context.Background())
	if err != nil {
		t.Fatalf("list approved: %v", err)
	}
	if feed == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(feed) != 0 {
		t.Fatalf("expected empty feed, got %d items", len(feed))
	}
}

func TestListApprovedNewestFirst(t *testing.T) {
	repo := newFakeTestimonialRepo()
	svc := newService(repo)
	ctx := context.Background()

	older, _ := svc.Submit(ctx, validInput())
	newer, _ := svc.Submit(ctx, validInput())
	svc.Approve(ctx, "admin-1", older.ID)
	svc.Approve(ctx, "admin-1", newer.ID)

	feed, err := svc.ListApproved(ctx)
	if err != nil {
		t.Fatalf("list approved: %v", err)
	}
	if len(feed) != 2 {
		t.Fatalf("expected 2 records, got %d", len(feed))
	}
	if feed[0].ID != newer.ID {
		t.Fatalf("expected newest first, got %q", feed[0].ID)
	}
}

func TestListApprovedWrapsFetchFailure(t *testing.T) {
	repo := newFakeTestimonialRepo()
	repo.failList = errors.New("timeout")
	svc := newService(repo)

	_, err := svc.ListApproved(context.Background())
	if code := domainCode(t, err); code != "FETCH_FAILED" {
		t.Fatalf("expected FETCH_FAILED, got %q", code)
	}
}

func TestTransitionsCommuteToLastApplied(t *testing.T) {
	repo := newFakeTestimonialRepo()
	svc := newService(repo)
	ctx := context.Background()

	created, _ := svc.Submit(ctx, validInput())

	if _, err := svc.Approve(ctx, "admin-1", created.ID); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if _, err := svc.Reject(ctx, "admin-1", created.ID); err != nil {
		t.Fatalf("reject: %v", err)
	}
	final, err := svc.Approve(ctx, "admin-1", created.ID)
	if err != nil {
		t.Fatalf("approve again: %v", err)
	}
	if final.Status != domain.TestimonialStatusApproved {
		t.Fatalf("expected approved after approve-reject-approve, got %q", final.Status)
	}
}

func TestApproveAlreadyApprovedIsNoOpSuccess(t *testing.T) {
	repo := newFakeTestimonialRepo()
	svc := newService(repo)
	ctx := context.Background()

	created, _ := svc.Submit(ctx, validInput())
	svc.Approve(ctx, "admin-1", created.ID)

	again, err := svc.Approve(ctx, "admin-1", created.ID)
	if err != nil {
		t.Fatalf("expected idempotent approve, got %v", err)
	}
	if again.Status != domain.TestimonialStatusApproved {
		t.Fatalf("expected approved, got %q", again.Status)
	}
}

func TestApproveUnknownIDFails(t *testing.T) {
	svc := newService(newFakeTestimonialRepo())

	_, err := svc.Approve(context.Background(), "admin-1", "missing")
	if code := domainCode(t, err); code != "MUTATION_FAILED" {
		t.Fatalf("expected MUTATION_FAILED, got %q", code)
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	repo := newFakeTestimonialRepo()
	svc := newService(repo)
	ctx := context.Background()

	created, _ := svc.Submit(ctx, validInput())

	err := svc.Delete(ctx, "admin-1", created.ID, false)
	if code := domainCode(t, err); code != "CONFIRMATION_REQUIRED" {
		t.Fatalf("expected CONFIRMATION_REQUIRED, got %q", code)
	}
	if _, ok := repo.records[created.ID]; !ok {
		t.Fatal("unconfirmed delete must not touch the store")
	}
}

func TestDeleteRemovesRecord(t *testing.T) {
	repo := newFakeTestimonialRepo()
	svc := newService(repo)
	ctx := context.Background()

	created, _ := svc.Submit(ctx, validInput())

	if err := svc.Delete(ctx, "admin-1", created.ID, true); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(repo.records) != 0 {
		t.Fatalf("expected record removed, %d left", len(repo.records))
	}
}

func TestDeleteUnknownIDLeavesRecordsIntact(t *testing.T) {
	repo := newFakeTestimonialRepo()
	svc := newService(repo)
	ctx := context.Background()

	svc.Submit(ctx, validInput())

	err := svc.Delete(ctx, "admin-1", "missing", true)
	var de *apperrors.DomainError
	if !errors.As(err, &de) || de.Code != "MUTATION_FAILED" {
		t.Fatalf("expected MUTATION_FAILED, got %v", err)
	}
	if de.HTTPStatus != 404 {
		t.Fatalf("expected 404 for missing record, got %d", de.HTTPStatus)
	}
	if len(repo.records) != 1 {
		t.Fatalf("existing record set must be unchanged, got %d records", len(repo.records))
	}
}

func TestModerationOverviewListsAllStatusesWithCounts(t *testing.T) {
	repo := newFakeTestimonialRepo()
	svc := newService(repo)
	ctx := context.Background()

	a, _ := svc.Submit(ctx, validInput())
	b, _ := svc.Submit(ctx, validInput())
	svc.Submit(ctx, validInput())
	svc.Approve(ctx, "admin-1", a.ID)
	svc.Reject(ctx, "admin-1", b.ID)

	overview, err := svc.ListForModeration(ctx)
	if err != nil {
		t.Fatalf("list for moderation: %v", err)
	}
	if len(overview.Testimonials) != 3 {
		t.Fatalf("expected all 3 records, got %d", len(overview.Testimonials))
	}
	if overview.Pending != 1 || overview.Approved != 1 || overview.Rejected != 1 {
		t.Fatalf("unexpected counts: pending=%d approved=%d rejected=%d",
			overview.Pending, overview.Approved, overview.Rejected)
	}
}

func TestApproveThenFeedIncludesRecord(t *testing.T) {
	repo := newFakeTestimonialRepo()
	svc := newService(repo)
	ctx := context.Background()

	created, err := svc.Submit(ctx, validInput())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if created.Status != domain.TestimonialStatusPending {
		t.Fatalf("expected pending on creation, got %q", created.Status)
	}

	before, _ := svc.ListApproved(ctx)
	if len(before) != 0 {
		t.Fatalf("pending record must not appear in feed, got %d", len(before))
	}

	if _, err := svc.Approve(ctx, "admin-1", created.ID); err != nil {
		t.Fatalf("approve: %v", err)
	}

	after, err := svc.ListApproved(ctx)
	if err != nil {
		t.Fatalf("list approved: %v", err)
	}
	if len(after) != 1 || after[0].ID != created.ID {
		t.Fatalf("expected approved record in feed, got %v", after)
	}
}
