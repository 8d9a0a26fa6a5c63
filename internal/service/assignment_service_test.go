package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"elearning/internal/domain"
	"elearning/internal/dto"
	"elearning/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type assignmentFixture struct {
	store      *memoryStore
	coursework *memoryCoursework
	clock      *fakeClock
	svc        AssignmentService
	course     *domain.Course
	assignment *domain.Assignment
}

// newAssignmentFixture seeds a course taught by instructor and one published
// assignment due a day after fixtureStart.
func newAssignmentFixture(t *testing.T) *assignmentFixture {
	t.Helper()
	ctx := context.Background()
	store := newMemoryStore()
	course := &domain.Course{Title: "Go 101", InstructorID: instructor.UserID}
	require.NoError(t, store.SaveCourse(ctx, course))

	coursework := newMemoryCoursework()
	assignment := &domain.Assignment{
		CourseID:    course.ID,
		Title:       "Essay on interfaces",
		DueDate:     fixtureStart.Add(24 * time.Hour),
		TotalPoints: 50,
		IsPublished: true,
		CreatedAt:   fixtureStart,
		UpdatedAt:   fixtureStart,
	}
	require.NoError(t, coursework.CreateAssignment(ctx, assignment))

	clock := &fakeClock{now: fixtureStart}
	svc := NewAssignmentService(coursework, coursework, store, &memoryTx{}, validation.NewValidator(), clock.Now)
	return &assignmentFixture{store: store, coursework: coursework, clock: clock, svc: svc, course: course, assignment: assignment}
}

func gradeRequest(score int, status string) *dto.GradeRequest {
	return &dto.GradeRequest{Score: &score, Feedback: "see comments", Status: status}
}

func TestAssignmentService_SubmitOncePerAssignment(t *testing.T) {
	f := newAssignmentFixture(t)
	ctx := context.Background()

	resp, created, err := f.svc.Submit(ctx, student, f.assignment.ID, &dto.SubmissionRequest{Text: "first draft"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, string(domain.SubmissionStatusSubmitted), resp.Status)
	assert.False(t, resp.IsLate)

	_, _, err = f.svc.Submit(ctx, student, f.assignment.ID, &dto.SubmissionRequest{Text: "second draft"})
	assertCode(t, err, domain.CodeAlreadySubmitted)

	stored, _ := f.coursework.GetByAssignmentAndStudent(ctx, f.assignment.ID, student.UserID)
	require.NotNil(t, stored)
	assert.Equal(t, "first draft", stored.Text)

	_, created, err = f.svc.Submit(ctx, otherStudent, f.assignment.ID, &dto.SubmissionRequest{Text: "mine"})
	require.NoError(t, err)
	assert.True(t, created)
}

func TestAssignmentService_SubmitAfterDueDateIsLate(t *testing.T) {
	f := newAssignmentFixture(t)
	f.clock.Advance(25 * time.Hour)

	resp, created, err := f.svc.Submit(context.Background(), student, f.assignment.ID, &dto.SubmissionRequest{Text: "sorry"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, resp.IsLate)
}

func TestAssignmentService_SubmitRejections(t *testing.T) {
	f := newAssignmentFixture(t)
	ctx := context.Background()

	_, _, err := f.svc.Submit(ctx, instructor, f.assignment.ID, &dto.SubmissionRequest{Text: "x"})
	assertCode(t, err, domain.CodePermissionDenied)

	_, _, err = f.svc.Submit(ctx, student, f.assignment.ID, &dto.SubmissionRequest{Text: "   "})
	var verrs domain.ValidationErrors
	require.True(t, errors.As(err, &verrs))

	_, _, err = f.svc.Submit(ctx, student, "01HZX3Q4J5K6M7N8P9R0S1T2ZZ", &dto.SubmissionRequest{Text: "x"})
	assertCode(t, err, domain.CodeAssignmentNotFound)

	f.assignment.IsPublished = false
	require.NoError(t, f.coursework.UpdateAssignment(ctx, f.assignment))
	_, _, err = f.svc.Submit(ctx, student, f.assignment.ID, &dto.SubmissionRequest{Text: "x"})
	assertCode(t, err, domain.CodeAssignmentNotPublished)
}

func TestAssignmentService_ReturnedWorkCanBeResubmitted(t *testing.T) {
	f := newAssignmentFixture(t)
	ctx := context.Background()

	sub, _, err := f.svc.Submit(ctx, student, f.assignment.ID, &dto.SubmissionRequest{Text: "draft"})
	require.NoError(t, err)

	f.clock.Advance(time.Hour)
	graded, err := f.svc.GradeSubmission(ctx, instructor, f.assignment.ID, sub.ID, gradeRequest(20, "returned"))
	require.NoError(t, err)
	assert.Equal(t, string(domain.SubmissionStatusReturned), graded.Status)
	require.NotNil(t, graded.Score)
	assert.Equal(t, 20, *graded.Score)

	f.clock.Advance(time.Hour)
	resp, created, err := f.svc.Submit(ctx, student, f.assignment.ID, &dto.SubmissionRequest{Text: "revised"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, sub.ID, resp.ID)
	assert.Equal(t, "revised", resp.Text)
	assert.Equal(t, string(domain.SubmissionStatusSubmitted), resp.Status)
	assert.Nil(t, resp.Score)
	assert.Equal(t, "see comments", resp.Feedback, "feedback stays visible after resubmission")
	assert.Equal(t, fixtureStart.Add(2*time.Hour), resp.SubmittedAt)
}

func TestAssignmentService_GradeSubmission(t *testing.T) {
	f := newAssignmentFixture(t)
	ctx := context.Background()
	sub, _, err := f.svc.Submit(ctx, student, f.assignment.ID, &dto.SubmissionRequest{Text: "answer"})
	require.NoError(t, err)

	t.Run("above total points", func(t *testing.T) {
		_, err := f.svc.GradeSubmission(ctx, instructor, f.assignment.ID, sub.ID, gradeRequest(51, ""))
		var verrs domain.ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.Equal(t, "score", verrs[0].Field)
	})

	t.Run("student", func(t *testing.T) {
		_, err := f.svc.GradeSubmission(ctx, student, f.assignment.ID, sub.ID, gradeRequest(10, ""))
		assertCode(t, err, domain.CodePermissionDenied)
	})

	t.Run("another teacher", func(t *testing.T) {
		other := domain.Principal{UserID: "teacher-2", Role: domain.RoleTeacher}
		_, err := f.svc.GradeSubmission(ctx, other, f.assignment.ID, sub.ID, gradeRequest(10, ""))
		assertCode(t, err, domain.CodePermissionDenied)
	})

	t.Run("submission of another assignment", func(t *testing.T) {
		other := &domain.Assignment{CourseID: f.course.ID, Title: "Other", DueDate: fixtureStart, TotalPoints: 100}
		require.NoError(t, f.coursework.CreateAssignment(ctx, other))
		_, err := f.svc.GradeSubmission(ctx, instructor, other.ID, sub.ID, gradeRequest(10, ""))
		assertCode(t, err, domain.CodeSubmissionNotFound)
	})

	t.Run("graded by default", func(t *testing.T) {
		resp, err := f.svc.GradeSubmission(ctx, instructor, f.assignment.ID, sub.ID, gradeRequest(50, ""))
		require.NoError(t, err)
		assert.Equal(t, string(domain.SubmissionStatusGraded), resp.Status)
		require.NotNil(t, resp.GradedAt)
		assert.Equal(t, fixtureStart, *resp.GradedAt)

		_, _, err = f.svc.Submit(ctx, student, f.assignment.ID, &dto.SubmissionRequest{Text: "again"})
		assertCode(t, err, domain.CodeAlreadySubmitted)
	})
}

func TestAssignmentService_StudentViews(t *testing.T) {
	f := newAssignmentFixture(t)
	ctx := context.Background()
	hidden := &domain.Assignment{CourseID: f.course.ID, Title: "Draft", DueDate: fixtureStart.Add(time.Hour), TotalPoints: 100}
	require.NoError(t, f.coursework.CreateAssignment(ctx, hidden))

	_, _, err := f.svc.Submit(ctx, student, f.assignment.ID, &dto.SubmissionRequest{Text: "done"})
	require.NoError(t, err)

	list, err := f.svc.ListAssignments(ctx, student, f.course.ID)
	require.NoError(t, err)
	require.Len(t, list.Assignments, 1)
	require.NotNil(t, list.Assignments[0].Submission)
	assert.Equal(t, "done", list.Assignments[0].Submission.Text)

	list, err = f.svc.ListAssignments(ctx, otherStudent, f.course.ID)
	require.NoError(t, err)
	assert.Nil(t, list.Assignments[0].Submission)

	_, err = f.svc.ListAssignments(ctx, student, "01HZX3Q4J5K6M7N8P9R0S1T2ZZ")
	assertCode(t, err, domain.CodeCourseNotFound)

	_, err = f.svc.GetAssignment(ctx, student, hidden.ID)
	assertCode(t, err, domain.CodeAssignmentNotFound)

	resp, err := f.svc.GetAssignment(ctx, instructor, hidden.ID)
	require.NoError(t, err)
	assert.False(t, resp.IsPublished)
	assert.Nil(t, resp.Submission)

	f.clock.Advance(48 * time.Hour)
	resp, err = f.svc.GetAssignment(ctx, student, f.assignment.ID)
	require.NoError(t, err)
	assert.True(t, resp.IsPastDue)
	require.NotNil(t, resp.Submission)
	assert.False(t, resp.Submission.IsLate)
}

func TestAssignmentService_Manage(t *testing.T) {
	f := newAssignmentFixture(t)
	ctx := context.Background()
	kst := time.FixedZone("KST", 9*60*60)
	due := time.Date(2026, 3, 10, 9, 0, 0, 0, kst)

	created, err := f.svc.CreateAssignment(ctx, instructor, &dto.AssignmentRequest{
		CourseID: f.course.ID, Title: "Lab report", DueDate: due,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTotalPoints, created.TotalPoints)
	assert.False(t, created.IsPublished, "new assignments start unpublished")
	assert.Equal(t, time.UTC, created.DueDate.Location())
	assert.True(t, due.Equal(created.DueDate))

	_, err = f.svc.CreateAssignment(ctx, student, &dto.AssignmentRequest{CourseID: f.course.ID, Title: "x", DueDate: due})
	assertCode(t, err, domain.CodePermissionDenied)

	published, err := f.svc.SetPublished(ctx, instructor, created.ID, true)
	require.NoError(t, err)
	assert.True(t, published.IsPublished)

	updated, err := f.svc.UpdateAssignment(ctx, instructor, created.ID, &dto.AssignmentRequest{
		CourseID: f.course.ID, Title: "Lab report v2", DueDate: due, TotalPoints: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, "Lab report v2", updated.Title)
	assert.Equal(t, 20, updated.TotalPoints)
	assert.True(t, updated.IsPublished, "publication survives edits")

	_, err = f.svc.UpdateAssignment(ctx, instructor, created.ID, &dto.AssignmentRequest{
		CourseID: "01HZX3Q4J5K6M7N8P9R0S1T2ZZ", Title: "moved", DueDate: due,
	})
	var verrs domain.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "course_id", verrs[0].Field)

	list, err := f.svc.ListManagedAssignments(ctx, instructor, f.course.ID)
	require.NoError(t, err)
	assert.Len(t, list.Assignments, 2)
}

func TestAssignmentService_ListSubmissionsAndDelete(t *testing.T) {
	f := newAssignmentFixture(t)
	ctx := context.Background()

	_, _, err := f.svc.Submit(ctx, student, f.assignment.ID, &dto.SubmissionRequest{Text: "on time"})
	require.NoError(t, err)
	f.clock.Advance(30 * time.Hour)
	_, _, err = f.svc.Submit(ctx, otherStudent, f.assignment.ID, &dto.SubmissionRequest{Text: "late"})
	require.NoError(t, err)

	_, err = f.svc.ListSubmissions(ctx, student, f.assignment.ID)
	assertCode(t, err, domain.CodePermissionDenied)

	subs, err := f.svc.ListSubmissions(ctx, instructor, f.assignment.ID)
	require.NoError(t, err)
	require.Len(t, subs.Submissions, 2)
	assert.Equal(t, student.UserID, subs.Submissions[0].StudentID)
	assert.False(t, subs.Submissions[0].IsLate)
	assert.True(t, subs.Submissions[1].IsLate)

	require.NoError(t, f.svc.DeleteAssignment(ctx, instructor, f.assignment.ID))
	_, err = f.svc.GetAssignment(ctx, instructor, f.assignment.ID)
	assertCode(t, err, domain.CodeAssignmentNotFound)
	left, _ := f.coursework.ListByAssignment(ctx, f.assignment.ID)
	assert.Empty(t, left)
}
