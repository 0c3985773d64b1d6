package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/masterroofing/sales-insights-service/internal/domain"
)

func taskDue(id string, due time.Time) domain.Task {
	return domain.Task{ID: id, DueOn: &due}
}

func TestBucketTasks_Classification(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)
	day := func(d int) time.Time { return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC) }

	done := taskDue("done", day(20))
	done.Completed = true

	tasks := []domain.Task{
		taskDue("due-today", day(15)),
		taskDue("in-five-days", day(20)),
		taskDue("in-ten-days", day(25)),
		{ID: "undated"},
		done,
		taskDue("overdue", day(10)),
	}

	board := BucketTasks(tasks, now)

	assert.Equal(t, []string{"due-today", "overdue"}, taskIDs(board.Today))
	assert.Equal(t, []string{"in-five-days"}, taskIDs(board.Upcoming))
	assert.Equal(t, []string{"in-ten-days", "undated"}, taskIDs(board.Later))
	assert.Equal(t, []string{"done"}, taskIDs(board.Completed))
}

func TestBucketTasks_SevenDayBoundary(t *testing.T) {
	now := time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)

	board := BucketTasks([]domain.Task{
		taskDue("day-seven", time.Date(2025, 6, 22, 0, 0, 0, 0, time.UTC)),
		taskDue("day-eight", time.Date(2025, 6, 23, 0, 0, 0, 0, time.UTC)),
	}, now)

	assert.Equal(t, []string{"day-seven"}, taskIDs(board.Upcoming))
	assert.Equal(t, []string{"day-eight"}, taskIDs(board.Later))
}

func TestBucketTasks_CompletedBeatsEverything(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	overdueDone := taskDue("overdue-done", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	overdueDone.Completed = true
	undatedDone := domain.Task{ID: "undated-done", Completed: true}

	board := BucketTasks([]domain.Task{overdueDone, undatedDone}, now)

	assert.Empty(t, board.Today)
	assert.Empty(t, board.Later)
	assert.Equal(t, []string{"overdue-done", "undated-done"}, taskIDs(board.Completed))
}

func TestBucketTasks_EmptyInput(t *testing.T) {
	board := BucketTasks(nil, time.Now())

	assert.Empty(t, board.Today)
	assert.Empty(t, board.Upcoming)
	assert.Empty(t, board.Later)
	assert.Empty(t, board.Completed)
}

func taskIDs(tasks []domain.Task) []string {
	ids := make([]string, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	return ids
}
