package insights

import (
	"time"

	"github.com/masterroofing/sales-insights-service/internal/domain"
)

// BucketTasks classifies each task independently against now:
// completed tasks go to Completed regardless of date, undated tasks default
// to Later (lowest urgency, not highest), tasks due within the next seven
// days go to Upcoming, and anything further out goes to Later. Tasks due
// today or already overdue land in Today, so overdue work stays visible on
// the board instead of falling through every column.
func BucketTasks(tasks []domain.Task, now time.Time) domain.Board {
	today := startOfDay(now)
	weekOut := today.AddDate(0, 0, 7)

	var board domain.Board
	for _, task := range tasks {
		switch {
		case task.Completed:
			board.Completed = append(board.Completed, task)
		case task.DueOn == nil:
			board.Later = append(board.Later, task)
		default:
			due := startOfDay(*task.DueOn)
			switch {
			case due.After(weekOut):
				board.Later = append(board.Later, task)
			case due.After(today):
				board.Upcoming = append(board.Upcoming, task)
			default:
				board.Today = append(board.Today, task)
			}
		}
	}
	return board
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
