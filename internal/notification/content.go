package notification

import (
	"fmt"
	"math/rand"

	"chomper-backend/internal/notification/domain"
)

// motivationalMessages is shown when the user has tasks due today.
var motivationalMessages = []string{
	"Let's chomp through your tasks today!",
	"Your monster is hungry for completed tasks!",
	"Time to be productive and feed Chomper!",
	"Ready to crush it? Your tasks are waiting!",
	"Another day, another chance to be awesome!",
	"Let's make today count - Chomper believes in you!",
	"Rise and grind! Your monster needs feeding!",
	"Today is a fresh start - let's get chomping!",
}

// restDayMessages is shown when nothing is due.
var restDayMessages = []string{
	"No tasks today! Maybe add some or enjoy a well-deserved rest.",
	"Your task list is clear! Take it easy or plan something new.",
	"Chomper's taking a nap - no tasks to chomp today!",
	"Empty to-do list? Either you're super organized or it's rest day!",
	"Nothing on the agenda - treat yourself today!",
	"All clear! Enjoy the freedom or plan your next adventure.",
}

// ContentForCount builds the daily notification payload for a given
// due-today task count.
func ContentForCount(taskCount int) domain.Payload {
	switch {
	case taskCount == 0:
		return domain.Payload{
			Title: "Good Morning!",
			Body:  restDayMessages[rand.Intn(len(restDayMessages))],
			URL:   "/",
		}
	case taskCount == 1:
		return domain.Payload{
			Title: "1 Task Today!",
			Body:  motivationalMessages[rand.Intn(len(motivationalMessages))],
			URL:   "/",
		}
	default:
		return domain.Payload{
			Title: fmt.Sprintf("%d Tasks Today!", taskCount),
			Body:  motivationalMessages[rand.Intn(len(motivationalMessages))],
			URL:   "/",
		}
	}
}
