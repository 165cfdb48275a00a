package update

import (
	"fmt"
	"strings"
	"time"

	"github.com/sandeepkv93/regform/internal/model"
)

func levelFromError(isErr bool) string {
	if isErr {
		return "error"
	}
	return "info"
}

func (m *Model) notify(title, body, level string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	m.Notifications = append(m.Notifications, Notification{
		Title: title,
		Body:  body,
		Level: level,
		At:    time.Now().UTC(),
	})
	if len(m.Notifications) > m.notificationLimit {
		m.Notifications = m.Notifications[len(m.Notifications)-m.notificationLimit:]
	}
}

func activityDetail(e model.ActivityEntry) string {
	if e.TimeSlot == "" {
		return fmt.Sprintf("$%d", e.Cost)
	}
	return fmt.Sprintf("%s $%d", e.TimeSlot, e.Cost)
}

func clampIndex(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func wrapIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}

func indexOf(items []string, target string) int {
	for i, item := range items {
		if item == target {
			return i
		}
	}
	return -1
}
