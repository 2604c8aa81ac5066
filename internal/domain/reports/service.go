package reports

import (
	"time"

	"hrdash/internal/domain/core"
	"hrdash/internal/domain/leave"
	"hrdash/internal/domain/payroll"
	"hrdash/internal/domain/recruitment"
	"hrdash/internal/domain/tasks"
	"hrdash/internal/domain/timetracker"
	"hrdash/internal/store"
)

const (
	dashboardEmployees = 6
	dashboardTasks     = 4
)

type EmployeeAttendance struct {
	Employee   core.Employee          `json:"employee"`
	Attendance *core.AttendanceRecord `json:"attendance,omitempty"`
}

type TaskDue struct {
	tasks.Task
	DaysLeft int `json:"daysLeft"`
}

type Dashboard struct {
	GeneratedAt       time.Time                 `json:"generatedAt"`
	Headcount         int                       `json:"headcount"`
	ActiveEmployees   int                       `json:"activeEmployees"`
	TodayAttendance   []EmployeeAttendance      `json:"todayAttendance"`
	LateToday         int                       `json:"lateToday"`
	UpcomingTasks     []TaskDue                 `json:"upcomingTasks"`
	ApplicantsByStage map[recruitment.Stage]int `json:"applicantsByStage"`
	PendingDayOff     int                       `json:"pendingDayOff"`
	RunningTrackers   int                       `json:"runningTrackers"`
	Payroll           payroll.Totals            `json:"payroll"`
}

// BuildDashboard derives the dashboard summary from a dataset snapshot.
func BuildDashboard(ds store.Dataset, now time.Time) Dashboard {
	out := Dashboard{
		GeneratedAt:       now,
		Headcount:         len(ds.Employees),
		ApplicantsByStage: recruitment.CountByStage(ds.Applicants),
		RunningTrackers:   len(timetracker.FilterByStatus(ds.TimeTrackers, timetracker.StatusRunning)),
		Payroll:           payroll.Summarize(ds.Payroll),
	}
	for _, emp := range ds.Employees {
		if emp.Status == core.EmployeeStatusActive {
			out.ActiveEmployees++
		}
	}

	today := core.AttendanceForDay(ds.Attendance, now)
	for _, rec := range today {
		if rec.Status == core.AttendanceLate {
			out.LateToday++
		}
	}
	byEmployee := core.AttendanceByEmployee(today)
	out.TodayAttendance = make([]EmployeeAttendance, 0, dashboardEmployees)
	for _, emp := range head(ds.Employees, dashboardEmployees) {
		row := EmployeeAttendance{Employee: emp}
		if rec, ok := byEmployee[emp.ID]; ok {
			row.Attendance = &rec
		}
		out.TodayAttendance = append(out.TodayAttendance, row)
	}

	out.UpcomingTasks = WithDaysLeft(head(ds.Tasks, dashboardTasks), now)

	for _, req := range ds.DayOffRequests {
		if req.Status == leave.StatusPending {
			out.PendingDayOff++
		}
	}
	return out
}

// WithDaysLeft pairs each task with its whole days remaining at now.
func WithDaysLeft(list []tasks.Task, now time.Time) []TaskDue {
	out := make([]TaskDue, 0, len(list))
	for _, task := range list {
		out = append(out, TaskDue{Task: task, DaysLeft: tasks.DaysLeft(task.DueDate, now)})
	}
	return out
}

func head[T any](list []T, n int) []T {
	if len(list) < n {
		return list
	}
	return list[:n]
}
