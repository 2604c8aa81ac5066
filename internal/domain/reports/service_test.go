package reports

import (
	"testing"
	"time"

	"hrdash/internal/domain/core"
	"hrdash/internal/domain/leave"
	"hrdash/internal/domain/payroll"
	"hrdash/internal/domain/recruitment"
	"hrdash/internal/domain/tasks"
	"hrdash/internal/domain/timetracker"
	"hrdash/internal/store"
)

func TestBuildDashboard(t *testing.T) {
	now := time.Date(2025, 5, 2, 12, 0, 0, 0, time.UTC)
	ds := store.Dataset{
		Employees: []core.Employee{
			{ID: "E1", Status: core.EmployeeStatusActive},
			{ID: "E2", Status: core.EmployeeStatusInactive},
			{ID: "E3", Status: core.EmployeeStatusActive},
		},
		Attendance: []core.AttendanceRecord{
			{ID: "A1", EmployeeID: "E1", Date: now, Status: core.AttendanceLate},
			{ID: "A2", EmployeeID: "E1", Date: now.AddDate(0, 0, -1), Status: core.AttendanceOnTime},
			{ID: "A3", EmployeeID: "E3", Date: now, Status: core.AttendanceOnTime},
		},
		Applicants: []recruitment.Applicant{{ID: "P1", Stage: recruitment.StageOffer}},
		Payroll: []payroll.Entry{
			{ID: "R1", NetPay: 100, Status: payroll.StatusPaid},
			{ID: "R2", NetPay: 50, Status: payroll.StatusPending},
		},
		Tasks: []tasks.Task{
			{ID: "T1", DueDate: now.AddDate(0, 0, 2)},
			{ID: "T2", DueDate: now.AddDate(0, 0, 3)},
			{ID: "T3", DueDate: now.AddDate(0, 0, 4)},
			{ID: "T4", DueDate: now.AddDate(0, 0, 5)},
			{ID: "T5", DueDate: now.AddDate(0, 0, 6)},
		},
		DayOffRequests: []leave.DayOffRequest{
			{ID: "D1", Status: leave.StatusPending},
			{ID: "D2", Status: leave.StatusApproved},
		},
		TimeTrackers: []timetracker.Entry{
			{ID: "X1", Status: timetracker.StatusRunning},
			{ID: "X2", Status: timetracker.StatusCompleted},
		},
	}

	got := BuildDashboard(ds, now)

	if got.Headcount != 3 || got.ActiveEmployees != 2 {
		t.Fatalf("unexpected headcount %d active %d", got.Headcount, got.ActiveEmployees)
	}
	if len(got.TodayAttendance) != 3 {
		t.Fatalf("expected 3 attendance rows, got %d", len(got.TodayAttendance))
	}
	if got.TodayAttendance[0].Attendance == nil || got.TodayAttendance[0].Attendance.ID != "A1" {
		t.Fatalf("expected today's record for E1, got %+v", got.TodayAttendance[0].Attendance)
	}
	if got.TodayAttendance[1].Attendance != nil {
		t.Fatalf("expected no record for E2, got %+v", got.TodayAttendance[1].Attendance)
	}
	if got.LateToday != 1 {
		t.Fatalf("expected 1 late arrival, got %d", got.LateToday)
	}
	if len(got.UpcomingTasks) != 4 || got.UpcomingTasks[0].DaysLeft != 2 {
		t.Fatalf("unexpected upcoming tasks %+v", got.UpcomingTasks)
	}
	if got.ApplicantsByStage[recruitment.StageOffer] != 1 || got.ApplicantsByStage[recruitment.StageApplied] != 0 {
		t.Fatalf("unexpected stage counts %+v", got.ApplicantsByStage)
	}
	if got.PendingDayOff != 1 || got.RunningTrackers != 1 {
		t.Fatalf("unexpected pending %d running %d", got.PendingDayOff, got.RunningTrackers)
	}
	if got.Payroll.NetPay != 150 || got.Payroll.Paid != 1 || got.Payroll.Pending != 1 {
		t.Fatalf("unexpected payroll totals %+v", got.Payroll)
	}
}

func TestBuildDashboardEmptyDataset(t *testing.T) {
	got := BuildDashboard(store.Dataset{}, time.Now())
	if got.Headcount != 0 || len(got.TodayAttendance) != 0 || len(got.UpcomingTasks) != 0 {
		t.Fatalf("expected empty dashboard, got %+v", got)
	}
}
