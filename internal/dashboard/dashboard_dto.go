package dashboard

type DashboardResponse struct {
	EmployeeCount     int64  `json:"employee_count"`
	AttendanceRecords int64  `json:"attendance_records"`
	TodayPresent      int64  `json:"today_present"`
	TodayAbsent       int64  `json:"today_absent"`
	TodayDate         string `json:"today_date"`
}
