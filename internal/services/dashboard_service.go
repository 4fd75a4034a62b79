package services

import (
	"log"
	"time"

	"gymdesk/internal/apperrors"
	"gymdesk/internal/models"
	"gymdesk/internal/repositories"
)

// DashboardStats is the aggregate block of the admin dashboard.
type DashboardStats struct {
	TotalMembers    int64   `json:"total_members"`
	TotalTrainers   int64   `json:"total_trainers"`
	Revenue         float64 `json:"revenue"`
	OpenComplaints  int64   `json:"open_complaints"`
	PendingSessions int64   `json:"pending_sessions"`
}

// DashboardReport is the full admin-dashboard payload.
type DashboardReport struct {
	Period            string             `json:"period"`
	Stats             DashboardStats     `json:"stats"`
	RecentActivity    []models.User      `json:"recent_activity"`
	PendingComplaints []models.Complaint `json:"pending_complaints"`
}

// DashboardService aggregates admin-dashboard figures. Revenue comes from real
// payment rows for the selected period, not estimated multipliers.
type DashboardService struct {
	userRepo      repositories.UserRepository
	complaintRepo repositories.ComplaintRepository
	sessionRepo   repositories.SessionRequestRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(userRepo repositories.UserRepository, complaintRepo repositories.ComplaintRepository, sessionRepo repositories.SessionRequestRepository) *DashboardService {
	return &DashboardService{
		userRepo:      userRepo,
		complaintRepo: complaintRepo,
		sessionRepo:   sessionRepo,
	}
}

// Report builds the dashboard for the given period (day, week or month; empty
// defaults to month). Each failing aggregate degrades to its zero value so the
// dashboard page never hard-fails on a single bad query.
func (s *DashboardService) Report(period string) (*DashboardReport, error) {
	var since time.Time
	now := time.Now()
	switch period {
	case "day":
		since = now.AddDate(0, 0, -1)
	case "week":
		since = now.AddDate(0, 0, -7)
	case "month", "":
		period = "month"
		since = now.AddDate(0, -1, 0)
	default:
		return nil, apperrors.New("INVALID_PERIOD", "period must be day, week or month", 400)
	}

	report := &DashboardReport{Period: period}

	if count, err := s.userRepo.CountByRole(models.RoleMember); err != nil {
		log.Printf("Dashboard: member count failed: %v", err)
	} else {
		report.Stats.TotalMembers = count
	}
	if count, err := s.userRepo.CountByRole(models.RoleTrainer); err != nil {
		log.Printf("Dashboard: trainer count failed: %v", err)
	} else {
		report.Stats.TotalTrainers = count
	}
	if revenue, err := s.userRepo.SumPaymentsSince(since); err != nil {
		log.Printf("Dashboard: revenue sum failed: %v", err)
	} else {
		report.Stats.Revenue = revenue
	}
	if count, err := s.complaintRepo.CountByStatus(models.ComplaintOpen); err != nil {
		log.Printf("Dashboard: complaint count failed: %v", err)
	} else {
		report.Stats.OpenComplaints = count
	}
	if count, err := s.sessionRepo.CountByStatus(models.SessionPending); err != nil {
		log.Printf("Dashboard: session count failed: %v", err)
	} else {
		report.Stats.PendingSessions = count
	}

	if recent, err := s.userRepo.ListRecent(10); err != nil {
		log.Printf("Dashboard: recent users failed: %v", err)
		report.RecentActivity = []models.User{}
	} else {
		report.RecentActivity = recent
	}

	report.PendingComplaints = []models.Complaint{}
	if complaints, err := s.complaintRepo.List(); err != nil {
		log.Printf("Dashboard: pending complaints failed: %v", err)
	} else {
		for _, complaint := range complaints {
			if complaint.Status == models.ComplaintOpen || complaint.Status == models.ComplaintInReview {
				report.PendingComplaints = append(report.PendingComplaints, complaint)
			}
		}
	}

	return report, nil
}
