package service

import "context"

// AdminStats aggregates per-entity totals for the admin dashboard.
type AdminStats struct {
	TotalDonors      int64 `json:"total_donors"`
	TotalRecipients  int64 `json:"total_recipients"`
	TotalVolunteers  int64 `json:"total_volunteers"`
	TotalRequests    int64 `json:"total_requests"`
	TotalDonations   int64 `json:"total_donations"`
	PendingRequests  int64 `json:"pending_requests"`
	PendingDonations int64 `json:"pending_donations"`
}

// AdminService exposes cross-entity aggregates. Status moderation itself is
// a passthrough to each entity service's UpdateStatus.
type AdminService interface {
	Stats(ctx context.Context) (*AdminStats, error)
}

type adminService struct {
	donors     DonorService
	recipients RecipientService
	volunteers VolunteerService
	requests   RequestService
	donations  DonationService
}

// NewAdminService constructs a new AdminService.
func NewAdminService(donors DonorService, recipients RecipientService, volunteers VolunteerService, requests RequestService, donations DonationService) AdminService {
	return &adminService{
		donors:     donors,
		recipients: recipients,
		volunteers: volunteers,
		requests:   requests,
		donations:  donations,
	}
}

func (s *adminService) Stats(ctx context.Context) (*AdminStats, error) {
	var (
		stats AdminStats
		err   error
	)
	if stats.TotalDonors, err = s.donors.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalRecipients, err = s.recipients.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalVolunteers, err = s.volunteers.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalRequests, err = s.requests.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalDonations, err = s.donations.Count(ctx); err != nil {
		return nil, err
	}
	if stats.PendingRequests, err = s.requests.CountByStatus(ctx, StatusPending); err != nil {
		return nil, err
	}
	if stats.PendingDonations, err = s.donations.CountByStatus(ctx, StatusPending); err != nil {
		return nil, err
	}
	return &stats, nil
}
