package http

import (
	"github.com/havenlet/leasing/internal/leasing/domain"
	"github.com/havenlet/leasing/pkg/leasingapi"
)

func toUserResponse(u domain.User) leasingapi.UserResponse {
	return leasingapi.UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
		Role:  string(u.Role),
	}
}

func toListingResponse(l domain.Listing) leasingapi.ListingResponse {
	return leasingapi.ListingResponse{
		ID:            l.ID,
		LandlordID:    l.LandlordID,
		Title:         l.Title,
		Address:       l.Address,
		City:          l.City,
		State:         l.State,
		PostalCode:    l.PostalCode,
		Bedrooms:      l.Bedrooms,
		Bathrooms:     l.Bathrooms,
		RentAmount:    l.RentAmount,
		DepositAmount: l.DepositAmount,
		Status:        string(l.Status),
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}

func toListingResponses(ls []domain.Listing) []leasingapi.ListingResponse {
	out := make([]leasingapi.ListingResponse, 0, len(ls))
	for _, l := range ls {
		out = append(out, toListingResponse(l))
	}
	return out
}

func toApplicationResponse(a domain.Application) leasingapi.ApplicationResponse {
	resp := leasingapi.ApplicationResponse{
		ID:             a.ID,
		PublicID:       a.PublicID,
		ListingID:      a.ListingID,
		LandlordID:     a.LandlordID,
		TenantID:       a.TenantID,
		ApplicantName:  a.ApplicantName,
		ApplicantEmail: a.ApplicantEmail,
		ApplicantPhone: a.ApplicantPhone,
		MoveInDate:     a.MoveInDate,
		Status:         string(a.Status),
		ExpiresAt:      a.ExpiresAt,
		LeaseID:        a.LeaseID,
		ReviewedBy:     a.ReviewedBy,
		ReviewedAt:     a.ReviewedAt,
		DecisionNotes:  a.DecisionNotes,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
	for _, e := range a.Employment {
		resp.Employment = append(resp.Employment, leasingapi.EmploymentResponse{
			ID:            e.ID,
			Employer:      e.Employer,
			Position:      e.Position,
			MonthlyIncome: e.MonthlyIncome,
			StartDate:     e.StartDate,
			EndDate:       e.EndDate,
		})
	}
	return resp
}

func toPublicApplicationResponse(a domain.Application) leasingapi.PublicApplicationResponse {
	resp := leasingapi.PublicApplicationResponse{
		PublicID:       a.PublicID,
		ListingID:      a.ListingID,
		ApplicantName:  a.ApplicantName,
		ApplicantEmail: a.ApplicantEmail,
		ApplicantPhone: a.ApplicantPhone,
		MoveInDate:     a.MoveInDate,
		Status:         string(a.Status),
		ExpiresAt:      a.ExpiresAt,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
	for _, e := range a.Employment {
		resp.Employment = append(resp.Employment, leasingapi.EmploymentResponse{
			ID:            e.ID,
			Employer:      e.Employer,
			Position:      e.Position,
			MonthlyIncome: e.MonthlyIncome,
			StartDate:     e.StartDate,
			EndDate:       e.EndDate,
		})
	}
	return resp
}

func toApplicationResponses(as []domain.Application) []leasingapi.ApplicationResponse {
	out := make([]leasingapi.ApplicationResponse, 0, len(as))
	for _, a := range as {
		out = append(out, toApplicationResponse(a))
	}
	return out
}

func toLeaseResponse(l domain.Lease) leasingapi.LeaseResponse {
	return leasingapi.LeaseResponse{
		ID:                l.ID,
		Type:              string(l.Type),
		LandlordID:        l.LandlordID,
		TenantID:          l.TenantID,
		ListingID:         l.ListingID,
		Status:            string(l.Status),
		StartDate:         l.StartDate,
		EndDate:           l.EndDate,
		RentAmount:        l.RentAmount,
		DepositAmount:     l.DepositAmount,
		DocumentURL:       l.DocumentURL,
		TerminationDate:   l.TerminationDate,
		TerminationReason: l.TerminationReason,
		TerminationNotes:  l.TerminationNotes,
		TerminatedBy:      l.TerminatedBy,
		CreatedAt:         l.CreatedAt,
		UpdatedAt:         l.UpdatedAt,
	}
}

func toLeaseResponses(ls []domain.Lease) []leasingapi.LeaseResponse {
	out := make([]leasingapi.LeaseResponse, 0, len(ls))
	for _, l := range ls {
		out = append(out, toLeaseResponse(l))
	}
	return out
}

func toMaintenanceResponse(m domain.MaintenanceRequest) leasingapi.MaintenanceResponse {
	return leasingapi.MaintenanceResponse{
		ID:          m.ID,
		ListingID:   m.ListingID,
		LandlordID:  m.LandlordID,
		Title:       m.Title,
		Description: m.Description,
		Status:      string(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toInvoiceResponse(i domain.Invoice) leasingapi.InvoiceResponse {
	return leasingapi.InvoiceResponse{
		ID:                   i.ID,
		MaintenanceRequestID: i.MaintenanceRequestID,
		PaymentID:            i.PaymentID,
		LandlordID:           i.LandlordID,
		Description:          i.Description,
		Amount:               i.Amount,
		Status:               string(i.Status),
		SharedWithTenant:     i.SharedWithTenant,
		CreatedAt:            i.CreatedAt,
		UpdatedAt:            i.UpdatedAt,
	}
}

func toInvoiceResponses(is []domain.Invoice) []leasingapi.InvoiceResponse {
	out := make([]leasingapi.InvoiceResponse, 0, len(is))
	for _, i := range is {
		out = append(out, toInvoiceResponse(i))
	}
	return out
}

func toPaymentResponses(ps []domain.Payment) []leasingapi.PaymentResponse {
	out := make([]leasingapi.PaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, leasingapi.PaymentResponse{
			ID:         p.ID,
			TenantID:   p.TenantID,
			LandlordID: p.LandlordID,
			ListingID:  p.ListingID,
			Type:       string(p.Type),
			Status:     string(p.Status),
			Amount:     p.Amount,
			PaidDate:   p.PaidDate,
			CreatedAt:  p.CreatedAt,
			UpdatedAt:  p.UpdatedAt,
		})
	}
	return out
}
