package services

import (
	"easylife_backend/internal/models"
	"easylife_backend/internal/repositories"
	"easylife_backend/internal/services/dto"
	"easylife_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type InquiryService interface {
	Create(db *gorm.DB, customerID string, req *dto.CreateInquiryRequest) (*dto.InquiryResponse, error)
	ListForCustomer(db *gorm.DB, customerID string, page, pageSize int) (*dto.InquiryListResponse, error)
	ListForBusiness(db *gorm.DB, sellerID, businessID string, page, pageSize int) (*dto.InquiryListResponse, error)
	Respond(db *gorm.DB, sellerID, inquiryID string, req *dto.RespondInquiryRequest) (*dto.InquiryResponse, error)
	UpdateStatus(db *gorm.DB, sellerID, inquiryID string, req *dto.UpdateInquiryStatusRequest) (*dto.InquiryResponse, error)

	// Leads
	CreateLead(db *gorm.DB, sellerID string, req *dto.CreateLeadRequest) (*dto.LeadResponse, error)
	ListLeads(db *gorm.DB, sellerID, businessID string, page, pageSize int) (*dto.LeadListResponse, error)
	UpdateLeadStatus(db *gorm.DB, sellerID, leadID string, req *dto.UpdateLeadStatusRequest) (*dto.LeadResponse, error)
}

type inquiryService struct {
	inquiryRepo      repositories.InquiryRepository
	businessRepo     repositories.BusinessRepository
	notificationRepo repositories.NotificationRepository
}

func NewInquiryService(
	inquiryRepo repositories.InquiryRepository,
	businessRepo repositories.BusinessRepository,
	notificationRepo repositories.NotificationRepository,
) InquiryService {
	return &inquiryService{
		inquiryRepo:      inquiryRepo,
		businessRepo:     businessRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *inquiryService) Create(db *gorm.DB, customerID string, req *dto.CreateInquiryRequest) (*dto.InquiryResponse, error) {
	business, err := s.businessRepo.FindByID(db, req.BusinessID)
	if err != nil {
		if err == repositories.ErrBusinessNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}

	inquiry := &models.Inquiry{
		BusinessID: req.BusinessID,
		CustomerID: customerID,
		Subject:    req.Subject,
		Message:    req.Message,
		Status:     models.InquiryStatusOpen,
	}
	if err := s.inquiryRepo.Create(db, inquiry); err != nil {
		return nil, err
	}

	notification := &models.Notification{
		UserID:  business.OwnerID,
		Type:    "inquiry_created",
		Title:   "New inquiry",
		Message: req.Subject,
	}
	_ = s.notificationRepo.Create(db, notification)

	inquiry.Business = *business
	return buildInquiryResponse(inquiry), nil
}

func (s *inquiryService) ListForCustomer(db *gorm.DB, customerID string, page, pageSize int) (*dto.InquiryListResponse, error) {
	page, pageSize = normalizePage(page, pageSize)

	inquiries, total, err := s.inquiryRepo.ListByCustomer(db, customerID, page, pageSize)
	if err != nil {
		return nil, err
	}
	return buildInquiryListResponse(inquiries, total, page, pageSize), nil
}

func (s *inquiryService) ListForBusiness(db *gorm.DB, sellerID, businessID string, page, pageSize int) (*dto.InquiryListResponse, error) {
	if err := s.authorizeBusiness(db, sellerID, businessID); err != nil {
		return nil, err
	}
	page, pageSize = normalizePage(page, pageSize)

	inquiries, total, err := s.inquiryRepo.ListByBusiness(db, businessID, page, pageSize)
	if err != nil {
		return nil, err
	}
	return buildInquiryListResponse(inquiries, total, page, pageSize), nil
}

func (s *inquiryService) Respond(db *gorm.DB, sellerID, inquiryID string, req *dto.RespondInquiryRequest) (*dto.InquiryResponse, error) {
	inquiry, err := s.loadSellerInquiry(db, sellerID, inquiryID)
	if err != nil {
		return nil, err
	}

	inquiry.Response = req.Response
	inquiry.Status = models.InquiryStatusResponded
	if err := s.inquiryRepo.Update(db, inquiry); err != nil {
		return nil, err
	}

	notification := &models.Notification{
		UserID:  inquiry.CustomerID,
		Type:    "inquiry_responded",
		Title:   "Inquiry answered",
		Message: inquiry.Subject,
	}
	_ = s.notificationRepo.Create(db, notification)

	return buildInquiryResponse(inquiry), nil
}

func (s *inquiryService) UpdateStatus(db *gorm.DB, sellerID, inquiryID string, req *dto.UpdateInquiryStatusRequest) (*dto.InquiryResponse, error) {
	inquiry, err := s.loadSellerInquiry(db, sellerID, inquiryID)
	if err != nil {
		return nil, err
	}

	inquiry.Status = models.InquiryStatus(req.Status)
	if err := s.inquiryRepo.Update(db, inquiry); err != nil {
		return nil, err
	}
	return buildInquiryResponse(inquiry), nil
}

func (s *inquiryService) CreateLead(db *gorm.DB, sellerID string, req *dto.CreateLeadRequest) (*dto.LeadResponse, error) {
	if err := s.authorizeBusiness(db, sellerID, req.BusinessID); err != nil {
		return nil, err
	}

	lead := &models.Lead{
		BusinessID: req.BusinessID,
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		Source:     req.Source,
		Notes:      req.Notes,
		Status:     models.LeadStatusNew,
	}
	if err := s.inquiryRepo.CreateLead(db, lead); err != nil {
		return nil, err
	}
	return buildLeadResponse(lead), nil
}

func (s *inquiryService) ListLeads(db *gorm.DB, sellerID, businessID string, page, pageSize int) (*dto.LeadListResponse, error) {
	if err := s.authorizeBusiness(db, sellerID, businessID); err != nil {
		return nil, err
	}
	page, pageSize = normalizePage(page, pageSize)

	leads, total, err := s.inquiryRepo.ListLeadsByBusiness(db, businessID, page, pageSize)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.LeadResponse, 0, len(leads))
	for i := range leads {
		responses = append(responses, buildLeadResponse(&leads[i]))
	}
	return &dto.LeadListResponse{
		Leads: responses,
		Pagination: dto.Pagination{
			Page:     page,
			PageSize: pageSize,
			Total:    total,
		},
	}, nil
}

func (s *inquiryService) UpdateLeadStatus(db *gorm.DB, sellerID, leadID string, req *dto.UpdateLeadStatusRequest) (*dto.LeadResponse, error) {
	lead, err := s.inquiryRepo.FindLeadByID(db, leadID)
	if err != nil {
		if err == repositories.ErrLeadNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}

	if err := s.authorizeBusiness(db, sellerID, lead.BusinessID); err != nil {
		return nil, err
	}

	lead.Status = models.LeadStatus(req.Status)
	if err := s.inquiryRepo.UpdateLead(db, lead); err != nil {
		return nil, err
	}
	return buildLeadResponse(lead), nil
}

func (s *inquiryService) loadSellerInquiry(db *gorm.DB, sellerID, inquiryID string) (*models.Inquiry, error) {
	inquiry, err := s.inquiryRepo.FindByID(db, inquiryID)
	if err != nil {
		if err == repositories.ErrInquiryNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}
	if inquiry.Business.OwnerID != sellerID {
		return nil, apperrors.ErrBusinessAccessDenied
	}
	return inquiry, nil
}

func (s *inquiryService) authorizeBusiness(db *gorm.DB, sellerID, businessID string) error {
	business, err := s.businessRepo.FindByID(db, businessID)
	if err != nil {
		if err == repositories.ErrBusinessNotFound {
			return apperrors.ErrNotFound(err)
		}
		return err
	}
	if business.OwnerID != sellerID {
		return apperrors.ErrBusinessAccessDenied
	}
	return nil
}

func normalizePage(page, pageSize int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	return page, pageSize
}

func buildInquiryResponse(inquiry *models.Inquiry) *dto.InquiryResponse {
	return &dto.InquiryResponse{
		ID:           inquiry.ID,
		BusinessID:   inquiry.BusinessID,
		BusinessName: inquiry.Business.Name,
		CustomerID:   inquiry.CustomerID,
		Subject:      inquiry.Subject,
		Message:      inquiry.Message,
		Status:       string(inquiry.Status),
		Response:     inquiry.Response,
		CreatedAt:    inquiry.CreatedAt,
	}
}

func buildInquiryListResponse(inquiries []models.Inquiry, total int64, page, pageSize int) *dto.InquiryListResponse {
	responses := make([]*dto.InquiryResponse, 0, len(inquiries))
	for i := range inquiries {
		responses = append(responses, buildInquiryResponse(&inquiries[i]))
	}
	return &dto.InquiryListResponse{
		Inquiries: responses,
		Pagination: dto.Pagination{
			Page:     page,
			PageSize: pageSize,
			Total:    total,
		},
	}
}

func buildLeadResponse(lead *models.Lead) *dto.LeadResponse {
	return &dto.LeadResponse{
		ID:         lead.ID,
		BusinessID: lead.BusinessID,
		Name:       lead.Name,
		Phone:      lead.Phone,
		Email:      lead.Email,
		Source:     lead.Source,
		Status:     string(lead.Status),
		Notes:      lead.Notes,
		CreatedAt:  lead.CreatedAt,
	}
}
