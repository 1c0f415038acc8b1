package service

import (
	"fmt"
	"time"

	"cleanouts/internal/db"
	"cleanouts/internal/entities"
	"cleanouts/internal/logger"
	"cleanouts/internal/quote"
	"cleanouts/internal/repository"
)

type InquiryStore interface {
	CreateInquiry(iq *db.Inquiry) error
}

type InquiryNotifier interface {
	SendInquiryAlert(kind, name, email, summary string)
}

type QuoteService struct {
	Repo   InquiryStore
	sender InquiryNotifier
	log    *logger.Logger
}

func NewQuoteService(repo InquiryStore, sender InquiryNotifier, log *logger.Logger) *QuoteService {
	return &QuoteService{Repo: repo, sender: sender, log: log}
}

// BuildQuote runs the pure estimator and composes the display strings.
// Input presence and positivity are the handler's responsibility.
func (s *QuoteService) BuildQuote(req entities.QuoteFormRequest) *entities.QuoteResponse {
	propertyType := quote.ParsePropertyType(req.PropertyType)
	amount := quote.Estimate(req.SquareFootage, propertyType, req.HasHazard, req.HasLawn)
	return &entities.QuoteResponse{
		Amount:   amount,
		Estimate: quote.FormatUSD(amount),
		Details:  quote.DetailLines(req.HasHazard, req.HasLawn),
	}
}

// SubmitQuote estimates, records the request, and alerts the business
// inbox. The alert is best-effort; persistence failures are returned.
func (s *QuoteService) SubmitQuote(req entities.QuoteFormRequest) (*entities.QuoteResponse, error) {
	resp := s.BuildQuote(req)

	iq := &db.Inquiry{
		Kind:            repository.InquiryKindQuote,
		Name:            req.Name,
		Email:           req.Email,
		PropertyType:    string(quote.ParsePropertyType(req.PropertyType)),
		SquareFootage:   req.SquareFootage,
		HasHazard:       req.HasHazard,
		HasLawn:         req.HasLawn,
		EstimatedAmount: resp.Amount,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.Repo.CreateInquiry(iq); err != nil {
		s.log.Errorw("recording quote request failed", "email", req.Email, "err", err)
		return nil, err
	}

	summary := fmt.Sprintf("%s requested a quote: %.0f sq ft, %s property, estimated %s.",
		req.Name, req.SquareFootage, iq.PropertyType, resp.Estimate)
	s.sender.SendInquiryAlert(repository.InquiryKindQuote, req.Name, req.Email, summary)

	s.log.Infow("quote request received", "email", req.Email, "estimate", resp.Estimate)
	return resp, nil
}

// Rates exposes the pricing policy for the site's rate table.
func (s *QuoteService) Rates() entities.RatesResponse {
	ordered := []quote.PropertyType{
		quote.PropertyResidential,
		quote.PropertyCommercial,
		quote.PropertyAbandoned,
		quote.PropertyConstruction,
	}
	multipliers := quote.Multipliers()

	lines := make([]entities.RateLine, 0, len(ordered))
	for _, pt := range ordered {
		lines = append(lines, entities.RateLine{
			PropertyType: string(pt),
			Multiplier:   multipliers[pt],
		})
	}

	return entities.RatesResponse{
		BaseRatePerSquareFoot: quote.BaseRatePerSquareFoot,
		Multipliers:           lines,
		HazardSurcharge:       quote.HazardSurcharge,
		LawnPromoSurcharge:    quote.LawnPromoSurcharge,
		Disclaimer:            quote.Disclaimer,
	}
}
