package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"client_portal/internal/domain/entities"
	"client_portal/internal/usecase/interfaces"
)

var ErrNoFile = errors.New("proposal has no attached file")

// downloadLinkTTL is the fixed lifetime of issued download links.
const downloadLinkTTL = 15 * time.Minute

type CreateProposalInput struct {
	Title       string
	Description string
	Amount      float64
	Status      string
}

// DownloadLink is a signed, time-limited URL for a proposal document.
type DownloadLink struct {
	URL       string
	ExpiresIn int // seconds
}

type IProposalUseCase interface {
	List(ctx context.Context, clientID, status string, limit, offset int) (Page[*entities.Proposal], error)
	Get(ctx context.Context, clientID, id string) (*entities.Proposal, error)
	Create(ctx context.Context, clientID string, in CreateProposalInput) (*entities.Proposal, error)
	UpdateStatus(ctx context.Context, clientID, id, status string) error
	DownloadURL(ctx context.Context, clientID, id string) (DownloadLink, error)
	Delete(ctx context.Context, clientID, id string) error
}

type ProposalUseCase struct {
	proposals *ResourceAccessor[*entities.Proposal]
	files     interfaces.IFileStore
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(repo interfaces.ResourceRepository[*entities.Proposal], files interfaces.IFileStore) *ProposalUseCase {
	return &ProposalUseCase{proposals: NewResourceAccessor(repo), files: files}
}

func (u *ProposalUseCase) List(ctx context.Context, clientID, status string, limit, offset int) (Page[*entities.Proposal], error) {
	return u.proposals.List(ctx, clientID, status, limit, offset)
}

func (u *ProposalUseCase) Get(ctx context.Context, clientID, id string) (*entities.Proposal, error) {
	return u.proposals.Get(ctx, clientID, id)
}

func (u *ProposalUseCase) Create(ctx context.Context, clientID string, in CreateProposalInput) (*entities.Proposal, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" || in.Amount == 0 {
		return nil, ErrMissingFields
	}

	p := &entities.Proposal{
		Title:       in.Title,
		Description: in.Description,
		Amount:      in.Amount,
		Status:      entities.ProposalStatus(in.Status),
	}
	return u.proposals.Create(ctx, clientID, p)
}

func (u *ProposalUseCase) UpdateStatus(ctx context.Context, clientID, id, status string) error {
	if !(&entities.Proposal{}).ValidStatus(status) {
		return ErrInvalidStatus
	}

	_, err := u.proposals.Update(ctx, clientID, id, func(p *entities.Proposal) error {
		p.Status = entities.ProposalStatus(status)
		return nil
	})
	return err
}

// DownloadURL issues a signed link for the proposal's document. No side
// effect on the proposal record.
func (u *ProposalUseCase) DownloadURL(ctx context.Context, clientID, id string) (DownloadLink, error) {
	p, err := u.proposals.Get(ctx, clientID, id)
	if err != nil {
		return DownloadLink{}, err
	}
	if p.PDFKey == "" {
		return DownloadLink{}, ErrNoFile
	}

	url, err := u.files.SignedDownloadURL(ctx, p.PDFKey, downloadLinkTTL)
	if err != nil {
		return DownloadLink{}, err
	}
	return DownloadLink{URL: url, ExpiresIn: int(downloadLinkTTL.Seconds())}, nil
}

// Delete removes the proposal record; the attached file is cleaned up first
// on a best-effort basis. Record deletion is authoritative, so a failed file
// delete is logged and swallowed.
func (u *ProposalUseCase) Delete(ctx context.Context, clientID, id string) error {
	p, err := u.proposals.Get(ctx, clientID, id)
	if err != nil {
		return err
	}

	if p.PDFKey != "" {
		if err := u.files.Delete(ctx, p.PDFKey); err != nil {
			log.Printf("[proposal] failed to delete file %s: %v", p.PDFKey, err)
		}
	}

	return u.proposals.Delete(ctx, clientID, id)
}
