package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/LieTttv/PDVomnierp-sub000/internal/application/dto"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/repository"
)

// NoticeUseCase avisos de la casa matriz: HQ publica, las tiendas leen.
type NoticeUseCase struct {
	noticeRepo repository.NoticeRepository
}

// NewNoticeUseCase construye el caso de uso.
func NewNoticeUseCase(noticeRepo repository.NoticeRepository) *NoticeUseCase {
	return &NoticeUseCase{noticeRepo: noticeRepo}
}

// Publish crea un aviso (solo HQ).
func (uc *NoticeUseCase) Publish(in dto.CreateNoticeRequest) (*dto.NoticeResponse, error) {
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	n := &entity.Notice{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Body:        in.Body,
		PublishedAt: now,
		CreatedAt:   now,
	}
	if err := uc.noticeRepo.Create(n); err != nil {
		return nil, err
	}
	return toNoticeResponse(n), nil
}

// List lista los avisos publicados (visible para todas las tiendas).
func (uc *NoticeUseCase) List(page dto.PageRequest) ([]*dto.NoticeResponse, error) {
	page.DefaultPage()
	list, err := uc.noticeRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.NoticeResponse, 0, len(list))
	for _, n := range list {
		out = append(out, toNoticeResponse(n))
	}
	return out, nil
}

func toNoticeResponse(n *entity.Notice) *dto.NoticeResponse {
	return &dto.NoticeResponse{
		ID:          n.ID,
		Title:       n.Title,
		Body:        n.Body,
		PublishedAt: n.PublishedAt.Format(time.RFC3339),
	}
}
