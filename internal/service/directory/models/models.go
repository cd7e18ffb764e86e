package models

import (
	"time"

	"github.com/Wu-ChengLiang/TMC-BookingService/internal/domain"
	"github.com/Wu-ChengLiang/TMC-BookingService/pkg/types"
)

// Request модели

// CreateStoreRequest запрос на создание салона
type CreateStoreRequest struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	OpenTime  string `json:"openTime,omitempty"`  // "09:00", пусто = дефолт
	CloseTime string `json:"closeTime,omitempty"` // "21:00", пусто = дефолт
}

// UpdateStoreRequest запрос на обновление салона
type UpdateStoreRequest struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
}

// CreateTherapistRequest запрос на создание мастера
type CreateTherapistRequest struct {
	StoreID           int64    `json:"storeId"`
	Name              string   `json:"name"`
	Position          string   `json:"position"`
	YearsOfExperience int      `json:"yearsOfExperience"`
	Specialties       []string `json:"specialties"`
}

// UpdateTherapistRequest запрос на обновление мастера
type UpdateTherapistRequest struct {
	Name              string   `json:"name"`
	Position          string   `json:"position"`
	YearsOfExperience int      `json:"yearsOfExperience"`
	Specialties       []string `json:"specialties"`
}

// SetTherapistStatusRequest запрос на смену статуса мастера
type SetTherapistStatusRequest struct {
	Status string `json:"status"` // "active" | "inactive"
}

// Response модели

// StoreResponse представление салона
type StoreResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// StoreListResponse список салонов
type StoreListResponse struct {
	Stores []*StoreResponse `json:"stores"`
	Total  int              `json:"total"`
}

// TherapistResponse представление мастера
type TherapistResponse struct {
	ID                int64    `json:"id"`
	StoreID           int64    `json:"storeId"`
	Name              string   `json:"name"`
	Position          string   `json:"position"`
	YearsOfExperience int      `json:"yearsOfExperience"`
	Specialties       []string `json:"specialties"`
	Status            string   `json:"status"`
	CreatedAt         string   `json:"createdAt"`
	UpdatedAt         string   `json:"updatedAt"`
}

// TherapistListResponse список мастеров
type TherapistListResponse struct {
	Therapists []*TherapistResponse `json:"therapists"`
	Total      int                  `json:"total"`
}

// ToDomainStore конвертирует запрос в доменную модель
// Пустые рабочие часы заменяются дефолтным окном 09:00-21:00
func (r *CreateStoreRequest) ToDomainStore() (*domain.Store, error) {
	openTime := domain.DefaultOpenTime
	closeTime := domain.DefaultCloseTime

	if r.OpenTime != "" {
		parsed, err := types.NewTimeStringFromString(r.OpenTime)
		if err != nil {
			return nil, err
		}
		openTime = parsed
	}
	if r.CloseTime != "" {
		parsed, err := types.NewTimeStringFromString(r.CloseTime)
		if err != nil {
			return nil, err
		}
		closeTime = parsed
	}

	return &domain.Store{
		Name:      r.Name,
		Address:   r.Address,
		OpenTime:  openTime,
		CloseTime: closeTime,
	}, nil
}

// ToDomainTherapist конвертирует запрос в доменную модель
func (r *CreateTherapistRequest) ToDomainTherapist() *domain.Therapist {
	specialties := r.Specialties
	if specialties == nil {
		specialties = []string{}
	}

	return &domain.Therapist{
		StoreID:           r.StoreID,
		Name:              r.Name,
		Position:          r.Position,
		YearsOfExperience: r.YearsOfExperience,
		Specialties:       specialties,
		Status:            domain.TherapistActive,
	}
}

// FromDomainStore конвертирует доменную модель в ответ сервиса
func FromDomainStore(store *domain.Store) *StoreResponse {
	return &StoreResponse{
		ID:        store.ID,
		Name:      store.Name,
		Address:   store.Address,
		OpenTime:  store.OpenTime.String(),
		CloseTime: store.CloseTime.String(),
		CreatedAt: store.CreatedAt.Format(time.RFC3339),
		UpdatedAt: store.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainStoreList конвертирует список салонов
func FromDomainStoreList(stores []*domain.Store) *StoreListResponse {
	items := make([]*StoreResponse, len(stores))
	for i, store := range stores {
		items[i] = FromDomainStore(store)
	}
	return &StoreListResponse{Stores: items, Total: len(items)}
}

// FromDomainTherapist конвертирует доменную модель в ответ сервиса
func FromDomainTherapist(t *domain.Therapist) *TherapistResponse {
	return &TherapistResponse{
		ID:                t.ID,
		StoreID:           t.StoreID,
		Name:              t.Name,
		Position:          t.Position,
		YearsOfExperience: t.YearsOfExperience,
		Specialties:       t.Specialties,
		Status:            string(t.Status),
		CreatedAt:         t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         t.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainTherapistList конвертирует список мастеров
func FromDomainTherapistList(therapists []*domain.Therapist) *TherapistListResponse {
	items := make([]*TherapistResponse, len(therapists))
	for i, t := range therapists {
		items[i] = FromDomainTherapist(t)
	}
	return &TherapistListResponse{Therapists: items, Total: len(items)}
}
