// Package models содержит типы черновиков редактирования профиля.
//
// Каждая редактируемая секция профиля представлена отдельным вариантом
// черновика, несущим только свои поля. Черновик инициализируется из
// текущей записи, правится независимо от неё и при сохранении заменяет
// соответствующие поля записи целиком.
package models

import (
	"encoding/json"
	"fmt"
)

// SectionKey ключ редактируемой секции профиля.
type SectionKey string

// Допустимые секции профиля.
const (
	SectionDescription SectionKey = "description"
	SectionServices    SectionKey = "services"
	SectionGallery     SectionKey = "gallery"
	SectionPricing     SectionKey = "pricing"
	SectionContact     SectionKey = "contact"
	SectionLocation    SectionKey = "location"
)

// Valid сообщает, известна ли секция.
func (k SectionKey) Valid() bool {
	switch k {
	case SectionDescription, SectionServices, SectionGallery,
		SectionPricing, SectionContact, SectionLocation:
		return true
	}
	return false
}

// IsList сообщает, является ли секция списковой (поэлементные операции).
func (k SectionKey) IsList() bool {
	return k == SectionServices || k == SectionGallery
}

// Draft черновик одной секции профиля. Apply заменяет поля своей секции
// на записи; остальные поля записи не затрагиваются.
type Draft interface {
	Section() SectionKey
	Apply(p *Professional)
}

// ListDraft черновик списковой секции с доступом к элементам.
type ListDraft interface {
	Draft
	Items() []string
	SetItems(items []string)
}

// DescriptionDraft черновик секции описания.
type DescriptionDraft struct {
	Description string `json:"description"`
}

// Section реализует Draft.
func (d *DescriptionDraft) Section() SectionKey { return SectionDescription }

// Apply реализует Draft.
func (d *DescriptionDraft) Apply(p *Professional) { p.Description = d.Description }

// ServicesDraft черновик списка услуг.
type ServicesDraft struct {
	Services []string `json:"services"`
}

// Section реализует Draft.
func (d *ServicesDraft) Section() SectionKey { return SectionServices }

// Apply реализует Draft.
func (d *ServicesDraft) Apply(p *Professional) { p.Services = d.Services }

// Items реализует ListDraft.
func (d *ServicesDraft) Items() []string { return d.Services }

// SetItems реализует ListDraft.
func (d *ServicesDraft) SetItems(items []string) { d.Services = items }

// GalleryDraft черновик галереи изображений.
type GalleryDraft struct {
	Gallery []string `json:"gallery"`
}

// Section реализует Draft.
func (d *GalleryDraft) Section() SectionKey { return SectionGallery }

// Apply реализует Draft.
func (d *GalleryDraft) Apply(p *Professional) { p.Gallery = d.Gallery }

// Items реализует ListDraft.
func (d *GalleryDraft) Items() []string { return d.Gallery }

// SetItems реализует ListDraft.
func (d *GalleryDraft) SetItems(items []string) { d.Gallery = items }

// PricingDraft черновик тарифного диапазона.
type PricingDraft struct {
	Rate Rate `json:"rate"`
}

// Section реализует Draft.
func (d *PricingDraft) Section() SectionKey { return SectionPricing }

// Apply реализует Draft.
func (d *PricingDraft) Apply(p *Professional) { p.Rate = d.Rate }

// ContactDraft черновик контактных данных.
type ContactDraft struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Section реализует Draft.
func (d *ContactDraft) Section() SectionKey { return SectionContact }

// Apply реализует Draft.
func (d *ContactDraft) Apply(p *Professional) {
	p.Phone = d.Phone
	p.Email = d.Email
}

// LocationDraft черновик местоположения. Адрес и координаты могут быть
// перезаписаны выбором кандидата из поиска адресов.
type LocationDraft struct {
	Location Location `json:"location"`
}

// Section реализует Draft.
func (d *LocationDraft) Section() SectionKey { return SectionLocation }

// Apply реализует Draft.
func (d *LocationDraft) Apply(p *Professional) { p.Location = d.Location }

// NewDraft создает черновик секции, инициализированный из текущей записи.
// Для списковых секций nil заменяется на пустой срез.
func NewDraft(section SectionKey, p *Professional) (Draft, error) {
	switch section {
	case SectionDescription:
		return &DescriptionDraft{Description: p.Description}, nil
	case SectionServices:
		return &ServicesDraft{Services: cloneOrEmpty(p.Services)}, nil
	case SectionGallery:
		return &GalleryDraft{Gallery: cloneOrEmpty(p.Gallery)}, nil
	case SectionPricing:
		return &PricingDraft{Rate: p.Rate}, nil
	case SectionContact:
		return &ContactDraft{Phone: p.Phone, Email: p.Email}, nil
	case SectionLocation:
		return &LocationDraft{Location: p.Location}, nil
	default:
		return nil, fmt.Errorf("unknown profile section: %q", section)
	}
}

func cloneOrEmpty(items []string) []string {
	out := make([]string, len(items))
	copy(out, items)
	return out
}

// DraftEnvelope сериализуемая обёртка черновика: ключ секции плюс
// полезная нагрузка соответствующего варианта.
type DraftEnvelope struct {
	Section SectionKey      `json:"section"`
	Data    json.RawMessage `json:"data"`
}

// EncodeDraft упаковывает черновик в обёртку для хранения.
func EncodeDraft(d Draft) (DraftEnvelope, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return DraftEnvelope{}, err
	}
	return DraftEnvelope{Section: d.Section(), Data: raw}, nil
}

// Decode распаковывает обёртку в черновик конкретной секции.
func (e DraftEnvelope) Decode() (Draft, error) {
	var d Draft
	switch e.Section {
	case SectionDescription:
		d = &DescriptionDraft{}
	case SectionServices:
		d = &ServicesDraft{}
	case SectionGallery:
		d = &GalleryDraft{}
	case SectionPricing:
		d = &PricingDraft{}
	case SectionContact:
		d = &ContactDraft{}
	case SectionLocation:
		d = &LocationDraft{}
	default:
		return nil, fmt.Errorf("unknown profile section: %q", e.Section)
	}
	if err := json.Unmarshal(e.Data, d); err != nil {
		return nil, err
	}
	return d, nil
}
