package repository

import (
	"errors"

	"github.com/bella507/help-me-sub000/internal/app/ds"

	"gorm.io/gorm"
)

// Admin-editable directory content: shelters, news, FAQ, donation needs
// and risk areas. Plain CRUD, no lifecycle.

func (r *Repository) ListShelters() ([]ds.Shelter, error) {
	var out []ds.Shelter
	err := r.db.Order("name").Find(&out).Error
	return out, err
}

func (r *Repository) GetShelter(id uint) (*ds.Shelter, error) {
	var s ds.Shelter
	err := r.db.First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) CreateShelter(s *ds.Shelter) error {
	return r.db.Create(s).Error
}

func (r *Repository) UpdateShelter(id uint, fields map[string]interface{}) error {
	return r.db.Model(&ds.Shelter{}).Where("id = ?", id).Updates(fields).Error
}

func (r *Repository) DeleteShelter(id uint) (bool, error) {
	res := r.db.Delete(&ds.Shelter{}, id)
	return res.RowsAffected > 0, res.Error
}

func (r *Repository) ListNews() ([]ds.NewsItem, error) {
	var out []ds.NewsItem
	err := r.db.Order("published_at DESC").Find(&out).Error
	return out, err
}

func (r *Repository) GetNewsItem(id uint) (*ds.NewsItem, error) {
	var n ds.NewsItem
	err := r.db.First(&n, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *Repository) CreateNewsItem(n *ds.NewsItem) error {
	return r.db.Create(n).Error
}

func (r *Repository) UpdateNewsItem(id uint, fields map[string]interface{}) error {
	return r.db.Model(&ds.NewsItem{}).Where("id = ?", id).Updates(fields).Error
}

func (r *Repository) DeleteNewsItem(id uint) (bool, error) {
	res := r.db.Delete(&ds.NewsItem{}, id)
	return res.RowsAffected > 0, res.Error
}

func (r *Repository) ListFaqs() ([]ds.Faq, error) {
	var out []ds.Faq
	err := r.db.Order("position").Find(&out).Error
	return out, err
}

func (r *Repository) CreateFaq(f *ds.Faq) error {
	return r.db.Create(f).Error
}

func (r *Repository) UpdateFaq(id uint, fields map[string]interface{}) error {
	return r.db.Model(&ds.Faq{}).Where("id = ?", id).Updates(fields).Error
}

func (r *Repository) DeleteFaq(id uint) (bool, error) {
	res := r.db.Delete(&ds.Faq{}, id)
	return res.RowsAffected > 0, res.Error
}

func (r *Repository) ListDonationNeeds() ([]ds.DonationNeed, error) {
	var out []ds.DonationNeed
	err := r.db.Order("urgent DESC, item").Find(&out).Error
	return out, err
}

func (r *Repository) CreateDonationNeed(d *ds.DonationNeed) error {
	return r.db.Create(d).Error
}

func (r *Repository) UpdateDonationNeed(id uint, fields map[string]interface{}) error {
	return r.db.Model(&ds.DonationNeed{}).Where("id = ?", id).Updates(fields).Error
}

func (r *Repository) DeleteDonationNeed(id uint) (bool, error) {
	res := r.db.Delete(&ds.DonationNeed{}, id)
	return res.RowsAffected > 0, res.Error
}

func (r *Repository) ListRiskAreas() ([]ds.RiskArea, error) {
	var out []ds.RiskArea
	err := r.db.Order("level DESC, name").Find(&out).Error
	return out, err
}

func (r *Repository) CreateRiskArea(a *ds.RiskArea) error {
	return r.db.Create(a).Error
}

func (r *Repository) UpdateRiskArea(id uint, fields map[string]interface{}) error {
	return r.db.Model(&ds.RiskArea{}).Where("id = ?", id).Updates(fields).Error
}

func (r *Repository) DeleteRiskArea(id uint) (bool, error) {
	res := r.db.Delete(&ds.RiskArea{}, id)
	return res.RowsAffected > 0, res.Error
}
