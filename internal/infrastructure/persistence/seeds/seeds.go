// Package seeds loads demo data from a YAML file. Rows are matched on a
// natural key, so applying the same file twice inserts nothing new.
package seeds

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/adagency-io/adagency/internal/domain/ad"
	"github.com/adagency-io/adagency/internal/domain/advertiser"
	"github.com/adagency-io/adagency/internal/domain/agent"
	"github.com/adagency-io/adagency/internal/domain/analytics"
	"github.com/adagency-io/adagency/internal/domain/contract"
	vo "github.com/adagency-io/adagency/internal/domain/contract/valueobjects"
	"github.com/adagency-io/adagency/internal/infrastructure/persistence/mappers"
	"github.com/adagency-io/adagency/internal/infrastructure/persistence/models"
	"github.com/adagency-io/adagency/internal/shared/utils"
)

// Dataset is the YAML document layout. Ads and contracts refer to
// advertisers and agents by name; analytics refer to ads by key.
type Dataset struct {
	Advertisers []AdvertiserSeed `yaml:"advertisers"`
	Agents      []AgentSeed      `yaml:"agents"`
	Ads         []AdSeed         `yaml:"ads"`
	Contracts   []ContractSeed   `yaml:"contracts"`
	Analytics   []AnalyticsSeed  `yaml:"analytics"`
}

type AdvertiserSeed struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Phone string `yaml:"phone"`
}

type AgentSeed struct {
	FullName       string  `yaml:"full_name"`
	Phone          string  `yaml:"phone"`
	CommissionRate float64 `yaml:"commission_rate"`
	HireDate       string  `yaml:"hire_date"`
}

type AdSeed struct {
	Key           string  `yaml:"key"`
	Advertiser    string  `yaml:"advertiser"`
	Info          string  `yaml:"info"`
	Cost          float64 `yaml:"cost"`
	DatePublished string  `yaml:"date_published"`
}

type ContractSeed struct {
	Advertiser string  `yaml:"advertiser"`
	Agent      string  `yaml:"agent"`
	DateSigned string  `yaml:"date_signed"`
	Duration   string  `yaml:"duration"`
	Amount     float64 `yaml:"amount"`
	Status     string  `yaml:"status"`
}

type AnalyticsSeed struct {
	Ad         string  `yaml:"ad"`
	Viewers    int64   `yaml:"viewers"`
	Engagement float64 `yaml:"engagement"`
	Rating     float64 `yaml:"rating"`
	MeasuredAt string  `yaml:"measured_at"`
}

// Summary counts the rows inserted by Apply.
type Summary struct {
	Advertisers int
	Agents      int
	Ads         int
	Contracts   int
	Analytics   int
}

// LoadFile reads and decodes a seed file.
func LoadFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a seed document. Unknown keys are rejected.
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("failed to decode seed file: %w", err)
	}
	return &ds, nil
}

// Apply writes the dataset in one transaction.
func Apply(ctx context.Context, db *gorm.DB, ds *Dataset) (Summary, error) {
	var summary Summary
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		s := &seeder{
			tx:          tx,
			advertisers: make(map[string]uint),
			agents:      make(map[string]uint),
			ads:         make(map[string]uint),
		}
		if err := s.apply(ds); err != nil {
			return err
		}
		summary = s.summary
		return nil
	})
	return summary, err
}

type seeder struct {
	tx          *gorm.DB
	advertisers map[string]uint
	agents      map[string]uint
	ads         map[string]uint
	summary     Summary
}

func (s *seeder) apply(ds *Dataset) error {
	for i, seed := range ds.Advertisers {
		if err := s.advertiser(seed); err != nil {
			return fmt.Errorf("advertisers[%d]: %w", i, err)
		}
	}
	for i, seed := range ds.Agents {
		if err := s.agent(seed); err != nil {
			return fmt.Errorf("agents[%d]: %w", i, err)
		}
	}
	for i, seed := range ds.Ads {
		if err := s.ad(seed); err != nil {
			return fmt.Errorf("ads[%d]: %w", i, err)
		}
	}
	for i, seed := range ds.Contracts {
		if err := s.contract(seed); err != nil {
			return fmt.Errorf("contracts[%d]: %w", i, err)
		}
	}
	for i, seed := range ds.Analytics {
		if err := s.analytics(seed); err != nil {
			return fmt.Errorf("analytics[%d]: %w", i, err)
		}
	}
	return nil
}

// firstOrCreate inserts model unless a row matching where exists, in which
// case model is filled from that row. It reports whether it inserted.
func (s *seeder) firstOrCreate(model any, where any) (bool, error) {
	err := s.tx.Where(where).Take(model).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err := s.tx.Create(model).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (s *seeder) advertiser(seed AdvertiserSeed) error {
	entity, err := advertiser.NewAdvertiser(seed.Name, seed.Email, seed.Phone)
	if err != nil {
		return err
	}

	model := mappers.NewAdvertiserMapper().ToModel(entity)
	created, err := s.firstOrCreate(model, &models.AdvertiserModel{Email: model.Email})
	if err != nil {
		return err
	}
	if created {
		s.summary.Advertisers++
	}
	s.advertisers[model.Name] = model.ID
	return nil
}

func (s *seeder) agent(seed AgentSeed) error {
	hireDate, err := utils.ParseDate(seed.HireDate)
	if err != nil {
		return fmt.Errorf("hire_date: %w", err)
	}
	entity, err := agent.NewAgent(seed.FullName, seed.Phone, seed.CommissionRate, hireDate)
	if err != nil {
		return err
	}

	model := mappers.NewAgentMapper().ToModel(entity)
	created, err := s.firstOrCreate(model, &models.AgentModel{FullName: model.FullName, Phone: model.Phone})
	if err != nil {
		return err
	}
	if created {
		s.summary.Agents++
	}
	s.agents[model.FullName] = model.ID
	return nil
}

func (s *seeder) ad(seed AdSeed) error {
	advertiserID, ok := s.advertisers[seed.Advertiser]
	if !ok {
		return fmt.Errorf("unknown advertiser %q", seed.Advertiser)
	}
	published, err := utils.ParseDate(seed.DatePublished)
	if err != nil {
		return fmt.Errorf("date_published: %w", err)
	}
	entity, err := ad.NewAd(advertiserID, seed.Info, seed.Cost, published)
	if err != nil {
		return err
	}

	model := mappers.NewAdMapper().ToModel(entity)
	created, err := s.firstOrCreate(model, &models.AdModel{AdvertiserID: advertiserID, Info: model.Info})
	if err != nil {
		return err
	}
	if created {
		s.summary.Ads++
	}
	if seed.Key != "" {
		s.ads[seed.Key] = model.ID
	}
	return nil
}

func (s *seeder) contract(seed ContractSeed) error {
	advertiserID, ok := s.advertisers[seed.Advertiser]
	if !ok {
		return fmt.Errorf("unknown advertiser %q", seed.Advertiser)
	}
	agentID, ok := s.agents[seed.Agent]
	if !ok {
		return fmt.Errorf("unknown agent %q", seed.Agent)
	}
	signed, err := utils.ParseDate(seed.DateSigned)
	if err != nil {
		return fmt.Errorf("date_signed: %w", err)
	}
	duration, err := vo.ParseDuration(seed.Duration)
	if err != nil {
		return fmt.Errorf("duration: %w", err)
	}
	status, err := vo.NewStatus(seed.Status)
	if err != nil {
		return err
	}

	entity, err := contract.NewContract(contract.Terms{
		AdvertiserID: advertiserID,
		AgentID:      agentID,
		DateSigned:   signed,
		Duration:     duration,
		Amount:       seed.Amount,
		Status:       status,
	})
	if err != nil {
		return err
	}

	model := mappers.NewContractMapper().ToModel(entity)
	created, err := s.firstOrCreate(model, &models.ContractModel{
		AdvertiserID: advertiserID,
		AgentID:      agentID,
		DateSigned:   model.DateSigned,
	})
	if err != nil {
		return err
	}
	if created {
		s.summary.Contracts++
	}
	return nil
}

func (s *seeder) analytics(seed AnalyticsSeed) error {
	adID, ok := s.ads[seed.Ad]
	if !ok {
		return fmt.Errorf("unknown ad key %q", seed.Ad)
	}

	m := analytics.Metrics{
		AdID:       adID,
		Viewers:    seed.Viewers,
		Engagement: seed.Engagement,
		Rating:     seed.Rating,
	}
	if seed.MeasuredAt != "" {
		measured, err := utils.ParseDate(seed.MeasuredAt)
		if err != nil {
			return fmt.Errorf("measured_at: %w", err)
		}
		m.MeasuredAt = &measured
	}

	entity, err := analytics.NewRecord(m)
	if err != nil {
		return err
	}

	model := mappers.NewAnalyticsMapper().ToModel(entity)
	created, err := s.firstOrCreate(model, &models.AnalyticsModel{
		AdID:       adID,
		Viewers:    model.Viewers,
		MeasuredAt: model.MeasuredAt,
	})
	if err != nil {
		return err
	}
	if created {
		s.summary.Analytics++
	}
	return nil
}
