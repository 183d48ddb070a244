package meta

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/healthcard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/healthcard-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/healthcard-api/internal/config"
	"github.com/vfg2006/healthcard-api/internal/domain"
)

const statusActive = "ACTIVE"

// Integrator expõe a coleta de dados da Meta já normalizada para o domínio
type Integrator interface {
	AccountSnapshot(accountID string) (*domain.MetaSnapshot, error)
	ListAdAccounts() ([]*domain.Account, error)
}

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// AccountSnapshot coleta anúncios e conjuntos ativos da conta e os achata no
// snapshot normalizado avaliado pelo catálogo de verificações
func (s *MetaIntegrator) AccountSnapshot(accountID string) (*domain.MetaSnapshot, error) {
	datePreset := s.cfg.Meta.DatePreset

	ads, err := s.Client.GetActiveAdsByAccountID(accountID, datePreset)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("meta: failed to get active ads from API")
		return nil, err
	}

	adSets, err := s.Client.GetActiveAdSetsByAccountID(accountID, datePreset)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("meta: failed to get active ad sets from API")
		return nil, err
	}

	snapshot := &domain.MetaSnapshot{
		AccountID: accountID,
		FetchedAt: time.Now().UTC(),
	}

	for _, ad := range ads {
		if row := FactoryMetaAdRow(ad); row != nil {
			snapshot.Ads = append(snapshot.Ads, *row)
		}
	}

	for _, adSet := range adSets {
		if row := FactoryMetaAdSetRow(adSet); row != nil {
			snapshot.AdSets = append(snapshot.AdSets, *row)
		}
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"ads":        len(snapshot.Ads),
		"adsets":     len(snapshot.AdSets),
	}).Debug("meta: account snapshot collected")

	return snapshot, nil
}

// ListAdAccounts lista as contas de anúncio dos Business Managers configurados
func (s *MetaIntegrator) ListAdAccounts() ([]*domain.Account, error) {
	var accounts []*domain.Account

	for _, businessID := range s.cfg.Meta.BusinessIDs {
		adAccounts, err := s.Client.GetAdAccountsByBusinessID(businessID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"business_id": businessID,
				"error":       err.Error(),
			}).Error("meta: failed to list ad accounts from API")
			return nil, err
		}

		for _, adAccount := range adAccounts {
			accounts = append(accounts, &domain.Account{
				ExternalID: strings.TrimPrefix(adAccount.ID, "act_"),
				Name:       adAccount.Name,
				Platform:   domain.PlatformMeta,
				Status:     domain.AccountStatusActive,
			})
		}
	}

	return accounts, nil
}

// FactoryMetaAdRow achata o anúncio bruto da API no registro normalizado.
// Retorna nil quando anúncio, conjunto ou campanha não estão ativos.
func FactoryMetaAdRow(ad metadomain.Ad) *domain.MetaAdRow {
	if ad.EffectiveStatus != statusActive ||
		ad.AdSet.EffectiveStatus != statusActive ||
		ad.Campaign.EffectiveStatus != statusActive {
		return nil
	}

	row := &domain.MetaAdRow{
		AdID:           ad.ID,
		AdName:         ad.Name,
		AdStatus:       ad.EffectiveStatus,
		AdSetID:        ad.AdSet.ID,
		AdSetName:      ad.AdSet.Name,
		AdSetStatus:    ad.AdSet.EffectiveStatus,
		CampaignID:     ad.Campaign.ID,
		CampaignName:   ad.Campaign.Name,
		CampaignStatus: ad.Campaign.EffectiveStatus,
		URLTags:        ad.Creative.URLTags,
		CreativeID:     ad.Creative.ID,
		HasAssetGroups: ad.CreativeAssetGroupsSpec != nil,
	}

	for _, spec := range ad.TrackingSpecs {
		row.PixelIDs = append(row.PixelIDs, spec.FBPixel...)
		row.ApplicationIDs = append(row.ApplicationIDs, spec.Application...)
	}

	// O product set pode vir do criativo ou do promoted_object do conjunto
	row.ProductSetID = ad.Creative.ProductSetID
	if row.ProductSetID == "" {
		row.ProductSetID = ad.AdSet.PromotedObject.ProductSetID
	}
	row.EffectiveStoryID = ad.Creative.EffectiveObjectStoryID

	if feed := ad.Creative.AssetFeedSpec; feed != nil {
		row.HasAssetFeed = true
		row.Titles = assetTexts(feed.Titles)
		row.Bodies = assetTexts(feed.Bodies)
		row.Descriptions = assetTexts(feed.Descriptions)
		for _, image := range feed.Images {
			if image.Hash != "" {
				row.ImageHashes = append(row.ImageHashes, image.Hash)
			}
		}
		for _, video := range feed.Videos {
			if video.VideoID != "" {
				row.VideoIDs = append(row.VideoIDs, video.VideoID)
			}
		}
		row.CallToActions = feed.CallToActionTypes
		row.AdFormats = feed.AdFormats
	}

	story := ad.Creative.ObjectStorySpec
	if linkData := story.LinkData; linkData != nil {
		row.StoryLinkMessage = linkData.Message
		row.StoryLinkName = linkData.Name
		row.StoryLinkDescription = linkData.Description
		row.StoryLinkCTA = callToActionType(linkData.CallToAction)

		for _, child := range linkData.ChildAttachments {
			row.ChildAttachments = append(row.ChildAttachments, domain.ChildAttachment{
				Name:         child.Name,
				Description:  child.Description,
				Link:         child.Link,
				CallToAction: callToActionType(child.CallToAction),
			})
		}
	}
	if videoData := story.VideoData; videoData != nil {
		row.StoryVideoTitle = videoData.Title
		row.StoryVideoMessage = videoData.Message
		row.StoryVideoID = videoData.VideoID
		row.StoryVideoCTA = callToActionType(videoData.CallToAction)
	}

	return row
}

// FactoryMetaAdSetRow achata o conjunto bruto da API no registro normalizado.
// Retorna nil quando conjunto ou campanha não estão ativos.
func FactoryMetaAdSetRow(adSet metadomain.AdSet) *domain.MetaAdSetRow {
	if adSet.EffectiveStatus != statusActive ||
		adSet.Campaign.EffectiveStatus != statusActive {
		return nil
	}

	row := &domain.MetaAdSetRow{
		AdSetID:            adSet.ID,
		AdSetName:          adSet.Name,
		AdSetStatus:        adSet.EffectiveStatus,
		CampaignID:         adSet.Campaign.ID,
		CampaignName:       adSet.Campaign.Name,
		CampaignStatus:     adSet.Campaign.EffectiveStatus,
		OptimizationGoal:   adSet.OptimizationGoal,
		PublisherPlatforms: adSet.Targeting.PublisherPlatforms,
	}

	for _, audience := range adSet.Targeting.CustomAudiences {
		row.CustomAudiences = append(row.CustomAudiences, audience.ID)
		row.CustomAudienceNames = append(row.CustomAudienceNames, audience.Name)
	}
	for _, audience := range adSet.Targeting.ExcludedCustomAudiences {
		row.ExcludedAudiences = append(row.ExcludedAudiences, audience.ID)
	}

	if automation := adSet.Targeting.TargetingAutomation; automation != nil {
		row.AdvantageAudience = automation.AdvantageAudience == 1
	}

	for _, spec := range adSet.Targeting.FlexibleSpec {
		if len(spec.Interests) > 0 || len(spec.Behaviors) > 0 {
			row.HasInterestTargeting = true
			break
		}
	}

	return row
}

func assetTexts(texts []metadomain.AssetText) []string {
	result := make([]string, 0, len(texts))
	for _, t := range texts {
		if t.Text != "" {
			result = append(result, t.Text)
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

func callToActionType(cta *metadomain.CallToAction) string {
	if cta == nil {
		return ""
	}
	return cta.Type
}
