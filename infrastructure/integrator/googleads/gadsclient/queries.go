package gadsclient

// Consultas GAQL da coleta do snapshot. Todas filtram por entidades
// habilitadas; as verificações não avaliam campanhas pausadas.
const (
	QueryCustomerClients = `
		SELECT
			customer_client.descriptive_name,
			customer_client.id,
			customer_client.currency_code,
			customer_client.manager,
			customer_client.status
		FROM customer_client
		WHERE customer_client.status = 'ENABLED'
		ORDER BY customer_client.descriptive_name`

	QueryCampaigns = `
		SELECT
			campaign.id,
			campaign.name,
			campaign.status,
			campaign.advertising_channel_type,
			campaign.advertising_channel_sub_type,
			campaign.geo_target_type_setting.positive_geo_target_type,
			campaign.app_campaign_setting.app_id,
			campaign.app_campaign_setting.app_store,
			campaign.app_campaign_setting.bidding_strategy_goal_type,
			campaign_budget.has_recommended_budget,
			campaign_budget.recommended_budget_amount_micros,
			campaign_budget.amount_micros,
			metrics.cost_micros
		FROM campaign
		WHERE campaign.status = 'ENABLED'`

	QueryConversionGoalConfigs = `
		SELECT
			campaign.id,
			conversion_goal_campaign_config.goal_config_level
		FROM conversion_goal_campaign_config
		WHERE campaign.status = 'ENABLED'`

	QueryAdGroups = `
		SELECT
			campaign.id,
			campaign.name,
			campaign.advertising_channel_type,
			ad_group.id,
			ad_group.name,
			ad_group.status
		FROM ad_group
		WHERE campaign.status = 'ENABLED'
		AND ad_group.status = 'ENABLED'`

	QueryKeywords = `
		SELECT
			campaign.id,
			campaign.name,
			ad_group.id,
			ad_group.name,
			ad_group_criterion.keyword.text,
			ad_group_criterion.keyword.match_type,
			ad_group_criterion.negative,
			ad_group_criterion.quality_info.quality_score,
			metrics.cost_micros,
			metrics.impressions
		FROM keyword_view
		WHERE campaign.advertising_channel_type = 'SEARCH'
		AND campaign.status = 'ENABLED'
		AND ad_group.status = 'ENABLED'
		AND ad_group_criterion.status = 'ENABLED'`

	QueryResponsiveSearchAds = `
		SELECT
			campaign.id,
			campaign.name,
			ad_group.id,
			ad_group.name,
			ad_group_ad.ad.id,
			ad_group_ad.ad.responsive_search_ad.headlines,
			ad_group_ad.ad.responsive_search_ad.descriptions,
			ad_group_ad.ad.responsive_search_ad.path1,
			ad_group_ad.ad.responsive_search_ad.path2,
			ad_group_ad.ad_strength
		FROM ad_group_ad
		WHERE campaign.advertising_channel_type = 'SEARCH'
		AND campaign.status = 'ENABLED'
		AND ad_group.status = 'ENABLED'
		AND ad_group_ad.status = 'ENABLED'
		AND ad_group_ad.ad.type = 'RESPONSIVE_SEARCH_AD'`

	QueryCampaignAssets = `
		SELECT
			campaign.id,
			campaign.name,
			campaign_asset.field_type,
			asset.sitelink_asset.link_text
		FROM campaign_asset
		WHERE campaign.status = 'ENABLED'
		AND campaign_asset.status = 'ENABLED'`

	QueryCampaignCriteria = `
		SELECT
			campaign.id,
			campaign.name,
			campaign_criterion.type,
			campaign_criterion.negative,
			campaign_criterion.keyword.text,
			campaign_criterion.user_list.user_list,
			campaign_criterion.user_interest.user_interest_category,
			campaign_criterion.age_range.type
		FROM campaign_criterion
		WHERE campaign.status = 'ENABLED'
		AND campaign_criterion.status = 'ENABLED'
		AND campaign_criterion.type IN ('USER_LIST', 'USER_INTEREST', 'KEYWORD', 'AGE_RANGE')`

	QuerySharedSets = `
		SELECT
			campaign.id,
			campaign.name,
			shared_set.id,
			shared_set.name,
			shared_set.type
		FROM campaign_shared_set
		WHERE campaign.status = 'ENABLED'
		AND campaign_shared_set.status = 'ENABLED'`

	QueryAssetGroups = `
		SELECT
			campaign.id,
			campaign.name,
			asset_group.id,
			asset_group.name,
			asset_group.path1,
			asset_group.path2
		FROM asset_group
		WHERE campaign.advertising_channel_type = 'PERFORMANCE_MAX'
		AND campaign.status = 'ENABLED'
		AND asset_group.status = 'ENABLED'`

	QueryAssetGroupSignals = `
		SELECT
			campaign.id,
			asset_group.id,
			asset_group_signal.search_theme.text
		FROM asset_group_signal
		WHERE campaign.advertising_channel_type = 'PERFORMANCE_MAX'
		AND campaign.status = 'ENABLED'
		AND asset_group.status = 'ENABLED'`

	QueryAssetGroupListingFilters = `
		SELECT
			campaign.id,
			asset_group.id
		FROM asset_group_listing_group_filter
		WHERE campaign.advertising_channel_type = 'PERFORMANCE_MAX'
		AND campaign.status = 'ENABLED'
		AND asset_group.status = 'ENABLED'`

	QueryAssetGroupAssets = `
		SELECT
			campaign.id,
			campaign.name,
			asset_group.id,
			asset_group.name,
			asset_group_asset.field_type,
			asset.call_to_action_asset.call_to_action
		FROM asset_group_asset
		WHERE campaign.advertising_channel_type = 'PERFORMANCE_MAX'
		AND campaign.status = 'ENABLED'
		AND asset_group.status = 'ENABLED'
		AND asset_group_asset.status = 'ENABLED'`

	QueryAppAds = `
		SELECT
			campaign.id,
			campaign.name,
			ad_group.id,
			ad_group.name,
			ad_group_ad.ad.id,
			ad_group_ad.ad.app_ad.headlines,
			ad_group_ad.ad.app_ad.descriptions
		FROM ad_group_ad
		WHERE campaign.advertising_channel_type = 'MULTI_CHANNEL'
		AND campaign.status = 'ENABLED'
		AND ad_group.status = 'ENABLED'
		AND ad_group_ad.status = 'ENABLED'`
)
