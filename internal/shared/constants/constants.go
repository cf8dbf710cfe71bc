package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Prefix for environment variable overrides, e.g. ADAGENCY_DATABASE_DRIVER
	EnvPrefix = "ADAGENCY"

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Content Types
	ContentTypeJSON = "application/json"
	ContentTypeHTML = "text/html; charset=utf-8"

	// Context keys
	ContextKeyRequestID = "request_id"

	// Default API prefix for resource routes
	DefaultAPIPrefix = "/api"

	// Database table names
	TableAdvertisers = "advertisers"
	TableAgents      = "agents"
	TableAds         = "ads"
	TableContracts   = "contracts"
	TableAnalytics   = "analytics"

	// Date format used on the wire for every date column
	DateLayout = "2006-01-02"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgValidationFailed    = "Validation failed"

	// Delete confirmations shown by the front end
	MsgAdvertiserDeleted = "Рекламодатель удален"
	MsgAgentDeleted      = "Агент удалён"
	MsgAdDeleted         = "Объявление удалено"
	MsgContractDeleted   = "Договор удалён"
	MsgAnalyticsDeleted  = "Аналитика удалена"
)
