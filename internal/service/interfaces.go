package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"altosync/internal/domain"
	"altosync/internal/feed/alto"
	"altosync/internal/images"
)

type FeedClient interface {
	FetchBranches(ctx context.Context) ([]byte, []alto.Branch, error)
	FetchPropertyList(ctx context.Context, branchURL string) ([]alto.PropertySummary, error)
	FetchPropertyDetail(ctx context.Context, url string) ([]byte, error)
}

type StagingStore interface {
	GetBranchListFingerprint(ctx context.Context) (string, error)
	UpsertBranchList(ctx context.Context, payload []byte, fingerprint string) error
	TouchBranchList(ctx context.Context) error
	BranchListPending(ctx context.Context) (*domain.StagedEntity, error)
	MarkBranchListProcessed(ctx context.Context) error
	GetPropertyFingerprint(ctx context.Context, naturalKey string) (string, error)
	UpsertProperty(ctx context.Context, e *domain.StagedEntity) error
	TouchProperty(ctx context.Context, naturalKey string) error
	RequeueProperty(ctx context.Context, naturalKey string) error
	PendingProperties(ctx context.Context, after string, limit int) ([]domain.StagedEntity, error)
	MarkPropertyProcessed(ctx context.Context, naturalKey string) error
}

type PropertyStore interface {
	Upsert(ctx context.Context, p *domain.Property) (int64, bool, error)
	GetIDByAltoID(ctx context.Context, altoID string) (int64, error)
	ReplaceCategoryLink(ctx context.Context, propertyID, categoryID int64) error
}

type CompanyStore interface {
	EnsureBranch(ctx context.Context, c *domain.Company) (int64, error)
	GetIDByBranch(ctx context.Context, branchID string) (int64, error)
}

type DimensionStore interface {
	GetOrCreate(ctx context.Context, dim domain.Dimension, name string) (int64, error)
	CurrencyByISO(ctx context.Context, iso string) (int64, error)
}

type PhotoStore interface {
	CountByProperty(ctx context.Context, propertyID int64) (int, error)
}

type ImageImporter interface {
	Sniff(ctx context.Context, url string) (string, error)
	Sync(ctx context.Context, propertyID int64, cands []images.Candidate) (images.Result, error)
	HasOriginals(propertyID int64) bool
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, property *domain.Property, isNew bool) error
	Close() error
}
