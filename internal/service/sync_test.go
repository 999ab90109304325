package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"altosync/internal/config"
	"altosync/internal/domain"
	"altosync/internal/feed/alto"
	"altosync/internal/images"
	"altosync/internal/service/mocks"
)

const branchListXML = `<branches><branch>` +
	`<branchid>b1</branchid><name>Test Branch</name>` +
	`<url>https://feed.example.com/branch/b1</url>` +
	`<address><town>Norwich</town><country>United Kingdom</country></address>` +
	`</branch></branches>`

const summaryInnerXML = `<prop_id>12345</prop_id>` +
	`<url>https://feed.example.com/property/12345</url>` +
	`<lastchanged>2025-06-01T12:30:00</lastchanged>`

const detailXML = `<property id="12345" database="2">` +
	`<type>Flat</type><web_status id="100">To Let</web_status>` +
	`<bedrooms>2</bedrooms>` +
	`<address><name>Flat 3</name><street>High Street</street>` +
	`<town>Norwich</town><county>Norfolk</county><postcode>NR1 1AA</postcode></address>` +
	`<price currency_code="GBP"><value>1250</value></price>` +
	`<description>A spacious flat.</description>` +
	`</property>`

type SyncServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	feed       *mocks.MockFeedClient
	staging    *mocks.MockStagingStore
	properties *mocks.MockPropertyStore
	companies  *mocks.MockCompanyStore
	dimensions *mocks.MockDimensionStore
	photos     *mocks.MockPhotoStore
	importer   *mocks.MockImageImporter
	txManager  *mocks.MockTransactionManager
	publisher  *mocks.MockPublisher

	service *SyncService
	cfg     config.SyncConfig
	logger  *slog.Logger
}

func (s *SyncServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.feed = mocks.NewMockFeedClient(s.ctrl)
	s.staging = mocks.NewMockStagingStore(s.ctrl)
	s.properties = mocks.NewMockPropertyStore(s.ctrl)
	s.companies = mocks.NewMockCompanyStore(s.ctrl)
	s.dimensions = mocks.NewMockDimensionStore(s.ctrl)
	s.photos = mocks.NewMockPhotoStore(s.ctrl)
	s.importer = mocks.NewMockImageImporter(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.cfg = config.SyncConfig{BatchSize: 50}
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewSyncService(
		s.feed,
		s.staging,
		s.properties,
		s.companies,
		s.dimensions,
		s.photos,
		s.importer,
		s.txManager,
		s.publisher,
		s.logger,
		s.cfg,
	)
}

func (s *SyncServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSyncServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SyncServiceTestSuite))
}

func (s *SyncServiceTestSuite) branches() []alto.Branch {
	return []alto.Branch{{
		BranchID: "b1",
		Name:     "Test Branch",
		URL:      "https://feed.example.com/branch/b1",
	}}
}

func (s *SyncServiceTestSuite) summary() alto.PropertySummary {
	return alto.PropertySummary{
		PropID:      "12345",
		URL:         "https://feed.example.com/property/12345",
		LastChanged: "2025-06-01T12:30:00",
		Raw:         []byte(summaryInnerXML),
	}
}

func (s *SyncServiceTestSuite) expectTransactionPassthrough() {
	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
}

func (s *SyncServiceTestSuite) TestSync_NewPropertyImported() {
	ctx := context.Background()
	sum := s.summary()
	payload := sum.Payload()
	fp := fingerprint(payload)

	// Stage phase.
	s.feed.EXPECT().FetchBranches(ctx).Return([]byte(branchListXML), s.branches(), nil)
	s.staging.EXPECT().GetBranchListFingerprint(ctx).Return("", nil)
	s.staging.EXPECT().UpsertBranchList(ctx, []byte(branchListXML), fingerprint([]byte(branchListXML))).Return(nil)
	s.feed.EXPECT().FetchPropertyList(ctx, "https://feed.example.com/branch/b1").Return([]alto.PropertySummary{sum}, nil)
	s.staging.EXPECT().GetPropertyFingerprint(ctx, "12345").Return("", nil)
	s.staging.EXPECT().UpsertProperty(ctx, &domain.StagedEntity{
		NaturalKey:  "12345",
		BranchKey:   "b1",
		Payload:     payload,
		Fingerprint: fp,
	}).Return(nil)

	// Import phase: branch list first.
	s.staging.EXPECT().BranchListPending(ctx).Return(&domain.StagedEntity{
		NaturalKey: domain.BranchListKey,
		Payload:    []byte(branchListXML),
	}, nil)
	s.dimensions.EXPECT().GetOrCreate(ctx, domain.DimensionCity, "Norwich").Return(int64(1), nil)
	s.dimensions.EXPECT().GetOrCreate(ctx, domain.DimensionCountry, "United Kingdom").Return(int64(3), nil)
	s.companies.EXPECT().EnsureBranch(ctx, gomock.Any()).Return(int64(50), nil)
	s.staging.EXPECT().MarkBranchListProcessed(ctx).Return(nil)

	// Then the staged property.
	staged := domain.StagedEntity{NaturalKey: "12345", BranchKey: "b1", Payload: payload, Fingerprint: fp}
	s.staging.EXPECT().PendingProperties(ctx, "", 50).Return([]domain.StagedEntity{staged}, nil)
	s.staging.EXPECT().PendingProperties(ctx, "12345", 50).Return(nil, nil)

	s.feed.EXPECT().FetchPropertyDetail(ctx, "https://feed.example.com/property/12345").Return([]byte(detailXML), nil)

	s.expectTransactionPassthrough()
	s.companies.EXPECT().GetIDByBranch(ctx, "b1").Return(int64(50), nil)
	s.dimensions.EXPECT().GetOrCreate(ctx, domain.DimensionCity, "Norwich").Return(int64(1), nil)
	s.dimensions.EXPECT().GetOrCreate(ctx, domain.DimensionState, "Norfolk").Return(int64(2), nil)
	s.dimensions.EXPECT().GetOrCreate(ctx, domain.DimensionCountry, "United Kingdom").Return(int64(3), nil)
	s.dimensions.EXPECT().GetOrCreate(ctx, domain.DimensionPropertyType, "Flat").Return(int64(4), nil)
	s.dimensions.EXPECT().CurrencyByISO(ctx, "GBP").Return(int64(9), nil)

	s.properties.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p *domain.Property) (int64, bool, error) {
			s.Equal("12345", p.AltoID)
			s.Equal(int64(6), p.CategoryID, "lettings channel maps to the to-let residential category")
			s.Equal(int64(4), p.TypeID)
			s.Equal(0, p.IsSold)
			s.Equal(int64(1250), p.Price)
			p.ID = 100
			return 100, true, nil
		},
	)
	s.properties.EXPECT().ReplaceCategoryLink(ctx, int64(100), int64(6)).Return(nil)
	s.importer.EXPECT().Sync(ctx, int64(100), gomock.Any()).Return(images.Result{Downloaded: 2}, nil)
	s.staging.EXPECT().MarkPropertyProcessed(ctx, "12345").Return(nil)

	s.publisher.EXPECT().Publish(ctx, gomock.Any(), true).Return(nil)

	stats, err := s.service.Sync(ctx)

	s.NoError(err)
	s.Equal(1, stats.Branches)
	s.Equal(1, stats.Summaries)
	s.Equal(1, stats.New)
	s.Equal(1, stats.Imported)
	s.Equal(2, stats.ImagesDownloaded)
	s.Equal(1, stats.Published)
	s.Equal(0, stats.Failed)
}

func (s *SyncServiceTestSuite) TestSync_UnchangedWithoutPhotosIsRequeued() {
	ctx := context.Background()
	sum := s.summary()
	fp := fingerprint(sum.Payload())

	s.feed.EXPECT().FetchBranches(ctx).Return([]byte(branchListXML), s.branches(), nil)
	s.staging.EXPECT().GetBranchListFingerprint(ctx).Return(fingerprint([]byte(branchListXML)), nil)
	s.staging.EXPECT().TouchBranchList(ctx).Return(nil)
	s.feed.EXPECT().FetchPropertyList(ctx, gomock.Any()).Return([]alto.PropertySummary{sum}, nil)

	s.staging.EXPECT().GetPropertyFingerprint(ctx, "12345").Return(fp, nil)
	s.staging.EXPECT().TouchProperty(ctx, "12345").Return(nil)
	s.properties.EXPECT().GetIDByAltoID(ctx, "12345").Return(int64(100), nil)
	s.photos.EXPECT().CountByProperty(ctx, int64(100)).Return(0, nil)
	s.importer.EXPECT().HasOriginals(int64(100)).Return(false)
	s.staging.EXPECT().RequeueProperty(ctx, "12345").Return(nil)

	// Keep the import phase empty to isolate the requeue behaviour.
	s.staging.EXPECT().BranchListPending(ctx).Return(nil, nil)
	s.staging.EXPECT().PendingProperties(ctx, "", 50).Return(nil, nil)

	stats, err := s.service.Sync(ctx)

	s.NoError(err)
	s.Equal(1, stats.Unchanged)
	s.Equal(1, stats.Requeued)
	s.Equal(0, stats.New)
}

func (s *SyncServiceTestSuite) TestSync_UnchangedWithPhotosOnDiskNotRequeued() {
	ctx := context.Background()
	sum := s.summary()
	fp := fingerprint(sum.Payload())

	s.feed.EXPECT().FetchBranches(ctx).Return([]byte(branchListXML), s.branches(), nil)
	s.staging.EXPECT().GetBranchListFingerprint(ctx).Return(fingerprint([]byte(branchListXML)), nil)
	s.staging.EXPECT().TouchBranchList(ctx).Return(nil)
	s.feed.EXPECT().FetchPropertyList(ctx, gomock.Any()).Return([]alto.PropertySummary{sum}, nil)

	s.staging.EXPECT().GetPropertyFingerprint(ctx, "12345").Return(fp, nil)
	s.staging.EXPECT().TouchProperty(ctx, "12345").Return(nil)
	s.properties.EXPECT().GetIDByAltoID(ctx, "12345").Return(int64(100), nil)
	s.photos.EXPECT().CountByProperty(ctx, int64(100)).Return(0, nil)
	s.importer.EXPECT().HasOriginals(int64(100)).Return(true)

	s.staging.EXPECT().BranchListPending(ctx).Return(nil, nil)
	s.staging.EXPECT().PendingProperties(ctx, "", 50).Return(nil, nil)

	stats, err := s.service.Sync(ctx)

	s.NoError(err)
	s.Equal(1, stats.Unchanged)
	s.Equal(0, stats.Requeued)
}

func (s *SyncServiceTestSuite) TestSync_AuthFailureAborts() {
	ctx := context.Background()

	s.feed.EXPECT().FetchBranches(ctx).Return(nil, nil, domain.ErrAuth)

	stats, err := s.service.Sync(ctx)

	s.Error(err)
	s.ErrorIs(err, domain.ErrAuth)
	s.Nil(stats)
}

func (s *SyncServiceTestSuite) TestSync_DetailFetchFailureLeavesPending() {
	ctx := context.Background()
	sum := s.summary()
	staged := domain.StagedEntity{NaturalKey: "12345", BranchKey: "b1", Payload: sum.Payload(), Fingerprint: "fp"}

	s.feed.EXPECT().FetchBranches(ctx).Return([]byte(branchListXML), nil, nil)
	s.staging.EXPECT().GetBranchListFingerprint(ctx).Return(fingerprint([]byte(branchListXML)), nil)
	s.staging.EXPECT().TouchBranchList(ctx).Return(nil)

	s.staging.EXPECT().BranchListPending(ctx).Return(nil, nil)
	// The row stays pending but the cursor moves past it, so the loop ends.
	s.staging.EXPECT().PendingProperties(ctx, "", 50).Return([]domain.StagedEntity{staged}, nil)
	s.staging.EXPECT().PendingProperties(ctx, "12345", 50).Return(nil, nil)

	s.feed.EXPECT().FetchPropertyDetail(ctx, "https://feed.example.com/property/12345").
		Return(nil, errors.New("503 from feed"))

	stats, err := s.service.Sync(ctx)

	s.NoError(err)
	s.Equal(1, stats.Failed)
	s.Equal(0, stats.Imported)
}

func (s *SyncServiceTestSuite) TestSync_FailingRowDoesNotStarveLaterRows() {
	ctx := context.Background()

	// Batch size 1, two pending rows, and the first one fails every fetch.
	// The cursor must still reach the second row within the same run.
	service := NewSyncService(
		s.feed, s.staging, s.properties, s.companies, s.dimensions,
		s.photos, s.importer, s.txManager, s.publisher, s.logger,
		config.SyncConfig{BatchSize: 1},
	)

	first := domain.StagedEntity{NaturalKey: "12345", BranchKey: "b1", Payload: s.summary().Payload(), Fingerprint: "fp"}
	second := domain.StagedEntity{
		NaturalKey: "67890",
		BranchKey:  "b1",
		Payload: []byte(`<property><prop_id>67890</prop_id>` +
			`<url>https://feed.example.com/property/67890</url>` +
			`<lastchanged>2025-06-01T12:30:00</lastchanged></property>`),
		Fingerprint: "fp2",
	}

	s.feed.EXPECT().FetchBranches(ctx).Return([]byte(branchListXML), nil, nil)
	s.staging.EXPECT().GetBranchListFingerprint(ctx).Return(fingerprint([]byte(branchListXML)), nil)
	s.staging.EXPECT().TouchBranchList(ctx).Return(nil)

	s.staging.EXPECT().BranchListPending(ctx).Return(nil, nil)
	s.staging.EXPECT().PendingProperties(ctx, "", 1).Return([]domain.StagedEntity{first}, nil)
	s.staging.EXPECT().PendingProperties(ctx, "12345", 1).Return([]domain.StagedEntity{second}, nil)
	s.staging.EXPECT().PendingProperties(ctx, "67890", 1).Return(nil, nil)

	s.feed.EXPECT().FetchPropertyDetail(ctx, "https://feed.example.com/property/12345").
		Return(nil, errors.New("404 from feed"))
	s.feed.EXPECT().FetchPropertyDetail(ctx, "https://feed.example.com/property/67890").
		Return(nil, errors.New("404 from feed"))

	stats, err := service.Sync(ctx)

	s.NoError(err)
	s.Equal(2, stats.Failed, "both pending rows were attempted")
	s.Equal(0, stats.Imported)
}

func (s *SyncServiceTestSuite) TestSync_PartialBranchImportLeavesListPending() {
	ctx := context.Background()

	s.feed.EXPECT().FetchBranches(ctx).Return([]byte(branchListXML), nil, nil)
	s.staging.EXPECT().GetBranchListFingerprint(ctx).Return(fingerprint([]byte(branchListXML)), nil)
	s.staging.EXPECT().TouchBranchList(ctx).Return(nil)

	s.staging.EXPECT().BranchListPending(ctx).Return(&domain.StagedEntity{
		NaturalKey: domain.BranchListKey,
		Payload:    []byte(branchListXML),
	}, nil)
	s.dimensions.EXPECT().GetOrCreate(ctx, domain.DimensionCity, "Norwich").Return(int64(1), nil)
	s.dimensions.EXPECT().GetOrCreate(ctx, domain.DimensionCountry, "United Kingdom").Return(int64(3), nil)
	s.companies.EXPECT().EnsureBranch(ctx, gomock.Any()).Return(int64(0), errors.New("connection reset"))
	// No MarkBranchListProcessed: the list stays pending so the next run
	// retries every branch.

	s.staging.EXPECT().PendingProperties(ctx, "", 50).Return(nil, nil)

	stats, err := s.service.Sync(ctx)

	s.NoError(err)
	s.Equal(1, stats.Failed)
}

func (s *SyncServiceTestSuite) TestSync_UnparseableDetailIsDropped() {
	ctx := context.Background()
	sum := s.summary()
	staged := domain.StagedEntity{NaturalKey: "12345", BranchKey: "b1", Payload: sum.Payload(), Fingerprint: "fp"}

	s.feed.EXPECT().FetchBranches(ctx).Return([]byte(branchListXML), nil, nil)
	s.staging.EXPECT().GetBranchListFingerprint(ctx).Return(fingerprint([]byte(branchListXML)), nil)
	s.staging.EXPECT().TouchBranchList(ctx).Return(nil)

	s.staging.EXPECT().BranchListPending(ctx).Return(nil, nil)
	s.staging.EXPECT().PendingProperties(ctx, "", 50).Return([]domain.StagedEntity{staged}, nil)
	s.staging.EXPECT().PendingProperties(ctx, "12345", 50).Return(nil, nil)

	s.feed.EXPECT().FetchPropertyDetail(ctx, gomock.Any()).Return([]byte("<property><unclosed"), nil)
	s.staging.EXPECT().MarkPropertyProcessed(ctx, "12345").Return(nil)

	stats, err := s.service.Sync(ctx)

	s.NoError(err)
	s.Equal(1, stats.Failed)
	s.Equal(0, stats.Imported)
}

func (s *SyncServiceTestSuite) TestSync_RolledBackImportStaysPending() {
	ctx := context.Background()
	sum := s.summary()
	staged := domain.StagedEntity{NaturalKey: "12345", BranchKey: "b1", Payload: sum.Payload(), Fingerprint: "fp"}

	s.feed.EXPECT().FetchBranches(ctx).Return([]byte(branchListXML), nil, nil)
	s.staging.EXPECT().GetBranchListFingerprint(ctx).Return(fingerprint([]byte(branchListXML)), nil)
	s.staging.EXPECT().TouchBranchList(ctx).Return(nil)

	s.staging.EXPECT().BranchListPending(ctx).Return(nil, nil)
	s.staging.EXPECT().PendingProperties(ctx, "", 50).Return([]domain.StagedEntity{staged}, nil)
	s.staging.EXPECT().PendingProperties(ctx, "12345", 50).Return(nil, nil)

	s.feed.EXPECT().FetchPropertyDetail(ctx, gomock.Any()).Return([]byte(detailXML), nil)
	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).Return(errors.New("deadlock"))

	stats, err := s.service.Sync(ctx)

	s.NoError(err)
	s.Equal(1, stats.Failed)
	s.Equal(0, stats.Imported)
	s.Equal(0, stats.Published)
}

func (s *SyncServiceTestSuite) TestSync_NilPublisher() {
	ctx := context.Background()
	service := NewSyncService(
		s.feed, s.staging, s.properties, s.companies, s.dimensions,
		s.photos, s.importer, s.txManager, nil, s.logger, s.cfg,
	)

	sum := s.summary()
	staged := domain.StagedEntity{NaturalKey: "12345", BranchKey: "b1", Payload: sum.Payload(), Fingerprint: "fp"}

	s.feed.EXPECT().FetchBranches(ctx).Return([]byte(branchListXML), nil, nil)
	s.staging.EXPECT().GetBranchListFingerprint(ctx).Return(fingerprint([]byte(branchListXML)), nil)
	s.staging.EXPECT().TouchBranchList(ctx).Return(nil)

	s.staging.EXPECT().BranchListPending(ctx).Return(nil, nil)
	s.staging.EXPECT().PendingProperties(ctx, "", 50).Return([]domain.StagedEntity{staged}, nil)
	s.staging.EXPECT().PendingProperties(ctx, "12345", 50).Return(nil, nil)

	s.feed.EXPECT().FetchPropertyDetail(ctx, gomock.Any()).Return([]byte(detailXML), nil)

	s.expectTransactionPassthrough()
	s.companies.EXPECT().GetIDByBranch(ctx, "b1").Return(int64(0), nil)
	s.dimensions.EXPECT().GetOrCreate(ctx, gomock.Any(), gomock.Any()).Return(int64(1), nil).AnyTimes()
	s.dimensions.EXPECT().CurrencyByISO(ctx, "GBP").Return(int64(9), nil)
	s.properties.EXPECT().Upsert(ctx, gomock.Any()).Return(int64(100), true, nil)
	s.properties.EXPECT().ReplaceCategoryLink(ctx, int64(100), int64(6)).Return(nil)
	s.importer.EXPECT().Sync(ctx, int64(100), gomock.Any()).Return(images.Result{}, nil)
	s.staging.EXPECT().MarkPropertyProcessed(ctx, "12345").Return(nil)

	stats, err := service.Sync(ctx)

	s.NoError(err)
	s.Equal(1, stats.Imported)
	s.Equal(0, stats.Published)
}
